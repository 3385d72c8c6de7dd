package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"g2ical/config"
	"g2ical/internal/export/delivery/cli"
	"g2ical/internal/export/usecase"
	"g2ical/internal/ical"
	"g2ical/pkg/daterange"
	"g2ical/pkg/gcalendar"
	"g2ical/pkg/log"
)

func main() {
	calendarID := flag.String("calendar", "", "calendar ID to export (prompted when empty)")
	from := flag.String("from", "", "start date, YYYY-MM-DD (prompted when empty)")
	to := flag.String("to", "", "end date, YYYY-MM-DD (prompted when empty)")
	fileName := flag.String("file", "", "export file name (default from config)")
	directory := flag.String("dir", "", "export directory (default from config)")
	credentials := flag.String("credentials", "", "Google credentials file (default from config)")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Flags override config. The export target travels as an explicit
	// value from here on; nothing below reads configuration.
	target := ical.Target{
		Directory: cfg.Export.Directory,
		FileName:  cfg.Export.FileName,
	}
	if *directory != "" {
		target.Directory = *directory
	}
	if *fileName != "" {
		target.FileName = *fileName
	}

	credentialsPath := cfg.GoogleCalendar.CredentialsPath
	if *credentials != "" {
		credentialsPath = *credentials
	}

	selectedCalendar := cfg.GoogleCalendar.CalendarID
	if *calendarID != "" {
		selectedCalendar = *calendarID
	}

	// 3. Date-range parser in the export timezone
	dates, err := daterange.NewParser(cfg.Export.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Export.Timezone, err)
		dates, _ = daterange.NewParser("UTC")
	}

	// 4. Google Calendar client
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, credentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Error(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		os.Exit(1)
	}

	if email, emailErr := calendarClient.AccountEmail(ctx); emailErr == nil {
		fmt.Printf("Logged in as %s\n", email)
	}

	// 5. UseCase and CLI delivery
	exportUC := usecase.New(logger, calendarClient, dates)
	handler := cli.New(logger, exportUC, os.Stdin, os.Stdout)

	if err := handler.Run(ctx, cli.RunOptions{
		CalendarID: selectedCalendar,
		From:       *from,
		To:         *to,
		Target:     target,
	}); err != nil {
		logger.Errorf(ctx, "Export failed: %v", err)
		os.Exit(1)
	}
}
