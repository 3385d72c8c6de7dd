package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"g2ical/internal/export"
	"g2ical/internal/ical"
	pkgLog "g2ical/pkg/log"
)

// RunOptions carries the pre-parsed command-line inputs. Empty fields
// are prompted for interactively.
type RunOptions struct {
	CalendarID string
	From       string // YYYY-MM-DD
	To         string // YYYY-MM-DD
	Target     ical.Target
}

type handler struct {
	l   pkgLog.Logger
	uc  export.UseCase
	in  io.Reader
	out io.Writer
}

// Run drives one full export: pick a calendar, fetch the range, show
// the event table, write the file. Presentation only works with display
// rows and status strings; records pass through opaquely.
func (h *handler) Run(ctx context.Context, opts RunOptions) error {
	reader := bufio.NewReader(h.in)

	calendarID := opts.CalendarID
	if calendarID == "" {
		picked, err := h.pickCalendar(ctx, reader)
		if err != nil {
			return err
		}
		calendarID = picked
	} else {
		cal, err := h.uc.Calendar(ctx, calendarID)
		if err != nil {
			return fmt.Errorf("failed to resolve calendar: %w", err)
		}
		fmt.Fprintf(h.out, "Exporting calendar %s\n", cal.Name)
	}

	from := opts.From
	if from == "" {
		from = h.prompt(reader, "Start date (YYYY-MM-DD): ")
	}
	to := opts.To
	if to == "" {
		to = h.prompt(reader, "End date (YYYY-MM-DD): ")
	}

	fetched, err := h.uc.Fetch(ctx, export.FetchInput{
		CalendarID: calendarID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	h.printTable(fetched.Rows)
	fmt.Fprintf(h.out, "Loaded %d events successfully\n", fetched.Count)

	if fetched.Count == 0 {
		fmt.Fprintln(h.out, "Nothing to export.")
		return nil
	}

	result, err := h.uc.Export(ctx, export.ExportInput{
		Records: fetched.Records,
		Target:  opts.Target,
	})
	if err != nil {
		return fmt.Errorf("failed to export events: %w", err)
	}

	fmt.Fprintf(h.out, "Exported events to %s successfully!\n", result.Path)
	return nil
}

// pickCalendar lists the user's calendars and reads a numeric choice.
func (h *handler) pickCalendar(ctx context.Context, reader *bufio.Reader) (string, error) {
	options, err := h.uc.Calendars(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load calendars: %w", err)
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no calendars available for this account")
	}

	fmt.Fprintln(h.out, "Calendars:")
	for i, opt := range options {
		marker := ""
		if opt.Primary {
			marker = " (primary)"
		}
		fmt.Fprintf(h.out, "  %d. %s%s\n", i+1, opt.Name, marker)
	}

	for {
		answer, readErr := h.promptErr(reader, fmt.Sprintf("Select calendar [1-%d]: ", len(options)))
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1].ID, nil
		}
		fmt.Fprintf(h.out, "Invalid selection %q\n", answer)
		if readErr != nil {
			return "", fmt.Errorf("no calendar selected: %w", readErr)
		}
	}
}

func (h *handler) prompt(reader *bufio.Reader, label string) string {
	line, _ := h.promptErr(reader, label)
	return line
}

func (h *handler) promptErr(reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(h.out, label)
	line, err := reader.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (h *handler) printTable(rows []export.DisplayRow) {
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTART\tEND\tLOCATION\tDESCRIPTION")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Summary, row.Start, row.End, row.Location, oneLine(row.Description))
	}
	w.Flush()
}

// oneLine keeps multi-line descriptions from breaking the table.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
