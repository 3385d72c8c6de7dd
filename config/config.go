package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Logger         LoggerConfig
	GoogleCalendar GoogleCalendarConfig
	Export         ExportConfig
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// ExportConfig is the destination and timezone of an export. It is read
// once here and passed down as plain values; no package consults it as
// ambient state.
type ExportConfig struct {
	FileName  string
	Directory string
	Timezone  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/g2ical/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/g2ical/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Export.FileName = viper.GetString("export.file_name")
	cfg.Export.Directory = viper.GetString("export.directory")
	cfg.Export.Timezone = viper.GetString("export.timezone")
	if cfg.Export.Directory == "" {
		cfg.Export.Directory = defaultExportDirectory()
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.credentials_path", "google-credentials.json")
	viper.SetDefault("export.file_name", "calendar_export.ics")
	viper.SetDefault("export.timezone", "UTC")
}

// defaultExportDirectory mirrors the historical default of writing into
// the user's Downloads folder, falling back to the working directory.
func defaultExportDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
