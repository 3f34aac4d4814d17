package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabasePath   string
	ReportInterval time.Duration
	Location       *time.Location
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabasePath:   strings.TrimSpace(os.Getenv("TASKBOARD_DB")),
		ReportInterval: parseInterval(strings.TrimSpace(os.Getenv("TASKBOARD_REPORT_INTERVAL_HOURS"))),
		Location:       time.Local,
	}

	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, ".taskboard", "taskboard.db")
	}

	if cfg.ReportInterval == 0 {
		cfg.ReportInterval = 24 * time.Hour
	}

	if tz := strings.TrimSpace(os.Getenv("TASKBOARD_TZ")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("TASKBOARD_TZ: %w", err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
