package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKBOARD_DB", "")
	t.Setenv("TASKBOARD_REPORT_INTERVAL_HOURS", "")
	t.Setenv("TASKBOARD_TZ", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabasePath, ".taskboard")
	assert.Equal(t, 24*time.Hour, cfg.ReportInterval)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_DB", "/tmp/custom.db")
	t.Setenv("TASKBOARD_REPORT_INTERVAL_HOURS", "6")
	t.Setenv("TASKBOARD_TZ", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.Equal(t, 6*time.Hour, cfg.ReportInterval)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Setenv("TASKBOARD_TZ", "Not/AZone")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseInterval(""))
	assert.Equal(t, time.Duration(0), parseInterval("zero"))
	assert.Equal(t, time.Duration(0), parseInterval("-2"))
	assert.Equal(t, 3*time.Hour, parseInterval("3"))
}
