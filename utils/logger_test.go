package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "warn")

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("dropped %d rows", 3)
	logger.Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="dropped 3 rows"`)
	assert.Contains(t, out, "level=ERROR")
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "nonsense")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "analysis.log")
	logger := NewLogger(LogOptions{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1})

	logger.Info("loaded %d rows", 42)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded 42 rows")
}
