package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/storyboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, closeLog, err := NewLogger(config.LogConfig{Dir: dir, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "epic_id", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "epic_id")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, _, err := NewLogger(config.LogConfig{Dir: t.TempDir(), Level: "chatty"})
	assert.Error(t, err)
}

func TestNewLogger_Formats(t *testing.T) {
	var text bytes.Buffer
	newLogger(&text, slog.LevelInfo, true).Info("saved", "story_id", 2)
	assert.Contains(t, text.String(), "msg=saved")
	assert.Contains(t, text.String(), "story_id=2")

	var js bytes.Buffer
	newLogger(&js, slog.LevelInfo, false).Info("saved", "story_id", 2)
	var record map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &record))
	assert.Equal(t, "saved", record["msg"])
	assert.Equal(t, float64(2), record["story_id"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelWarn, true)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
