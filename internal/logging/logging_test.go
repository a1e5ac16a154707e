package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestParseFormatter(t *testing.T) {
	assert.Equal(t, log.JSONFormatter, ParseFormatter("json"))
	assert.Equal(t, log.LogfmtFormatter, ParseFormatter("logfmt"))
	assert.Equal(t, log.TextFormatter, ParseFormatter("text"))
	assert.Equal(t, log.TextFormatter, ParseFormatter("xml"))
}

func TestOpenFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Open("debug", "logfmt", "", &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("dispatched", "action", "toggle:1")
	assert.Contains(t, buf.String(), "dispatched")
	assert.Contains(t, buf.String(), "action=toggle:1")
}

func TestOpenLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := Open("warn", "text", "", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.log")
	logger, closer, err := Open("info", "json", path, nil)
	require.NoError(t, err)

	logger.Info("mounted", "todos", 3)
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"mounted"`)
	assert.Contains(t, string(b), `"todos":3`)
}

func TestOpenFileError(t *testing.T) {
	_, _, err := Open("info", "text", filepath.Join(t.TempDir(), "missing", "x.log"), nil)
	assert.Error(t, err)
}
