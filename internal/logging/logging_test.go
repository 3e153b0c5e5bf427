package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveAndRestoreLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

func TestParseLevel(t *testing.T) {
	uu := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
	}

	for k, e := range uu {
		assert.Equal(t, e, ParseLevel(k), k)
	}
}

func TestSetupText(t *testing.T) {
	saveAndRestoreLogger(t)
	var buf bytes.Buffer
	Setup(slog.LevelInfo, &buf, FormatText)

	slog.Debug("hidden")
	slog.Info("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetupJSON(t *testing.T) {
	saveAndRestoreLogger(t)
	var buf bytes.Buffer
	Setup(slog.LevelDebug, &buf, FormatJSON)

	slog.Debug("shown", "key", "value")

	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestSetupNilWriter(t *testing.T) {
	saveAndRestoreLogger(t)

	assert.NotPanics(t, func() {
		Setup(slog.LevelInfo, nil, FormatText)
	})
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "lendr.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("hello\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(raw))
}
