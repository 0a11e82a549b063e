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

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewFiltersByLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, "warn")

	log.Info("dropped")
	log.Warn("kept", "points", 3)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "points=3")
}

func TestInitToFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	fpath := filepath.Join(t.TempDir(), "logs", "sample.log")
	log, err := Init(fpath, "info")
	require.NoError(t, err)

	log.Info("hello")

	data, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
