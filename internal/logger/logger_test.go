package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountsWarnings(t *testing.T) {
	ClearCounts()
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Debug("hidden")
	log.Info("rendered", "points", 5)
	log.Warn("chart render failed")
	log.With("host", "raster").Error("write failed")

	warn, errs := GetCounts()
	assert.Equal(t, int64(1), warn)
	assert.Equal(t, int64(1), errs)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[2], &rec))
	assert.Equal(t, "write failed", rec["msg"])
	assert.Equal(t, "raster", rec["host"])
	assert.Equal(t, "ERROR", rec["level"])

	ClearCounts()
	warn, errs = GetCounts()
	assert.Zero(t, warn)
	assert.Zero(t, errs)
}

func TestInitLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linechart.log")
	InitLogger(LevelDebug, path)
	defer Close()

	Debug("pass", "n", 1)
	assert.Equal(t, path, LogPath)
	assert.FileExists(t, path)
}
