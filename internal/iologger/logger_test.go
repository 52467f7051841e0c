package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		inp string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.inp), v.inp)
	}
}

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}
	err := Init(dir, cfg)
	require.NoError(t, err)

	slog.Debug("logger test", "table", "taxa")

	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"logger test"`)
	assert.Contains(t, string(content), `"table":"taxa"`)
}

func TestInitFileError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	err := Init(dir, cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
