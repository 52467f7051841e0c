package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/fishfeat/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "fishfeat"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "fishfeat", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "fishfeat", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "data", cfg.OutputDir)
		assert.Empty(t, cfg.SQLitePath)

		assert.Equal(t, config.IUCNSnapshotURL, cfg.IUCN.URL)
		assert.Equal(t, "IUCN_full.csv", cfg.IUCN.RawFile)
		assert.Equal(t, "IUCN_subset.csv", cfg.IUCN.SubsetFile)

		assert.Equal(t, "https://fishbase.ropensci.org", cfg.FishBase.URL)
		assert.Equal(t, 5000, cfg.FishBase.PageSize)
		assert.Equal(t, "fishbase_features.csv", cfg.FishBase.FeaturesFile)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.False(t, cfg.Quiet)
		assert.Empty(t, cfg.HomeDir)
	})

	t.Run("builds artifact paths", func(t *testing.T) {
		assert.Equal(t, filepath.Join("data", "IUCN_full.csv"), cfg.IUCNRawPath())
		assert.Equal(t, filepath.Join("data", "IUCN_subset.csv"),
			cfg.IUCNSubsetPath())
		assert.Equal(t, filepath.Join("data", "fishbase_features.csv"),
			cfg.FeaturesPath())
	})
}

func TestOptionOutputDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/tmp/out",
			expected: "/tmp/out",
		},
		{
			name:     "trims whitespace",
			input:    "  out  ",
			expected: "out",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "data", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "data", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptOutputDir(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.OutputDir)
		})
	}
}

func TestOptionFishBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "removes trailing slash",
			input:    "https://example.org/api/",
			expected: "https://example.org/api",
		},
		{
			name:     "ignores url without scheme",
			input:    "example.org",
			expected: "https://fishbase.ropensci.org",
		},
		{
			name:     "ignores ftp scheme",
			input:    "ftp://example.org",
			expected: "https://fishbase.ropensci.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptFishBaseURL(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.FishBase.URL)
		})
	}
}

func TestOptionFishBasePageSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid page size",
			input:    100,
			expected: 100,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5000, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -1,
			expected: 5000, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptFishBasePageSize(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.FishBase.PageSize)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("STDERR")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("nowhere")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestRuntimeOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptQuiet(true),
		config.OptHomeDir("/home/fish"),
	})
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "/home/fish", cfg.HomeDir)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptOutputDir("out"),
		config.OptSQLitePath("out/fish.sqlite"),
		config.OptIUCNURL("http://example.org/iucn.csv"),
		config.OptFishBaseURL("http://example.org/fb"),
		config.OptFishBasePageSize(250),
		config.OptFishBaseFeaturesFile("features.csv"),
		config.OptLogFormat("text"),
		config.OptQuiet(true),
		config.OptHomeDir("/home/fish"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "out", dst.OutputDir)
	assert.Equal(t, "out/fish.sqlite", dst.SQLitePath)
	assert.Equal(t, "http://example.org/iucn.csv", dst.IUCN.URL)
	assert.Equal(t, "http://example.org/fb", dst.FishBase.URL)
	assert.Equal(t, 250, dst.FishBase.PageSize)
	assert.Equal(t, "features.csv", dst.FishBase.FeaturesFile)
	assert.Equal(t, "text", dst.Log.Format)

	// runtime-only fields do not round-trip
	assert.False(t, dst.Quiet)
	assert.Empty(t, dst.HomeDir)
}
