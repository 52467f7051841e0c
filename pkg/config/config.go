// Package config provides configuration management for fishfeat.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - General: output_dir, sqlite_path
//   - IUCN: url, raw_file, subset_file
//   - FishBase: url, page_size, features_file
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Quiet (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use FISHFEAT_ prefix with underscores for nesting:
//
//	FISHFEAT_OUTPUT_DIR=data
//	FISHFEAT_FISHBASE_URL=https://fishbase.ropensci.org
//	FISHFEAT_FISHBASE_PAGE_SIZE=5000
//	FISHFEAT_LOG_LEVEL=info
package config

// Config represents the complete fishfeat configuration.
type Config struct {
	// OutputDir is the directory where all CSV artifacts are written.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// SQLitePath is an optional SQLite database file. When set, produced
	// tables are also exported there. Empty means no export.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// IUCN contains settings of the IUCN subset extractor.
	IUCN IUCNConfig `mapstructure:"iucn" yaml:"iucn"`

	// FishBase contains settings of the FishBase feature extractor.
	FishBase FishBaseConfig `mapstructure:"fishbase" yaml:"fishbase"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Quiet disables progress bars and informational output.
	Quiet bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// IUCNConfig contains settings for the IUCN snapshot.
type IUCNConfig struct {
	// URL of the IUCN CSV snapshot.
	URL string `mapstructure:"url" yaml:"url"`

	// RawFile is the file name of the downloaded snapshot inside OutputDir.
	RawFile string `mapstructure:"raw_file" yaml:"raw_file"`

	// SubsetFile is the file name of the filtered fish subset inside
	// OutputDir.
	SubsetFile string `mapstructure:"subset_file" yaml:"subset_file"`
}

// FishBaseConfig contains settings for the FishBase REST API.
type FishBaseConfig struct {
	// URL is the base URL of the FishBase API. Table names are appended
	// to it.
	URL string `mapstructure:"url" yaml:"url"`

	// PageSize is the number of rows requested per page (the `limit`
	// query parameter).
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// FeaturesFile is the file name of the joined feature matrix inside
	// OutputDir.
	FeaturesFile string `mapstructure:"features_file" yaml:"features_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		OutputDir: "data",
		IUCN: IUCNConfig{
			URL:        IUCNSnapshotURL,
			RawFile:    "IUCN_full.csv",
			SubsetFile: "IUCN_subset.csv",
		},
		FishBase: FishBaseConfig{
			URL:          FishBaseURL,
			PageSize:     5000,
			FeaturesFile: "fishbase_features.csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
