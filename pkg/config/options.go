package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptOutputDir sets the directory for CSV artifacts.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.OutputDir = s
		}
	}
}

// OptSQLitePath sets the SQLite database used for exporting tables.
func OptSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("SQLite Path", s) {
			c.SQLitePath = s
		}
	}
}

// OptIUCNURL sets the URL of the IUCN CSV snapshot.
func OptIUCNURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("IUCN URL", s) {
			c.IUCN.URL = s
		}
	}
}

// OptIUCNRawFile sets the file name of the downloaded IUCN snapshot.
func OptIUCNRawFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("IUCN Raw File", s) {
			c.IUCN.RawFile = s
		}
	}
}

// OptIUCNSubsetFile sets the file name of the IUCN fish subset.
func OptIUCNSubsetFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("IUCN Subset File", s) {
			c.IUCN.SubsetFile = s
		}
	}
}

// OptFishBaseURL sets the base URL of the FishBase REST API.
// A trailing slash is removed.
func OptFishBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("FishBase URL", s) {
			c.FishBase.URL = s
		}
	}
}

// OptFishBasePageSize sets the number of rows requested per page.
func OptFishBasePageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("FishBase Page Size", i) {
			c.FishBase.PageSize = i
		}
	}
}

// OptFishBaseFeaturesFile sets the file name of the feature matrix.
func OptFishBaseFeaturesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("FishBase Features File", s) {
			c.FishBase.FeaturesFile = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptQuiet disables progress bars and informational messages.
// Runtime-only field - not in ToOptions().
func OptQuiet(b bool) Option {
	return func(c *Config) {
		c.Quiet = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
