package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "fishfeat"

	// IUCNSnapshotURL points to the CSV snapshot of IUCN Red List
	// assessments.
	IUCNSnapshotURL = "https://drive.google.com/u/0/uc?id=0B9_zEbZIPqtIVXJ1VVpEMGNxdnc&export=download"

	// FishBaseURL is the default FishBase REST API.
	FishBaseURL = "https://fishbase.ropensci.org"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/fishfeat by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/fishfeat/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/fishfeat/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// IUCNRawPath returns the location of the downloaded IUCN snapshot.
func (c *Config) IUCNRawPath() string {
	return filepath.Join(c.OutputDir, c.IUCN.RawFile)
}

// IUCNSubsetPath returns the location of the filtered IUCN subset.
func (c *Config) IUCNSubsetPath() string {
	return filepath.Join(c.OutputDir, c.IUCN.SubsetFile)
}

// FeaturesPath returns the location of the FishBase feature matrix.
func (c *Config) FeaturesPath() string {
	return filepath.Join(c.OutputDir, c.FishBase.FeaturesFile)
}
