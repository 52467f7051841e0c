// Package iofs handles file system locations used by fishfeat.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/fishfeat/pkg/frame"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories inside homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureOutputDir creates the directory for CSV artifacts.
func EnsureOutputDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteCSV saves a frame to path. Data goes to a temporary file first,
// so path is either fully written or left untouched.
func WriteCSV(path string, f *frame.Frame, withIndex bool) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fishfeat-*.csv")
	if err != nil {
		return WriteFileError(path, err)
	}
	defer os.Remove(tmp.Name())

	if err = f.WriteCSV(tmp, withIndex); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
