// Package paths provides centralized path handling for hilite.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hilite
	EnvConfigDir = "HILITE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for hilite
	EnvStateDir = "HILITE_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for hilite-specific files
	AppDirName = "hilite"

	// UserConfigFile is the name of the user-level configuration file
	UserConfigFile = "hilite.toml"

	// LogFileName is the name of the log file
	LogFileName = "hilite.log"
)

// projectConfigNames are the file names probed for a project-local config,
// in order of preference.
var projectConfigNames = []string{".hilite.toml", "hilite.toml", ".hilite.yaml", ".hilite.json"}

// ConfigDir returns the directory holding the user-level configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the full path of the user-level configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// StateDir returns the directory for state files such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindProjectConfig returns the path of the project-local config file in dir,
// or an empty string if none exists.
func FindProjectConfig(dir string) string {
	for _, name := range projectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
