package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "BLOCKINSERT_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory
	EnvDataDir = "BLOCKINSERT_DATA_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "BLOCKINSERT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "blockinsert"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// TableFileName is the name of the default definition table snapshot
	TableFileName = "table.toml"

	// LogFileName is the name of the log file
	LogFileName = "blockinsert.log"
)

// ConfigDir returns the configuration directory
func ConfigDir() string {
	return resolveDir(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome)
}

// DataDir returns the data directory
func DataDir() string {
	return resolveDir(EnvDataDir, "XDG_DATA_HOME", xdg.DataHome)
}

// StateDir returns the state directory
func StateDir() string {
	return resolveDir(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome)
}

// ConfigFilePath returns the default user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// TableFilePath returns the default definition table snapshot
func TableFilePath() string {
	return filepath.Join(DataDir(), TableFileName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

func resolveDir(override, xdgVar, xdgDefault string) string {
	if dir := os.Getenv(override); dir != "" {
		return ExpandHome(dir)
	}
	if base := os.Getenv(xdgVar); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdgDefault, AppDirName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~\
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
