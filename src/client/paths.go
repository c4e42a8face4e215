package client

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform-specific directory paths for CLI configuration

const projectName = "nightscout"

// ConfigDir returns the CLI config directory
// ~/.config/nightscout/ (Unix) or %APPDATA%\nightscout\ (Windows)
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", projectName)
}

// ConfigFile returns the CLI config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "cli.yml")
}
