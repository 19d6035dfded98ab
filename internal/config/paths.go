package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// LogFileName is the name of the log file inside LogDirectory.
const LogFileName = "kakaoadblock.log"

// LogDirectory returns the directory the log file is written to.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\KakaoAdblock\logs
//   - Unix: ~/.config/kakaoadblock/logs
func LogDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "kakaoadblock-logs")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "KakaoAdblock", "logs")
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kakaoadblock-logs")
	}
	return filepath.Join(configDir, "kakaoadblock", "logs")
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(LogDirectory(), LogFileName)
}

// EnsureLogDirectory creates the log directory if it doesn't exist.
// Uses 0700 permissions since window titles can contain chat names.
func EnsureLogDirectory() error {
	return os.MkdirAll(LogDirectory(), 0700)
}
