// Package config holds the process configuration and on-disk locations.
package config

// Config is read once at startup and never changes afterwards.
type Config struct {
	// Debug logs every window-creation event with its size.
	Debug bool

	// LogToFile tees the log to LogFilePath() in addition to stderr.
	// Windowed builds have no console, so this is on for normal runs.
	LogToFile bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Debug:     false,
		LogToFile: true,
	}
}
