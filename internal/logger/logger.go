package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the logging surface shared by every component. Fields carry
// structured context such as action names, tool names, and file paths.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configuration level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LevelFromEnv resolves the effective log level: the LOG_LEVEL and DEBUG
// environment variables override the configured name.
func LevelFromEnv(configured string) zerolog.Level {
	if name := os.Getenv("LOG_LEVEL"); name != "" {
		return ParseLevel(name)
	}
	if os.Getenv("DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return ParseLevel(configured)
}
