package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in logger.log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in logger.log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation bounds for the file logger
const (
	MaxLogFileSizeMB  = 100
	MaxLogFileBackups = 10
	MaxLogFileAgeDays = 365
)

// LoggerSettings selects the log sink and level. Rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > MaxLogFileSizeMB:
		return fmt.Errorf("max size must be between 1 and %d MB", MaxLogFileSizeMB)
	case s.MaxBackups < 1 || s.MaxBackups > MaxLogFileBackups:
		return fmt.Errorf("max backups must be between 1 and %d", MaxLogFileBackups)
	case s.MaxAge < 1 || s.MaxAge > MaxLogFileAgeDays:
		return fmt.Errorf("max age must be between 1 and %d days", MaxLogFileAgeDays)
	}

	return nil
}

// SlogLevel maps LogLevel onto slog. critical has no slog equivalent and logs at error;
// unknown levels fall back to info.
func (s *LoggerSettings) SlogLevel() slog.Level {
	switch s.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError, LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
