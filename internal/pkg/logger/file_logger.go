package logger

import (
	"log/slog"

	"github.com/MGTheTrain/text-vault/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON records to a size-rotated file.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a file logger from the path, level and rotation bounds in settings.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: settings.SlogLevel()})
	return &FileLogger{slogLogger{logger: slog.New(handler)}}
}
