package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes text records to stderr so that signatures and ciphertexts
// printed on stdout stay pipeable.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger emitting records at or above level.
func NewConsoleLogger(level slog.Level) Logger {
	return newConsoleLoggerTo(os.Stderr, level)
}

func newConsoleLoggerTo(w io.Writer, level slog.Level) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
