// Package logger is the process-wide leveled logger.
//
// Until Init is called every call is a no-op, so library packages can log
// unconditionally and tests stay quiet.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var defaultLogger *slog.Logger

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else yields warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Init installs a text logger writing records at level and above to w.
func Init(level string, w io.Writer) {
	defaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

func logf(l slog.Level, format string, v ...any) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Log(context.Background(), l, fmt.Sprintf(format, v...))
}

// Debugf logs at debug level.
func Debugf(format string, v ...any) { logf(slog.LevelDebug, format, v...) }

// Infof logs at info level.
func Infof(format string, v ...any) { logf(slog.LevelInfo, format, v...) }

// Warnf logs at warn level.
func Warnf(format string, v ...any) { logf(slog.LevelWarn, format, v...) }

// Errorf logs at error level.
func Errorf(format string, v ...any) { logf(slog.LevelError, format, v...) }
