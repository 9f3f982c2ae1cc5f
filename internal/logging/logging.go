// Package logging provides component loggers on top of log/slog.
//
// Component loggers resolve slog.Default() on every call, so Setup can
// redirect or re-level output after package-level loggers are declared.
// Everything is written to stderr; stdout belongs to the status line.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup installs a text handler writing to w at the given level as the
// process default.
func Setup(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// ComponentLogger tags every record with a component attribute.
type ComponentLogger struct {
	component string
}

// Logger returns a ComponentLogger for the named component.
func Logger(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

func (l *ComponentLogger) logger() *slog.Logger {
	return slog.Default().With("component", l.component)
}

func (l *ComponentLogger) Debug(msg string, args ...any) { l.logger().Debug(msg, args...) }
func (l *ComponentLogger) Info(msg string, args ...any)  { l.logger().Info(msg, args...) }
func (l *ComponentLogger) Warn(msg string, args ...any)  { l.logger().Warn(msg, args...) }
func (l *ComponentLogger) Error(msg string, args ...any) { l.logger().Error(msg, args...) }
