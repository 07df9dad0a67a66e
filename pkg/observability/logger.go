// Package observability provides structured logging, metrics collection,
// and correlation utilities for the todo tracker.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFormat specifies the output format for logs.
type LogFormat string

const (
	// LogFormatText outputs human-readable console logs.
	LogFormatText LogFormat = "text"
	// LogFormatJSON outputs one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// LogLevel represents logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures the logger.
type LogConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Format specifies the output format (text or json).
	Format LogFormat
	// Output is the writer for logs. Defaults to os.Stderr.
	Output io.Writer
	// NoColor disables ANSI colour in text output.
	NoColor bool
	// ServiceName is included in all log entries.
	ServiceName string
	// ServiceVersion is included in all log entries.
	ServiceVersion string
}

// DefaultLogConfig returns the settings used by the interactive session.
// Warn keeps log lines from interleaving with prompts.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:          LogLevelWarn,
		Format:         LogFormatText,
		Output:         os.Stderr,
		ServiceName:    "todo",
		ServiceVersion: "dev",
	}
}

// ParseLogLevel validates a level name.
func ParseLogLevel(s string) (LogLevel, error) {
	switch level := LogLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return level, nil
	default:
		return "", fmt.Errorf("invalid log level %q", s)
	}
}

// ParseLogFormat validates a format name.
func ParseLogFormat(s string) (LogFormat, error) {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case LogFormatText, LogFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid log format %q", s)
	}
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(cfg LogConfig) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var out io.Writer = cfg.Output
	if cfg.Format != LogFormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}

	ctx := zerolog.New(out).Level(zerologLevel(cfg.Level)).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str("service", cfg.ServiceName)
	}
	if cfg.ServiceVersion != "" {
		ctx = ctx.Str("version", cfg.ServiceVersion)
	}
	return ctx.Logger()
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithContext returns a logger carrying the correlation ID and operation
// found in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	fields := logger.With()
	if corrID := CorrelationIDFromContext(ctx); corrID != "" {
		fields = fields.Str(CorrelationIDKey, corrID)
	}
	if op := OperationFromContext(ctx); op != "" {
		fields = fields.Str(OperationKey, op)
	}
	return fields.Logger()
}
