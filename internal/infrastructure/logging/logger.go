// Package logging adapts zerolog to the ports.Logger contract.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Format selects the zerolog output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Options configures the zerolog adapter.
type Options struct {
	Writer    io.Writer
	Level     string
	Format    Format
	Layer     string
	Component string
	Fields    map[string]interface{}
}

// Logger implements ports.Logger on top of zerolog.
type Logger struct {
	base  zerolog.Logger
	layer string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	switch opts.Format {
	case "", FormatJSON:
	case FormatConsole:
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = !isTerminal(writer)
		writer = console
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}

	builder := zerolog.New(writer).Level(level).With().Timestamp()
	for _, key := range sortedKeys(opts.Fields) {
		builder = builder.Interface(key, opts.Fields[key])
	}
	if opts.Component != "" {
		builder = builder.Str("component", opts.Component)
	}

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{base: builder.Logger(), layer: layer}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields)
}

// Error emits an error log entry. An "error" field holding an error value
// is encoded through zerolog's Err.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields)
}

// With derives a new logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NewNoOpLogger()
	}
	return &Logger{base: l.base.With().Fields(pairs(fields)).Logger(), layer: l.layer}
}

func (l *Logger) log(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}

	event = event.Str("layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		if err, isErr := fields[i+1].(error); isErr && key == zerolog.ErrorFieldName {
			event = event.Err(err)
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}

// pairs drops malformed key/value entries so zerolog never sees a
// non-string key.
func pairs(fields []interface{}) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok && key != "" {
			out = append(out, key, fields[i+1])
		}
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func sortedKeys(input map[string]interface{}) []string {
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NoOpLogger discards all log entries.
type NoOpLogger struct{}

// NewNoOpLogger returns a ports.Logger that discards all log entries.
func NewNoOpLogger() ports.Logger { return &NoOpLogger{} }

func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) With(...interface{}) ports.Logger              { return n }

var (
	_ ports.Logger = (*Logger)(nil)
	_ ports.Logger = (*NoOpLogger)(nil)
)
