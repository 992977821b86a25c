package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

const defaultBufferLimit = 1000

type bufferedEntry struct {
	ctx    context.Context
	level  string
	msg    string
	fields []interface{}
}

// Buffer holds log entries while the terminal is owned by a full-screen
// program. Once full, the oldest entry is discarded.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// NewBuffer creates a buffer holding at most limit entries (1000 when limit <= 0).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit, entries: make([]bufferedEntry, 0, limit)}
}

// Logger returns a ports.Logger writing into the buffer.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Len reports the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays buffered entries into delegate in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = make([]bufferedEntry, 0, b.limit)
	b.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case "debug":
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case "warn":
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case "error":
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

func (b *Buffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[:0], b.entries[1:]...)
	}
	b.entries = append(b.entries, entry)
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "debug", msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "info", msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "warn", msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "error", msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	return &bufferedLogger{buffer: l.buffer, fields: append(append([]interface{}{}, l.fields...), fields...)}
}

func (l *bufferedLogger) add(ctx context.Context, level, msg string, fields []interface{}) {
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
