package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "debug", Layer: "application", Component: "scheduler"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "placement changed", "placement", "bottom")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "application", entries[0]["layer"])
	require.Equal(t, "scheduler", entries[0]["component"])
	require.Equal(t, "abc123", entries[0]["correlation_id"])
	require.Equal(t, "bottom", entries[0]["placement"])
	require.Equal(t, "placement changed", entries[0]["message"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.With("component", "window").Warn(context.Background(), "slow listener", "event", "scroll")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "window", entries[0]["component"])
	require.Equal(t, "scroll", entries[0]["event"])
	require.Equal(t, "infrastructure", entries[0]["layer"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "info"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerEncodesErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Error(context.Background(), "config rejected", "error", errors.New("boom"), 42, "ignored")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "boom", entries[0]["error"])
	require.Equal(t, "error", entries[0]["level"])
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestConsoleFormatWritesHumanOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatConsole})
	require.NoError(t, err)

	logger.Info(context.Background(), "attached", "panel", "tooltip")
	require.Contains(t, buf.String(), "attached")
	require.Contains(t, buf.String(), "panel=tooltip")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	require.Same(t, noOp, noOp.With("key", "value"))
}

func TestBufferFlushesInOrder(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(10)
	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	buffer.Logger().Info(ctx, "attached", "component", "scheduler")
	buffer.Logger().With("component", "window").Error(ctx, "failed", "attempt", 1)
	require.Equal(t, 2, buffer.Len())

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, &out)
	require.Len(t, entries, 2)
	require.Equal(t, "attached", entries[0]["message"])
	require.Equal(t, "scheduler", entries[0]["component"])
	require.Equal(t, "failed", entries[1]["message"])
	require.Equal(t, "window", entries[1]["component"])
	require.Equal(t, "buffered", entries[1]["correlation_id"])
	require.Zero(t, buffer.Len())
}

func TestBufferDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(2)
	logger := buffer.Logger()
	logger.Info(context.Background(), "one")
	logger.Info(context.Background(), "two")
	logger.Info(context.Background(), "three")

	var out bytes.Buffer
	delegate, err := New(Options{Writer: &out})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, &out)
	require.Len(t, entries, 2)
	require.Equal(t, "two", entries[0]["message"])
	require.Equal(t, "three", entries[1]["message"])
}
