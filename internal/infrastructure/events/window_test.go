package events

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

func TestWindowDeliversToMatchingListeners(t *testing.T) {
	t.Parallel()

	window := NewWindow(nil)
	var scrolls, resizes int
	window.Subscribe(ports.EventScroll, func(context.Context, ports.ContainerEvent) { scrolls++ }, ports.ListenerOptions{Passive: true})
	window.Subscribe(ports.EventResize, func(context.Context, ports.ContainerEvent) { resizes++ }, ports.ListenerOptions{})

	window.Scroll(context.Background())
	window.Scroll(context.Background())
	window.Resize(context.Background())

	require.Equal(t, 2, scrolls)
	require.Equal(t, 1, resizes)
}

func TestWindowUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	window := NewWindow(nil)
	var first, second int
	sub := window.Subscribe(ports.EventScroll, func(context.Context, ports.ContainerEvent) { first++ }, ports.ListenerOptions{})
	window.Subscribe(ports.EventScroll, func(context.Context, ports.ContainerEvent) { second++ }, ports.ListenerOptions{})

	sub.Unsubscribe()
	sub.Unsubscribe()
	window.Scroll(context.Background())

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
	require.Equal(t, 1, window.Listeners(ports.EventScroll))
}

func TestWindowNilHandlerIsIgnored(t *testing.T) {
	t.Parallel()

	window := NewWindow(nil)
	sub := window.Subscribe(ports.EventScroll, nil, ports.ListenerOptions{})
	sub.Unsubscribe()
	require.Zero(t, window.Listeners(ports.EventScroll))
}

func TestWindowLogsDispatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)

	window := NewWindow(logger)
	window.Subscribe(ports.EventResize, func(context.Context, ports.ContainerEvent) {}, ports.ListenerOptions{})
	window.Resize(ports.WithCorrelationID(context.Background(), "win-1"))

	require.Contains(t, buf.String(), `"event_type":"resize"`)
	require.Contains(t, buf.String(), `"component":"window"`)
	require.Contains(t, buf.String(), `"correlation_id":"win-1"`)
}
