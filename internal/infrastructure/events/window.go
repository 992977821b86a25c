// Package events provides the default scroll container: an in-process bus
// standing in for the global window's scroll and resize signals.
package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Window dispatches scroll and resize events to subscribed listeners.
// Dispatch is synchronous: Publish returns after every handler ran.
// Construct one per screen and pass it to every scheduler that should
// follow it.
type Window struct {
	logger ports.Logger
	subs   map[string][]listener
	nextID int
	mu     sync.RWMutex
}

type listener struct {
	id      int
	handler ports.EventHandler
	opts    ports.ListenerOptions
}

// NewWindow creates an empty window bus. A nil logger discards output.
func NewWindow(logger ports.Logger) *Window {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Window{
		logger: logger.With("component", "window"),
		subs:   make(map[string][]listener),
	}
}

// Publish delivers an event to the listeners registered for its type.
func (w *Window) Publish(ctx context.Context, event ports.ContainerEvent) {
	if w == nil {
		return
	}

	w.mu.RLock()
	handlers := append([]listener(nil), w.subs[event.Type]...)
	w.mu.RUnlock()

	w.logger.Debug(ctx, "container event", "event_type", event.Type, "listeners", len(handlers))

	for _, entry := range handlers {
		entry.handler(ctx, event)
	}
}

// Scroll publishes a scroll event.
func (w *Window) Scroll(ctx context.Context) {
	w.Publish(ctx, ports.ContainerEvent{Type: ports.EventScroll})
}

// Resize publishes a resize event.
func (w *Window) Resize(ctx context.Context) {
	w.Publish(ctx, ports.ContainerEvent{Type: ports.EventResize})
}

// Subscribe registers a handler for the provided event type.
func (w *Window) Subscribe(eventType string, handler ports.EventHandler, opts ports.ListenerOptions) ports.Subscription {
	if w == nil || handler == nil {
		return noopSubscription{}
	}

	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.subs[eventType] = append(w.subs[eventType], listener{id: id, handler: handler, opts: opts})
	w.mu.Unlock()

	return &subscription{cancel: func() { w.remove(eventType, id) }}
}

// Listeners reports how many handlers are registered for eventType.
func (w *Window) Listeners(eventType string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.subs[eventType])
}

func (w *Window) remove(eventType string, id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	handlers := w.subs[eventType]
	for i, entry := range handlers {
		if entry.id == id {
			w.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	if len(w.subs[eventType]) == 0 {
		delete(w.subs, eventType)
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

var _ ports.ScrollContainer = (*Window)(nil)
