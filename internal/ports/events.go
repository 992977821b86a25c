package ports

import "context"

const (
	// EventScroll is emitted when the scroll container scrolls.
	EventScroll = "scroll"
	// EventResize is emitted when the scroll container or window resizes.
	EventResize = "resize"
)

// ContainerEvent is a scroll or resize signal from a scroll container.
type ContainerEvent struct {
	Type string
}

// ListenerOptions mirrors the registration flags of a DOM listener.
// Passive listeners promise not to cancel the event.
type ListenerOptions struct {
	Passive bool
}

// EventHandler processes a container event. Dispatch is synchronous.
type EventHandler func(context.Context, ContainerEvent)

// ScrollContainer is anything that emits scroll and resize signals: the
// global window by default, or a specific scrollable ancestor.
// Implementations must be safe for concurrent use.
type ScrollContainer interface {
	Subscribe(eventType string, handler EventHandler, opts ListenerOptions) Subscription
}

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources. Unsubscribe
// is idempotent.
type Subscription interface {
	Unsubscribe()
}
