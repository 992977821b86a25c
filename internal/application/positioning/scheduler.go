// Package positioning keeps a floating panel placed while its scroll
// container scrolls or resizes.
package positioning

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// Settings is the per-panel placement request.
type Settings struct {
	Placement    placement.Placement
	Strategy     placement.Strategy
	Offset       placement.Offset
	Arrow        placement.ArrowOptions
	Margin       float64
	ArrowReserve float64
}

// DefaultSettings mirrors placement.DefaultInput.
func DefaultSettings() Settings {
	in := placement.DefaultInput()
	return Settings{
		Placement:    in.Placement,
		Strategy:     in.Strategy,
		Margin:       in.Margin,
		ArrowReserve: in.ArrowReserve,
	}
}

// Options configures a Scheduler.
type Options struct {
	Settings Settings
	// Container emits scroll and resize. Required for Attach to listen;
	// without one, only explicit Update calls recompute.
	Container ports.ScrollContainer
	// Throttle defaults to DefaultThrottle.
	Throttle time.Duration
	Logger   ports.Logger
	// Clock is used by the throttle; defaults to time.Now.
	Clock func() time.Time
	// Name identifies the panel in log entries.
	Name string
}

// Frame is handed to the rendering layer after every committed pass.
type Frame struct {
	Result placement.Result
	Output placement.Output
}

// RenderFunc applies a frame to the floating panel and its arrow.
type RenderFunc func(Frame)

// Scheduler re-runs the placement pipeline for one floating panel. It is
// either detached (no listeners) or attached (scroll and resize listeners
// registered on its container). Each scheduler owns its subscriptions.
type Scheduler struct {
	measurer ports.Measurer
	render   RenderFunc
	opts     Options
	logger   ports.Logger

	mu        sync.Mutex
	settings  Settings
	throttle  *throttle
	subs      []ports.Subscription
	attached  bool
	latest    placement.Result
	hasLatest bool
}

// NewScheduler creates a detached scheduler. A nil measurer measures
// nothing, which keeps the requested placement.
func NewScheduler(measurer ports.Measurer, render RenderFunc, opts Options) *Scheduler {
	if measurer == nil {
		measurer = Snapshot{}
	}
	var logger ports.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "scheduler", "panel", opts.Name)
	}
	return &Scheduler{
		measurer: measurer,
		render:   render,
		opts:     opts,
		logger:   logger,
		settings: opts.Settings,
		throttle: newThrottle(opts.Throttle, opts.Clock),
	}
}

// Attach performs one immediate pass and starts listening for scroll
// (passive) and resize. Calling Attach while attached is a no-op.
func (s *Scheduler) Attach(ctx context.Context) {
	s.mu.Lock()
	if s.attached {
		s.mu.Unlock()
		return
	}
	s.attached = true
	frame := s.computeLocked()
	if s.opts.Container != nil {
		s.subs = []ports.Subscription{
			s.opts.Container.Subscribe(ports.EventScroll, s.handle, ports.ListenerOptions{Passive: true}),
			s.opts.Container.Subscribe(ports.EventResize, s.handle, ports.ListenerOptions{}),
		}
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug(ctx, "scheduler attached", "placement", frame.Result.Placement)
	}
	s.emit(frame)
}

// Detach removes the listeners. It is safe to call repeatedly and from
// the detached state, e.g. both on close and on unmount.
func (s *Scheduler) Detach() {
	s.mu.Lock()
	if !s.attached {
		s.mu.Unlock()
		return
	}
	subs := s.subs
	s.subs = nil
	s.attached = false
	s.throttle.reset()
	s.mu.Unlock()

	for _, sub := range subs {
		if sub != nil {
			sub.Unsubscribe()
		}
	}
	if s.logger != nil {
		s.logger.Debug(context.Background(), "scheduler detached")
	}
}

// Attached reports whether listeners are registered.
func (s *Scheduler) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached
}

// Update forces an unthrottled pass, for anchor moves and content changes
// the container does not signal. It works in either state.
func (s *Scheduler) Update(ctx context.Context) placement.Result {
	s.mu.Lock()
	frame := s.computeLocked()
	attached := s.attached
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug(ctx, "update forced", "placement", frame.Result.Placement, "attached", attached)
	}
	s.emit(frame)
	return frame.Result
}

// Configure replaces the placement request. The next pass uses it.
func (s *Scheduler) Configure(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Settings returns the current placement request.
func (s *Scheduler) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Latest returns the most recent result, if any pass ran.
func (s *Scheduler) Latest() (placement.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasLatest
}

func (s *Scheduler) handle(ctx context.Context, event ports.ContainerEvent) {
	s.mu.Lock()
	if !s.attached {
		s.mu.Unlock()
		return
	}
	if !s.throttle.allow() {
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Debug(ctx, "tick dropped", "event_type", event.Type)
		}
		return
	}
	previous := s.latest.Placement
	frame := s.computeLocked()
	s.mu.Unlock()

	if s.logger != nil && previous != frame.Result.Placement {
		s.logger.Info(ctx, "placement changed", "from", previous, "to", frame.Result.Placement, "event_type", event.Type)
	}
	s.emit(frame)
}

// computeLocked measures once and runs the pipeline. Callers hold s.mu.
func (s *Scheduler) computeLocked() Frame {
	in := s.input(s.measurer.Anchor(), s.measurer.Floating(), s.measurer.Viewport())
	result := placement.Compute(in)

	s.latest = result
	s.hasLatest = true
	s.throttle.commit()

	return Frame{Result: result, Output: result.Output()}
}

func (s *Scheduler) input(anchor geometry.Rect, floating geometry.Size, viewport geometry.Viewport) placement.Input {
	return placement.Input{
		Anchor:       anchor,
		Floating:     floating,
		Viewport:     viewport,
		Placement:    s.settings.Placement,
		Strategy:     s.settings.Strategy,
		Offset:       s.settings.Offset,
		Arrow:        s.settings.Arrow,
		Margin:       s.settings.Margin,
		ArrowReserve: s.settings.ArrowReserve,
	}
}

func (s *Scheduler) emit(frame Frame) {
	if s.render != nil {
		s.render(frame)
	}
}

// Snapshot is a Measurer over fixed geometry, for one-shot callers and
// virtual anchors.
type Snapshot struct {
	AnchorRect   geometry.Rect
	FloatingSize geometry.Size
	View         geometry.Viewport
}

func (s Snapshot) Anchor() geometry.Rect       { return s.AnchorRect }
func (s Snapshot) Floating() geometry.Size     { return s.FloatingSize }
func (s Snapshot) Viewport() geometry.Viewport { return s.View }

var _ ports.Measurer = Snapshot{}
