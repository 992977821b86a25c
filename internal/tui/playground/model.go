// Package playground is an interactive terminal demo of the placement
// engine: a tooltip follows an anchor button around a scrollable page.
package playground

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/application/positioning"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

const (
	// chromeRows are reserved below the stage for the status and help lines.
	chromeRows  = 2
	minPageRows = 60
	scrollStep  = 5
)

// settleMsg asks for one forced pass after a burst of scroll events, since
// the scheduler drops ticks inside its throttle window.
type settleMsg struct{}

// Options configures the playground.
type Options struct {
	Settings positioning.Settings
	Throttle time.Duration
	Logger   ports.Logger
	// Window is the scroll container; a private one is created when nil.
	Window *events.Window
	Text   string
	Label  string
	Width  int
	Height int
}

// stage is the mutable scene the scheduler measures. It is shared by
// pointer across Model copies.
type stage struct {
	width, height int
	pageRows      int
	scroll        int
	anchorCol     int
	anchorRow     int
	button        *components.Button
	tooltip       *components.Tooltip
	frame         positioning.Frame
	frames        int
}

func (s *stage) Anchor() geometry.Rect {
	return s.button.Bounds(s.anchorCol, s.anchorRow-s.scroll)
}

func (s *stage) Floating() geometry.Size {
	return s.tooltip.Measure()
}

func (s *stage) Viewport() geometry.Viewport {
	return geometry.WindowViewport(float64(s.width), float64(s.stageRows()))
}

func (s *stage) stageRows() int {
	if rows := s.height - chromeRows; rows > 0 {
		return rows
	}
	return 0
}

func (s *stage) render(frame positioning.Frame) {
	s.frame = frame
	s.frames++
}

// Model contains the Bubbletea state for the placement playground.
type Model struct {
	ctx       context.Context
	stage     *stage
	scheduler *positioning.Scheduler
	window    *events.Window
	logger    ports.Logger
	keys      KeyMap
	help      help.Model
	throttle  time.Duration
	quitting  bool
}

// NewModel builds the playground with the anchor centered on the page.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Text == "" {
		opts.Text = "Saved to clipboard"
	}
	if opts.Label == "" {
		opts.Label = "Copy link"
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Throttle <= 0 {
		opts.Throttle = positioning.DefaultThrottle
	}
	window := opts.Window
	if window == nil {
		window = events.NewWindow(opts.Logger)
	}

	st := &stage{
		button:  components.NewButton(opts.Label),
		tooltip: components.NewTooltip(opts.Text).WithArrow(opts.Settings.Arrow.Enabled),
	}
	st.resize(opts.Width, opts.Height)
	st.anchorCol = opts.Width/2 - len(opts.Label)/2
	st.anchorRow = st.stageRows() / 2

	scheduler := positioning.NewScheduler(st, st.render, positioning.Options{
		Settings:  opts.Settings,
		Container: window,
		Throttle:  opts.Throttle,
		Logger:    opts.Logger,
		Name:      "playground-tooltip",
	})

	return Model{
		ctx:       ctx,
		stage:     st,
		scheduler: scheduler,
		window:    window,
		logger:    opts.Logger,
		keys:      DefaultKeyMap,
		help:      help.New(),
		throttle:  opts.Throttle,
	}
}

// Init opens the tooltip.
func (m Model) Init() tea.Cmd {
	m.scheduler.Attach(m.ctx)
	return nil
}

// Result returns the latest placement.
func (m Model) Result() placement.Result {
	return m.stage.frame.Result
}

// Settings returns the current placement request.
func (m Model) Settings() positioning.Settings {
	return m.scheduler.Settings()
}

// Open reports whether the tooltip is attached and drawn.
func (m Model) Open() bool {
	return m.scheduler.Attached()
}

// Scroll returns the page scroll offset in rows.
func (m Model) Scroll() int {
	return m.stage.scroll
}

// Anchor returns the anchor's viewport rectangle.
func (m Model) Anchor() geometry.Rect {
	return m.stage.Anchor()
}

// Frames counts passes rendered so far.
func (m Model) Frames() int {
	return m.stage.frames
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Close detaches the scheduler. Safe to call more than once.
func (m Model) Close() {
	m.scheduler.Detach()
}

func (s *stage) resize(width, height int) {
	s.width, s.height = width, height
	s.pageRows = minPageRows
	if rows := s.stageRows() * 3; rows > s.pageRows {
		s.pageRows = rows
	}
	s.clamp()
}

func (s *stage) maxScroll() int {
	if limit := s.pageRows - s.stageRows(); limit > 0 {
		return limit
	}
	return 0
}

// clamp keeps the anchor on the page and the scroll offset in range.
func (s *stage) clamp() {
	s.scroll = clampInt(s.scroll, 0, s.maxScroll())
	width := int(s.button.Bounds(0, 0).Width)
	s.anchorCol = clampInt(s.anchorCol, 0, s.width-width)
	s.anchorRow = clampInt(s.anchorRow, 0, s.pageRows-1)
}

func clampInt(v, low, high int) int {
	if v > high {
		v = high
	}
	if v < low {
		v = low
	}
	return v
}
