package playground

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floatkit/internal/application/positioning"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.stage.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.window.Resize(m.ctx)
		return m, nil

	case settleMsg:
		if m.scheduler.Attached() {
			m.scheduler.Update(m.ctx)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.scheduler.Detach()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveAnchor(0, -1)
	case key.Matches(msg, m.keys.Down):
		return m.moveAnchor(0, 1)
	case key.Matches(msg, m.keys.Left):
		return m.moveAnchor(-2, 0)
	case key.Matches(msg, m.keys.Right):
		return m.moveAnchor(2, 0)

	case key.Matches(msg, m.keys.ScrollUp):
		return m.scroll(-scrollStep)
	case key.Matches(msg, m.keys.ScrollDown):
		return m.scroll(scrollStep)

	case key.Matches(msg, m.keys.NextPlacement):
		return m.reconfigure(func(s *positioning.Settings) { s.Placement = cyclePlacement(s.Placement, 1) })
	case key.Matches(msg, m.keys.PrevPlacement):
		return m.reconfigure(func(s *positioning.Settings) { s.Placement = cyclePlacement(s.Placement, -1) })
	case key.Matches(msg, m.keys.NextStrategy):
		return m.reconfigure(func(s *positioning.Settings) { s.Strategy = cycleStrategy(s.Strategy) })
	case key.Matches(msg, m.keys.ToggleArrow):
		return m.reconfigure(func(s *positioning.Settings) {
			s.Arrow.Enabled = !s.Arrow.Enabled
			m.stage.tooltip.WithArrow(s.Arrow.Enabled)
		})

	case key.Matches(msg, m.keys.TogglePanel):
		if m.scheduler.Attached() {
			m.scheduler.Detach()
		} else {
			m.scheduler.Attach(m.ctx)
		}
		return m, nil
	}

	return m, nil
}

// moveAnchor shifts the anchor on the page. Anchor moves are not signaled
// by the container, so they force a pass.
func (m Model) moveAnchor(dx, dy int) (tea.Model, tea.Cmd) {
	m.stage.anchorCol += dx
	m.stage.anchorRow += dy
	m.stage.clamp()
	if m.scheduler.Attached() {
		m.scheduler.Update(m.ctx)
	}
	return m, nil
}

// scroll moves the page and publishes a scroll event. A settle tick
// follows so the final position is computed even when the event itself
// lands inside the throttle window.
func (m Model) scroll(delta int) (tea.Model, tea.Cmd) {
	before := m.stage.scroll
	m.stage.scroll += delta
	m.stage.clamp()
	if m.stage.scroll == before {
		return m, nil
	}
	m.window.Scroll(m.ctx)
	return m, tea.Tick(m.throttle, func(time.Time) tea.Msg { return settleMsg{} })
}

func (m Model) reconfigure(edit func(*positioning.Settings)) (tea.Model, tea.Cmd) {
	settings := m.scheduler.Settings()
	edit(&settings)
	m.scheduler.Configure(settings)
	m.scheduler.Update(m.ctx)
	return m, nil
}

func cyclePlacement(current placement.Placement, step int) placement.Placement {
	all := placement.All()
	for i, p := range all {
		if p == current {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return placement.DefaultPlacement
}

func cycleStrategy(current placement.Strategy) placement.Strategy {
	all := placement.Strategies()
	for i, s := range all {
		if s == current {
			return all[(i+1)%len(all)]
		}
	}
	return placement.DefaultStrategy
}
