package playground

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.stage
	rows := st.stageRows()
	lines := make([]string, 0, rows)
	for row := st.scroll; row < st.scroll+rows; row++ {
		lines = append(lines, pageLine(row, st.width))
	}
	view := strings.Join(lines, "\n")

	anchor := st.Anchor()
	view = spliceAt(view, st.button.WithActive(m.Open()).View(), anchor.X, anchor.Y)
	if m.Open() {
		result := st.frame.Result
		view = spliceAt(view, st.tooltip.Render(result.Arrow), result.X, result.Y)
	}

	return lipgloss.JoinVertical(lipgloss.Left, view, m.statusLine(), m.help.View(m.keys))
}

func (m Model) statusLine() string {
	settings := m.scheduler.Settings()
	result := m.stage.frame.Result

	final := string(result.Placement)
	if result.Placement != settings.Placement {
		final = flippedStyle.Render(final)
	}
	arrow := "off"
	if settings.Arrow.Enabled {
		arrow = fmt.Sprintf("%s %.0f%%", result.Arrow.Edge, result.Arrow.Percent)
	}
	state := "open"
	if !m.Open() {
		state = "closed"
	}

	return statusStyle.Render(fmt.Sprintf("%s → ", settings.Placement)) + final +
		fmt.Sprintf("  %s  arrow %s  x=%g y=%g  scroll %d  %s",
			settings.Strategy, arrow, result.X, result.Y, m.stage.scroll, state)
}

// pageLine draws one row of the scrollable page: a row number and a dot
// every fourth column so scrolling is visible.
func pageLine(row, width int) string {
	if width <= 0 {
		return ""
	}
	label := fmt.Sprintf("%3d ", row)
	if len(label) > width {
		return label[:width]
	}
	var b strings.Builder
	for col := len(label); col < width; col++ {
		if col%4 == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(' ')
		}
	}
	return rulerStyle.Render(label + b.String())
}

func spliceAt(view, overlay string, x, y float64) string {
	return components.Splice(view, overlay, int(math.Round(x)), int(math.Round(y)))
}
