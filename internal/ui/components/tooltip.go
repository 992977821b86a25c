package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
)

var arrowGlyphs = map[placement.Side]string{
	placement.SideTop:    "▲",
	placement.SideBottom: "▼",
	placement.SideLeft:   "◀",
	placement.SideRight:  "▶",
}

// Tooltip is a bordered floating panel. When the arrow is enabled the
// glyph replaces one border cell on the edge facing the anchor, so the
// arrow never changes the measured size.
type Tooltip struct {
	text     string
	arrow    bool
	maxWidth int
}

// NewTooltip creates a tooltip with the arrow enabled.
func NewTooltip(text string) *Tooltip {
	return &Tooltip{text: text, arrow: true}
}

// WithArrow toggles the arrow glyph.
func (t *Tooltip) WithArrow(enabled bool) *Tooltip {
	t.arrow = enabled
	return t
}

// WithMaxWidth wraps the text so the panel, border included, fits in
// width cells. Zero disables wrapping.
func (t *Tooltip) WithMaxWidth(width int) *Tooltip {
	t.maxWidth = width
	return t
}

// SetText replaces the content. Callers re-measure afterwards.
func (t *Tooltip) SetText(text string) *Tooltip {
	t.text = text
	return t
}

// Text returns the tooltip content.
func (t *Tooltip) Text() string {
	return t.text
}

// HasArrow reports whether the arrow glyph is drawn.
func (t *Tooltip) HasArrow() bool {
	return t.arrow
}

// Measure returns the rendered size in cells.
func (t *Tooltip) Measure() geometry.Size {
	body := t.body(DefaultTheme())
	return geometry.NewSize(float64(lipgloss.Width(body)), float64(lipgloss.Height(body)))
}

// Render draws the tooltip with the arrow described by arrow.
func (t *Tooltip) Render(arrow placement.Arrow) string {
	return t.RenderWithContext(DefaultContext(), arrow)
}

// RenderWithContext draws the tooltip using the given theme context.
func (t *Tooltip) RenderWithContext(ctx RenderContext, arrow placement.Arrow) string {
	body := t.body(ctx.Theme)
	glyph, ok := arrowGlyphs[arrow.Edge]
	if !t.arrow || !ok {
		return body
	}

	lines := strings.Split(body, "\n")
	width, height := ansi.StringWidth(lines[0]), len(lines)
	styled := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Tooltip.Muted).
		Background(ctx.Theme.Palette.Surface.Base).
		Render(glyph)

	switch arrow.Edge {
	case placement.SideTop:
		lines[0] = spliceLine(lines[0], styled, arrowCell(arrow.Percent, width))
	case placement.SideBottom:
		lines[height-1] = spliceLine(lines[height-1], styled, arrowCell(arrow.Percent, width))
	case placement.SideLeft:
		row := arrowCell(arrow.Percent, height)
		lines[row] = spliceLine(lines[row], styled, 0)
	case placement.SideRight:
		row := arrowCell(arrow.Percent, height)
		lines[row] = spliceLine(lines[row], styled, width-1)
	}

	return strings.Join(lines, "\n")
}

func (t *Tooltip) body(theme Theme) string {
	palette := theme.Palette.Tooltip
	style := lipgloss.NewStyle().
		Border(theme.Border).
		BorderForeground(palette.Muted).
		Foreground(palette.OnBase).
		Background(palette.Base).
		Padding(0, 1)

	// Width excludes the border but includes padding.
	if inner := t.maxWidth - style.GetHorizontalBorderSize(); t.maxWidth > 0 && inner > 2 {
		if lipgloss.Width(t.text)+style.GetHorizontalPadding() > inner {
			style = style.Width(inner)
		}
	}

	return style.Render(t.text)
}

// arrowCell maps a 0-100 percentage onto a cell index along an edge of
// length cells, keeping the glyph off the corners when the edge allows it.
func arrowCell(percent float64, length int) int {
	if length <= 0 {
		return 0
	}
	cell := int(math.Round(percent / 100 * float64(length-1)))
	low, high := 0, length-1
	if length >= 3 {
		low, high = 1, length-2
	}
	if cell < low {
		return low
	}
	if cell > high {
		return high
	}
	return cell
}
