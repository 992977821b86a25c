package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// Button is the anchor a floating panel attaches to (visual only).
type Button struct {
	label  string
	active bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(theme.Palette.Accent.OnBase).
		Background(theme.Palette.Accent.Base)

	if b.active {
		style = style.Bold(true).Underline(true)
	}

	return style
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// Bounds returns the button's rectangle when drawn at column x, row y.
func (b *Button) Bounds(x, y int) geometry.Rect {
	view := b.View()
	return geometry.NewRect(float64(x), float64(y), float64(lipgloss.Width(view)), float64(lipgloss.Height(view)))
}
