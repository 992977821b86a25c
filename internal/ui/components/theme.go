package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colors a single surface needs.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette enumerates the surfaces used by floating panels and their anchors.
type Palette struct {
	Surface ColourSet
	Tooltip ColourSet
	Accent  ColourSet
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Palette Palette
	Border  lipgloss.Border
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Palette: Palette{
			Surface: ColourSet{
				Base:   ac("#f9fafb", "#111827"),
				OnBase: ac("#111827", "#f9fafb"),
				Muted:  ac("#94a3b8", "#475569"),
			},
			Tooltip: ColourSet{
				Base:   ac("#1f2937", "#e2e8f0"),
				OnBase: ac("#f8fafc", "#0f172a"),
				Muted:  ac("#475569", "#94a3b8"),
			},
			Accent: ColourSet{
				Base:   ac("#3b82f6", "#60a5fa"),
				OnBase: ac("#f8fafc", "#0b1120"),
				Muted:  ac("#2563eb", "#1d4ed8"),
			},
		},
		Border: lipgloss.RoundedBorder(),
	}
}

// WithBorder returns a copy of the theme using border.
func (t Theme) WithBorder(border lipgloss.Border) Theme {
	t.Border = border
	return t
}

// RenderContext carries render-time state.
type RenderContext struct {
	Theme Theme
}

// DefaultContext returns a context with the default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (c RenderContext) WithTheme(theme Theme) RenderContext {
	c.Theme = theme
	return c
}
