// Package components renders floating panels for terminal applications.
//
// Terminal cells stand in for pixels: a panel's rendered width and height
// in cells is its measured size, and the engine's x/y are cell offsets
// into the background view. The flow is:
//
//	tip := components.NewTooltip("Saved 3 files")
//	size := tip.Measure()                 // feed into placement.Input.Floating
//	result := placement.Compute(in)
//	view = components.Splice(view, tip.Render(result.Arrow), int(result.X), int(result.Y))
//
// Styling is theme-driven; DefaultTheme works in light and dark terminals.
package components
