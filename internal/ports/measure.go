package ports

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// Measurer reads live geometry for one floating panel. Measurement is the
// expensive operation of a positioning pass; the scheduler calls each
// method at most once per pass.
type Measurer interface {
	// Anchor returns the anchor rect: a measured trigger element or a
	// caller-supplied virtual rect.
	Anchor() geometry.Rect
	// Floating returns the panel's current size. Panels may reflow between
	// passes, so this is re-read on every tick.
	Floating() geometry.Size
	// Viewport returns the visible region of the scroll container.
	Viewport() geometry.Viewport
}
