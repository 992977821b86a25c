// Package geometry holds the immutable value types measured once per
// placement pass: rectangles, sizes, points and the viewport.
package geometry

import "math"

// Rect is an axis-aligned rectangle in viewport-relative pixels.
// Rects are values; every operation returns a new Rect.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect builds a rect from its origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// FromEdges builds a rect from its four edges.
func FromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// VirtualPoint returns a 1x1 anchor at the given point, for floating panels
// that have no backing element (context menus). A 0x0 anchor would be
// treated as unmeasured and never flip.
func VirtualPoint(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: 1, Height: 1}
}

func (r Rect) Top() float64    { return r.Y }
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Valid reports whether the rect has non-negative, finite dimensions.
func (r Rect) Valid() bool {
	return r.Width >= 0 && r.Height >= 0 && finite(r.X) && finite(r.Y) && finite(r.Width) && finite(r.Height)
}

// IsEmpty reports whether the rect has no area on either axis. An empty
// anchor usually means the element was not measured yet.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 && r.Height <= 0
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Contains reports whether other lies entirely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.Left() >= r.Left() && other.Top() >= r.Top() &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the overlapping region of r and other. The second
// return value is false when the rects do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := math.Max(r.Left(), other.Left())
	top := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if right < left || bottom < top {
		return Rect{}, false
	}
	return FromEdges(left, top, right, bottom), true
}

// Sanitize replaces negative or non-finite fields with zero so downstream
// math never sees NaN.
func (r Rect) Sanitize() Rect {
	clean := Rect{X: zeroIfNaN(r.X), Y: zeroIfNaN(r.Y), Width: zeroIfNaN(r.Width), Height: zeroIfNaN(r.Height)}
	if clean.Width < 0 {
		clean.Width = 0
	}
	if clean.Height < 0 {
		clean.Height = 0
	}
	return clean
}

// Size is a measured width and height.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewSize builds a size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsZero reports whether either dimension is unmeasured.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// At places the size at (x, y).
func (s Size) At(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

// Sanitize clamps negative and non-finite dimensions to zero.
func (s Size) Sanitize() Size {
	return s.At(0, 0).Sanitize().Size()
}

// Point is a coordinate pair.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Viewport is the visible region of the scroll container, expressed in
// the same coordinate space as anchor rects. The global window has its
// origin at (0, 0).
type Viewport struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// WindowViewport returns a viewport anchored at the origin.
func WindowViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Bounds returns the viewport as a rect.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// Inset returns the viewport bounds shrunk by margin on every side.
func (v Viewport) Inset(margin float64) Rect {
	return Rect{X: v.X + margin, Y: v.Y + margin, Width: v.Width - 2*margin, Height: v.Height - 2*margin}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func zeroIfNaN(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}
