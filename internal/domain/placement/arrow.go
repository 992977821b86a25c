package placement

import (
	"math"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// Arrow tells the rendering layer where to draw the pointer glyph.
type Arrow struct {
	// Edge is the panel edge facing the anchor.
	Edge Side `json:"edge" yaml:"edge"`
	// Percent locates the glyph along Edge, in [0, 100].
	Percent float64 `json:"percent" yaml:"percent"`
}

// AlignArrow points the arrow at the middle of the cross-axis overlap
// between anchor and panel. When they do not overlap the percentage is
// clamped, which leaves the glyph at the corner nearest the anchor.
func AlignArrow(anchor, floating geometry.Rect, p Placement) Arrow {
	p = Parse(string(p))
	anchor = anchor.Sanitize()
	floating = floating.Sanitize()
	arrow := Arrow{Edge: p.Side().Opposite(), Percent: 50}

	start, length := floating.Left(), floating.Width
	low := math.Max(anchor.Left(), floating.Left())
	high := math.Min(anchor.Right(), floating.Right())
	if !p.Side().Vertical() {
		start, length = floating.Top(), floating.Height
		low = math.Max(anchor.Top(), floating.Top())
		high = math.Min(anchor.Bottom(), floating.Bottom())
	}

	if length <= 0 {
		return arrow
	}

	mid := (low + high) / 2
	arrow.Percent = clamp((mid-start)/length*100, 0, 100)
	return arrow
}
