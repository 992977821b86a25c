package placement

import "github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"

// DefaultArrowReserve is the main-axis room left for the arrow glyph.
const DefaultArrowReserve = 10.0

// Position is the panel's top-left corner plus the CSS transform origin
// used by scale-in transitions.
type Position struct {
	X               float64
	Y               float64
	TransformOrigin string
}

// transformOrigins names the panel corner or edge nearest the anchor.
var transformOrigins = map[Placement]string{
	Top:         "center bottom",
	TopStart:    "left bottom",
	TopEnd:      "right bottom",
	Bottom:      "center top",
	BottomStart: "left top",
	BottomEnd:   "right top",
	Left:        "right center",
	LeftStart:   "right top",
	LeftEnd:     "right bottom",
	Right:       "left center",
	RightStart:  "left top",
	RightEnd:    "left bottom",
}

// TransformOrigin returns the CSS transform-origin for a placement.
func TransformOrigin(p Placement) string {
	return transformOrigins[Parse(string(p))]
}

// Calculate converts a resolved placement into raw coordinates, before the
// overflow guard. arrowReserve is added to the main-axis gap; pass 0 when
// the arrow is disabled.
func Calculate(p Placement, anchor geometry.Rect, floating geometry.Size, offset Offset, arrowReserve float64) Position {
	p = Parse(string(p))
	anchor = anchor.Sanitize()
	floating = floating.Sanitize()
	gap := offset.Main + arrowReserve
	cross := crossOrigin(p, anchor, floating) + offset.Cross

	var x, y float64
	switch p.Side() {
	case SideTop:
		x, y = cross, anchor.Top()-floating.Height-gap
	case SideBottom:
		x, y = cross, anchor.Bottom()+gap
	case SideLeft:
		x, y = anchor.Left()-floating.Width-gap, cross
	case SideRight:
		x, y = anchor.Right()+gap, cross
	}

	return Position{X: x, Y: y, TransformOrigin: transformOrigins[p]}
}

// crossOrigin is the panel's leading coordinate on the cross axis, without
// offsets: centered on the anchor, or flush with its leading or trailing edge.
func crossOrigin(p Placement, anchor geometry.Rect, floating geometry.Size) float64 {
	if p.Side().Vertical() {
		switch p.Alignment() {
		case AlignStart:
			return anchor.Left()
		case AlignEnd:
			return anchor.Right() - floating.Width
		default:
			return anchor.CenterX() - floating.Width/2
		}
	}

	switch p.Alignment() {
	case AlignStart:
		return anchor.Top()
	case AlignEnd:
		return anchor.Bottom() - floating.Height
	default:
		return anchor.CenterY() - floating.Height/2
	}
}
