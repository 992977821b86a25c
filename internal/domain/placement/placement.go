// Package placement computes where a floating panel (tooltip, popover,
// dropdown, menu) is drawn relative to its anchor.
//
// A pass runs as a pure pipeline over value types:
//
//	space := AnalyzeSpace(anchor, floating, viewport, margin)
//	final := Resolve(request, space)
//	pos := Guard(Calculate(final, anchor, floating, offset, reserve), floating, viewport, margin, strategy)
//	arrow := AlignArrow(anchor, floating.At(pos.X, pos.Y), final)
//
// Compute wires these steps together. Nothing in this package returns an
// error: malformed geometry degrades to a valid, possibly sub-optimal,
// position.
package placement

import "strings"

// Side is the main side of the anchor the panel is drawn on.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

var sides = []Side{SideTop, SideBottom, SideLeft, SideRight}

// Sides returns the four sides in resolution order.
func Sides() []Side {
	return append([]Side(nil), sides...)
}

// Opposite returns the side across the anchor.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideTop
	}
}

// Vertical reports whether the main axis is vertical (top/bottom), which
// makes the cross axis horizontal.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// Alignment positions the panel along the cross axis.
type Alignment string

const (
	AlignNone  Alignment = ""
	AlignStart Alignment = "start"
	AlignEnd   Alignment = "end"
)

// Flip swaps start and end; AlignNone is returned unchanged.
func (a Alignment) Flip() Alignment {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return AlignNone
	}
}

// Placement is one of the twelve canonical side/alignment combinations.
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
)

// DefaultPlacement is used for empty or unrecognized requests.
const DefaultPlacement = Bottom

var placements = []Placement{
	Top, TopStart, TopEnd,
	Bottom, BottomStart, BottomEnd,
	Left, LeftStart, LeftEnd,
	Right, RightStart, RightEnd,
}

// All returns the twelve canonical placements.
func All() []Placement {
	return append([]Placement(nil), placements...)
}

// Parse maps a string onto the canonical domain, falling back to
// DefaultPlacement for anything it does not recognize.
func Parse(value string) Placement {
	p := Placement(strings.ToLower(strings.TrimSpace(value)))
	if p.Valid() {
		return p
	}
	return DefaultPlacement
}

// Compose recombines a side and an alignment. An invalid side yields
// DefaultPlacement; an invalid alignment is dropped.
func Compose(side Side, align Alignment) Placement {
	if !side.Valid() {
		return DefaultPlacement
	}
	switch align {
	case AlignStart, AlignEnd:
		return Placement(string(side) + "-" + string(align))
	default:
		return Placement(side)
	}
}

// Valid reports whether p is one of the twelve canonical values.
func (p Placement) Valid() bool {
	for _, candidate := range placements {
		if p == candidate {
			return true
		}
	}
	return false
}

// Side returns the main side. Invalid placements report the default side.
func (p Placement) Side() Side {
	if !p.Valid() {
		return DefaultPlacement.Side()
	}
	side, _, _ := strings.Cut(string(p), "-")
	return Side(side)
}

// Alignment returns the cross-axis alignment.
func (p Placement) Alignment() Alignment {
	if !p.Valid() {
		return AlignNone
	}
	_, align, _ := strings.Cut(string(p), "-")
	return Alignment(align)
}

func (p Placement) String() string {
	return string(p)
}
