package placement

import (
	"math"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// SideSpace describes the room on one side of the anchor.
type SideSpace struct {
	// Available is the distance from the anchor edge to the viewport edge,
	// after the safety margin.
	Available float64
	// Needed is the panel's extent along the side's main axis.
	Needed float64
	// Score is Available / Needed, never NaN.
	Score float64
	// HasSpace reports Available >= Needed.
	HasSpace bool
}

// Space is the Space Analyzer output for one pass.
type Space struct {
	Top    SideSpace
	Bottom SideSpace
	Left   SideSpace
	Right  SideSpace
	// Unmeasured is set when the anchor or the panel has no size yet.
	// Every side then reports space and the resolver keeps the request.
	Unmeasured bool
}

// For returns the space on the given side.
func (s Space) For(side Side) SideSpace {
	switch side {
	case SideTop:
		return s.Top
	case SideBottom:
		return s.Bottom
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	default:
		return SideSpace{}
	}
}

// AnalyzeSpace measures how much room the viewport leaves on each side of
// the anchor.
func AnalyzeSpace(anchor geometry.Rect, floating geometry.Size, viewport geometry.Viewport, margin float64) Space {
	anchor = anchor.Sanitize()
	floating = floating.Sanitize()
	inner := viewport.Inset(math.Max(margin, 0))

	space := Space{
		Top:    sideSpace(anchor.Top()-inner.Top(), floating.Height),
		Bottom: sideSpace(inner.Bottom()-anchor.Bottom(), floating.Height),
		Left:   sideSpace(anchor.Left()-inner.Left(), floating.Width),
		Right:  sideSpace(inner.Right()-anchor.Right(), floating.Width),
	}

	if floating.IsZero() || anchor.IsEmpty() {
		space.Unmeasured = true
		for _, side := range sides {
			space = space.with(side, func(s SideSpace) SideSpace {
				s.HasSpace = true
				return s
			})
		}
	}

	return space
}

func sideSpace(available, needed float64) SideSpace {
	if needed <= 0 {
		return SideSpace{Available: available, Needed: 0, Score: 1, HasSpace: true}
	}
	return SideSpace{
		Available: available,
		Needed:    needed,
		Score:     math.Max(available, 0) / needed,
		HasSpace:  available >= needed,
	}
}

func (s Space) with(side Side, fn func(SideSpace) SideSpace) Space {
	switch side {
	case SideTop:
		s.Top = fn(s.Top)
	case SideBottom:
		s.Bottom = fn(s.Bottom)
	case SideLeft:
		s.Left = fn(s.Left)
	case SideRight:
		s.Right = fn(s.Right)
	}
	return s
}
