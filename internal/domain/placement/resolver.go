package placement

import (
	"math"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// switchRatio is how much better another side must score before the auto
// strategy abandons both original candidates.
const switchRatio = 1.5

// Request carries everything the resolver needs besides the space analysis.
type Request struct {
	Placement Placement
	Strategy  Strategy
	Anchor    geometry.Rect
	Floating  geometry.Size
	Viewport  geometry.Viewport
	Margin    float64
	Offset    Offset
}

// Resolve returns the final placement for a request. The result is always
// one of the twelve canonical values.
func Resolve(req Request, space Space) Placement {
	requested := Parse(string(req.Placement))
	strategy := ParseStrategy(string(req.Strategy))

	if strategy == StrategyFixed || space.Unmeasured {
		return requested
	}

	side := resolveSide(requested.Side(), strategy, space)
	align := requested.Alignment()
	if strategy.correctsAlignment() {
		align = correctAlignment(side, align, req)
	}

	return Compose(side, align)
}

func resolveSide(main Side, strategy Strategy, space Space) Side {
	if space.For(main).HasSpace {
		return main
	}

	opposite := main.Opposite()
	switch strategy {
	case StrategyFlip:
		return opposite
	case StrategyAuto:
		if space.For(opposite).HasSpace {
			return opposite
		}

		pair := math.Max(space.For(main).Score, space.For(opposite).Score)

		best, bestScore := main, space.For(main).Score
		for _, candidate := range sides {
			if score := space.For(candidate).Score; score > bestScore {
				best, bestScore = candidate, score
			}
		}
		if bestScore > pair && bestScore >= pair*switchRatio {
			return best
		}
		return main
	default:
		return main
	}
}

// correctAlignment swaps start to end when the panel's leading edge would
// cross the viewport's leading edge inside the margin, and end to start when
// its trailing edge would cross the trailing edge. It never revisits the side.
func correctAlignment(side Side, align Alignment, req Request) Alignment {
	if align == AlignNone {
		return align
	}

	anchor := req.Anchor.Sanitize()
	floating := req.Floating.Sanitize()
	inner := req.Viewport.Inset(math.Max(req.Margin, 0))

	lead := crossOrigin(Compose(side, align), anchor, floating) + req.Offset.Cross
	length, low, high := floating.Width, inner.Left(), inner.Right()
	if !side.Vertical() {
		length, low, high = floating.Height, inner.Top(), inner.Bottom()
	}

	if (align == AlignStart && lead < low) || (align == AlignEnd && lead+length > high) {
		return align.Flip()
	}
	return align
}
