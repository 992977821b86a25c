package placement

import (
	"math"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// DefaultMargin is the safety margin kept between a panel and the viewport edge.
const DefaultMargin = 5.0

// Guard clamps a position so the whole panel stays inside the viewport
// minus margin. It runs even after a flip, since flips only fix the far
// overflow. The fixed strategy skips it.
func Guard(pos Position, floating geometry.Size, viewport geometry.Viewport, margin float64, strategy Strategy) Position {
	if ParseStrategy(string(strategy)) == StrategyFixed {
		return pos
	}

	floating = floating.Sanitize()
	inner := viewport.Inset(math.Max(margin, 0))

	pos.X = clamp(pos.X, inner.Left(), inner.Right()-floating.Width)
	pos.Y = clamp(pos.Y, inner.Top(), inner.Bottom()-floating.Height)
	return pos
}

// clamp bounds v to [low, high]; low wins when the range is inverted.
func clamp(v, low, high float64) float64 {
	if math.IsNaN(v) {
		return low
	}
	if v > high {
		v = high
	}
	if v < low {
		v = low
	}
	return v
}
