package placement

import (
	"math"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

// ArrowOptions enables the pointer glyph. Size, when positive, replaces
// the input's ArrowReserve as the main-axis gap left for the glyph.
type ArrowOptions struct {
	Enabled bool
	Size    float64
}

// Input is one measurement snapshot fed through the pipeline.
type Input struct {
	Anchor       geometry.Rect
	Floating     geometry.Size
	Viewport     geometry.Viewport
	Placement    Placement
	Strategy     Strategy
	Offset       Offset
	Arrow        ArrowOptions
	Margin       float64
	ArrowReserve float64
}

// DefaultInput returns an input with the engine defaults applied: bottom
// placement, auto strategy, a 5px margin and a 10px arrow reserve.
func DefaultInput() Input {
	return Input{
		Placement:    DefaultPlacement,
		Strategy:     DefaultStrategy,
		Margin:       DefaultMargin,
		ArrowReserve: DefaultArrowReserve,
	}
}

// Result is the outcome of one computation pass. Results are recomputed,
// never patched.
type Result struct {
	Placement       Placement
	X               float64
	Y               float64
	Width           float64
	Height          float64
	TransformOrigin string
	Arrow           Arrow
}

// Rect returns the panel's final bounding box.
func (r Result) Rect() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.Width, r.Height)
}

// Compute runs Space Analyzer, Placement Resolver, Position Calculator,
// Overflow Guard and Arrow Aligner in order. It is deterministic: equal
// inputs give equal results.
func Compute(in Input) Result {
	in = normalize(in)

	space := AnalyzeSpace(in.Anchor, in.Floating, in.Viewport, in.Margin)
	final := Resolve(Request{
		Placement: in.Placement,
		Strategy:  in.Strategy,
		Anchor:    in.Anchor,
		Floating:  in.Floating,
		Viewport:  in.Viewport,
		Margin:    in.Margin,
		Offset:    in.Offset,
	}, space)

	pos := Calculate(final, in.Anchor, in.Floating, in.Offset, arrowReserve(in))
	pos = Guard(pos, in.Floating, in.Viewport, in.Margin, in.Strategy)

	panel := in.Floating.At(pos.X, pos.Y)
	return Result{
		Placement:       final,
		X:               pos.X,
		Y:               pos.Y,
		Width:           in.Floating.Width,
		Height:          in.Floating.Height,
		TransformOrigin: pos.TransformOrigin,
		Arrow:           AlignArrow(in.Anchor, panel, final),
	}
}

func normalize(in Input) Input {
	in.Placement = Parse(string(in.Placement))
	in.Strategy = ParseStrategy(string(in.Strategy))
	in.Anchor = in.Anchor.Sanitize()
	in.Floating = in.Floating.Sanitize()
	in.Offset = Offset{Cross: finiteOr(in.Offset.Cross, 0), Main: finiteOr(in.Offset.Main, 0)}
	in.Margin = math.Max(finiteOr(in.Margin, 0), 0)
	in.ArrowReserve = math.Max(finiteOr(in.ArrowReserve, 0), 0)
	return in
}

func arrowReserve(in Input) float64 {
	if !in.Arrow.Enabled {
		return 0
	}
	if in.Arrow.Size > 0 {
		return in.Arrow.Size
	}
	return in.ArrowReserve
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
