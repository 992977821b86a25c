package placement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

func scenarioInput(anchor geometry.Rect, floating geometry.Size, p Placement, strategy Strategy) Input {
	in := DefaultInput()
	in.Anchor = anchor
	in.Floating = floating
	in.Viewport = geometry.WindowViewport(800, 600)
	in.Placement = p
	in.Strategy = strategy
	return in
}

func TestComputeScenarios(t *testing.T) {
	t.Run("no room above a viewport-top anchor flips to bottom", func(t *testing.T) {
		in := scenarioInput(geometry.NewRect(0, 0, 100, 20), geometry.NewSize(50, 200), Top, StrategyAuto)
		result := Compute(in)
		assert.Equal(t, Bottom, result.Placement)
	})

	t.Run("prevent-overflow keeps the left edge on screen", func(t *testing.T) {
		in := scenarioInput(geometry.NewRect(0, 0, 100, 20), geometry.NewSize(300, 50), TopStart, StrategyPreventOverflow)
		result := Compute(in)
		assert.Equal(t, SideTop, result.Placement.Side())
		assert.GreaterOrEqual(t, result.X, 0.0)
	})

	t.Run("centered anchor with a main-axis offset", func(t *testing.T) {
		anchor := geometry.NewRect(350, 290, 100, 20)
		in := scenarioInput(anchor, geometry.NewSize(100, 50), Bottom, StrategyAuto)
		in.Offset = PairOffset(0, 8)

		result := Compute(in)

		assert.Equal(t, Bottom, result.Placement)
		assert.Equal(t, anchor.Bottom()+8, result.Y)
		assert.Equal(t, anchor.CenterX()-50, result.X)
		assert.Equal(t, "center top", result.TransformOrigin)
	})

	t.Run("fixed strategy keeps an overflowing top placement", func(t *testing.T) {
		in := scenarioInput(geometry.NewRect(100, 0, 100, 20), geometry.NewSize(100, 50), Top, StrategyFixed)
		result := Compute(in)
		assert.Equal(t, Top, result.Placement)
		assert.Equal(t, -50.0, result.Y)
	})
}

func TestComputeArrowReserve(t *testing.T) {
	in := scenarioInput(geometry.NewRect(350, 290, 100, 20), geometry.NewSize(100, 50), Bottom, StrategyAuto)

	in.Arrow = ArrowOptions{Enabled: true}
	assert.Equal(t, 320.0, Compute(in).Y)

	in.Arrow = ArrowOptions{Enabled: true, Size: 4}
	assert.Equal(t, 314.0, Compute(in).Y)

	in.Arrow = ArrowOptions{}
	assert.Equal(t, 310.0, Compute(in).Y)
}

func TestComputeNormalizesGarbage(t *testing.T) {
	in := Input{
		Anchor:    geometry.NewRect(10, 10, -5, -5),
		Floating:  geometry.NewSize(-1, 40),
		Viewport:  geometry.WindowViewport(800, 600),
		Placement: Placement("upside-down"),
		Strategy:  Strategy("chaotic"),
		Margin:    -10,
	}

	result := Compute(in)

	assert.Equal(t, Bottom, result.Placement)
	assert.True(t, result.Rect().Valid())
}

func randomInput(rng *rand.Rand) Input {
	const vw, vh, margin = 800.0, 600.0, DefaultMargin
	fw := 1 + rng.Float64()*(vw-2*margin-1)
	fh := 1 + rng.Float64()*(vh-2*margin-1)
	aw := rng.Float64() * 300
	ah := rng.Float64() * 200
	ax := rng.Float64() * (vw - aw)
	ay := rng.Float64() * (vh - ah)

	all := All()
	nonFixed := []Strategy{StrategyFlip, StrategyPreventOverflow, StrategyAuto}

	in := DefaultInput()
	in.Anchor = geometry.NewRect(ax, ay, aw, ah)
	in.Floating = geometry.NewSize(fw, fh)
	in.Viewport = geometry.WindowViewport(vw, vh)
	in.Placement = all[rng.Intn(len(all))]
	in.Strategy = nonFixed[rng.Intn(len(nonFixed))]
	in.Offset = PairOffset(rng.Float64()*40-20, rng.Float64()*20)
	in.Arrow = ArrowOptions{Enabled: rng.Intn(2) == 0}
	return in
}

func TestComputeContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const eps = 1e-9

	for i := 0; i < 2000; i++ {
		in := randomInput(rng)
		result := Compute(in)
		box := result.Rect()

		require.GreaterOrEqual(t, box.Left(), in.Margin-eps, "iteration %d: %+v", i, in)
		require.GreaterOrEqual(t, box.Top(), in.Margin-eps, "iteration %d: %+v", i, in)
		require.LessOrEqual(t, box.Right(), in.Viewport.Width-in.Margin+eps, "iteration %d: %+v", i, in)
		require.LessOrEqual(t, box.Bottom(), in.Viewport.Height-in.Margin+eps, "iteration %d: %+v", i, in)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		in := randomInput(rng)
		require.Equal(t, Compute(in), Compute(in))
	}
}

func TestComputeDomainClosureAndArrowBound(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	requests := []string{"", "top", "nonsense", "left-end", "top-", "-start", "bottom-middle", "RIGHT"}

	for i := 0; i < 1000; i++ {
		in := randomInput(rng)
		in.Placement = Placement(requests[rng.Intn(len(requests))])
		in.Strategy = Strategies()[rng.Intn(len(Strategies()))]

		result := Compute(in)

		require.True(t, result.Placement.Valid(), "placement %q", result.Placement)
		require.GreaterOrEqual(t, result.Arrow.Percent, 0.0)
		require.LessOrEqual(t, result.Arrow.Percent, 100.0)
	}
}
