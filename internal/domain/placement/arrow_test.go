package placement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
)

func TestAlignArrow(t *testing.T) {
	tests := []struct {
		name      string
		anchor    geometry.Rect
		floating  geometry.Rect
		placement Placement
		edge      Side
		percent   float64
	}{
		{
			name:      "centered below",
			anchor:    geometry.NewRect(100, 100, 50, 20),
			floating:  geometry.NewRect(110, 120, 30, 10),
			placement: Bottom,
			edge:      SideTop,
			percent:   50,
		},
		{
			name:      "partial overlap",
			anchor:    geometry.NewRect(0, 100, 20, 20),
			floating:  geometry.NewRect(5, 120, 100, 10),
			placement: BottomStart,
			edge:      SideTop,
			percent:   7.5,
		},
		{
			name:      "anchor escaped to the left",
			anchor:    geometry.NewRect(0, 0, 10, 10),
			floating:  geometry.NewRect(100, 20, 50, 10),
			placement: Bottom,
			edge:      SideTop,
			percent:   0,
		},
		{
			name:      "anchor escaped to the right",
			anchor:    geometry.NewRect(500, 0, 10, 10),
			floating:  geometry.NewRect(100, 20, 50, 10),
			placement: Top,
			edge:      SideBottom,
			percent:   100,
		},
		{
			name:      "side placement uses the vertical axis",
			anchor:    geometry.NewRect(200, 100, 20, 40),
			floating:  geometry.NewRect(150, 110, 40, 20),
			placement: Left,
			edge:      SideRight,
			percent:   50,
		},
		{
			name:      "zero-size panel defaults to the middle",
			anchor:    geometry.NewRect(0, 0, 10, 10),
			floating:  geometry.NewRect(100, 20, 0, 0),
			placement: Right,
			edge:      SideLeft,
			percent:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arrow := AlignArrow(tt.anchor, tt.floating, tt.placement)
			assert.Equal(t, tt.edge, arrow.Edge)
			assert.InDelta(t, tt.percent, arrow.Percent, 1e-9)
		})
	}
}

func TestAlignArrowNeverProducesNaN(t *testing.T) {
	arrow := AlignArrow(
		geometry.Rect{X: math.NaN(), Y: math.NaN(), Width: math.NaN(), Height: 1},
		geometry.NewRect(0, 0, 10, 10),
		Bottom,
	)
	assert.False(t, math.IsNaN(arrow.Percent))
	assert.GreaterOrEqual(t, arrow.Percent, 0.0)
	assert.LessOrEqual(t, arrow.Percent, 100.0)
}
