package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectEdges(t *testing.T) {
	tests := map[string]struct {
		rect                     Rect
		top, left, right, bottom float64
	}{
		"origin":   {rect: NewRect(0, 0, 100, 20), top: 0, left: 0, right: 100, bottom: 20},
		"offset":   {rect: NewRect(10, 30, 5, 5), top: 30, left: 10, right: 15, bottom: 35},
		"negative": {rect: NewRect(-10, -5, 10, 10), top: -5, left: -10, right: 0, bottom: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.top, tt.rect.Top())
			assert.Equal(t, tt.left, tt.rect.Left())
			assert.Equal(t, tt.right, tt.rect.Right())
			assert.Equal(t, tt.bottom, tt.rect.Bottom())
		})
	}
}

func TestFromEdgesRoundTrips(t *testing.T) {
	r := FromEdges(10, 20, 110, 70)
	require.Equal(t, NewRect(10, 20, 100, 50), r)
	assert.Equal(t, 60.0, r.CenterX())
	assert.Equal(t, 45.0, r.CenterY())
}

func TestRectValid(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 0).Valid())
	assert.False(t, NewRect(0, 0, -1, 10).Valid())
	assert.False(t, NewRect(0, 0, 10, -1).Valid())
	assert.False(t, NewRect(math.NaN(), 0, 10, 10).Valid())
}

func TestRectTranslateDoesNotMutate(t *testing.T) {
	original := NewRect(1, 2, 3, 4)
	moved := original.Translate(10, 10)

	assert.Equal(t, NewRect(1, 2, 3, 4), original)
	assert.Equal(t, NewRect(11, 12, 3, 4), moved)
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 100, 100)

	overlap, ok := a.Intersect(NewRect(50, 50, 100, 100))
	require.True(t, ok)
	assert.Equal(t, NewRect(50, 50, 50, 50), overlap)

	_, ok = a.Intersect(NewRect(200, 200, 10, 10))
	assert.False(t, ok)

	touching, ok := a.Intersect(NewRect(100, 0, 10, 10))
	require.True(t, ok)
	assert.Equal(t, 0.0, touching.Width)
}

func TestRectContains(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	assert.True(t, outer.Contains(NewRect(10, 10, 20, 20)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(NewRect(90, 90, 20, 20)))
}

func TestSanitize(t *testing.T) {
	r := Rect{X: math.NaN(), Y: math.Inf(1), Width: -5, Height: 3}.Sanitize()
	assert.Equal(t, Rect{Height: 3}, r)

	s := Size{Width: math.NaN(), Height: -1}.Sanitize()
	assert.True(t, s.IsZero())
}

func TestVirtualPointIsNotEmpty(t *testing.T) {
	p := VirtualPoint(40, 50)
	assert.False(t, p.IsEmpty())
	assert.True(t, NewRect(40, 50, 0, 0).IsEmpty())
}

func TestViewportInset(t *testing.T) {
	v := WindowViewport(800, 600)
	assert.Equal(t, NewRect(5, 5, 790, 590), v.Inset(5))
	assert.Equal(t, NewRect(0, 0, 800, 600), v.Bounds())
}
