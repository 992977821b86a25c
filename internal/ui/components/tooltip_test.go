package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floatkit/internal/domain/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
)

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func TestTooltipMeasureMatchesRender(t *testing.T) {
	tip := NewTooltip("hi")

	size := tip.Measure()
	lines := plainLines(tip.Render(placement.Arrow{}))

	assert.Equal(t, geometry.NewSize(6, 3), size)
	require.Len(t, lines, 3)
	assert.Equal(t, "│ hi │", lines[1])
}

func TestTooltipArrowSitsOnConnectingEdge(t *testing.T) {
	tip := NewTooltip("hi")

	cases := []struct {
		name  string
		arrow placement.Arrow
		row   int
		want  string
	}{
		{name: "top center", arrow: placement.Arrow{Edge: placement.SideTop, Percent: 50}, row: 0, want: "╭──▲─╮"},
		{name: "bottom leading edge avoids corner", arrow: placement.Arrow{Edge: placement.SideBottom, Percent: 0}, row: 2, want: "╰▼───╯"},
		{name: "bottom trailing edge avoids corner", arrow: placement.Arrow{Edge: placement.SideBottom, Percent: 100}, row: 2, want: "╰───▼╯"},
		{name: "left edge", arrow: placement.Arrow{Edge: placement.SideLeft, Percent: 50}, row: 1, want: "◀ hi │"},
		{name: "right edge", arrow: placement.Arrow{Edge: placement.SideRight, Percent: 50}, row: 1, want: "│ hi ▶"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := plainLines(tip.Render(tc.arrow))
			require.Len(t, lines, 3)
			assert.Equal(t, tc.want, lines[tc.row])
		})
	}
}

func TestTooltipWithoutArrowKeepsBorder(t *testing.T) {
	tip := NewTooltip("hi").WithArrow(false)

	lines := plainLines(tip.Render(placement.Arrow{Edge: placement.SideTop, Percent: 50}))

	assert.Equal(t, "╭────╮", lines[0])
	assert.False(t, tip.HasArrow())
}

func TestTooltipWrapsToMaxWidth(t *testing.T) {
	tip := NewTooltip("copy the link to the clipboard").WithMaxWidth(14)

	size := tip.Measure()

	assert.LessOrEqual(t, size.Width, 14.0)
	assert.Greater(t, size.Height, 3.0)

	tip.SetText("ok")
	assert.Equal(t, geometry.NewSize(6, 3), tip.Measure())
	assert.Equal(t, "ok", tip.Text())
}

func TestArrowCell(t *testing.T) {
	assert.Equal(t, 0, arrowCell(50, 0))
	assert.Equal(t, 0, arrowCell(50, 1))
	assert.Equal(t, 1, arrowCell(100, 2))
	assert.Equal(t, 1, arrowCell(-20, 5))
	assert.Equal(t, 2, arrowCell(50, 5))
	assert.Equal(t, 3, arrowCell(250, 5))
}

func TestButtonBounds(t *testing.T) {
	button := NewButton("OK").WithActive(true)

	assert.Equal(t, geometry.NewRect(3, 4, 4, 1), button.Bounds(3, 4))
	assert.True(t, button.IsActive())
	assert.Equal(t, " OK ", ansi.Strip(button.View()))
}
