package playground

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestViewDrawsAnchorTooltipAndStatus(t *testing.T) {
	m, _ := newTestModel(t)

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 24)
	require.Contains(t, lines[11], "Copy link")
	require.Contains(t, lines[14], "Saved to clipboard")
	require.Contains(t, lines[13], "▲")
	require.Contains(t, lines[22], "bottom → bottom")
	require.Contains(t, lines[22], "arrow top")
	require.Contains(t, lines[23], "quit")
}

func TestPageLine(t *testing.T) {
	require.Equal(t, "", pageLine(3, 0))
	require.Equal(t, "  7", pageLine(7, 3))
	require.Equal(t, " 12 .   .", ansi.Strip(pageLine(12, 9)))
}
