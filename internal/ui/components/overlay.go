package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Splice draws overlay over view with its top-left cell at column x,
// row y. Truncation is ANSI-aware so styling on either side of the
// overlay survives. Rows outside the view are clipped; short rows are
// padded with spaces up to x.
func Splice(view, overlay string, x, y int) string {
	if overlay == "" {
		return view
	}

	viewLines := strings.Split(view, "\n")
	for index, overlayLine := range strings.Split(overlay, "\n") {
		row := y + index
		if row < 0 || row >= len(viewLines) {
			continue
		}
		viewLines[row] = spliceLine(viewLines[row], overlayLine, x)
	}

	return strings.Join(viewLines, "\n")
}

func spliceLine(line, overlay string, x int) string {
	if x < 0 {
		overlay = ansi.TruncateLeft(overlay, -x, "")
		x = 0
	}

	lineWidth := ansi.StringWidth(line)
	overlayWidth := ansi.StringWidth(overlay)
	styled := strings.Contains(line, "\x1b[")

	var result strings.Builder
	if x > 0 {
		result.WriteString(ansi.Truncate(line, x, ""))
		if lineWidth < x {
			result.WriteString(strings.Repeat(" ", x-lineWidth))
		}
	}
	if styled {
		result.WriteString(sgrReset)
	}
	result.WriteString(overlay)
	if styled {
		result.WriteString(sgrReset)
	}

	if suffixStart := x + overlayWidth; suffixStart < lineWidth {
		result.WriteString(ansi.TruncateLeft(line, suffixStart, ""))
	}

	return result.String()
}
