// Package diff renders line diffs between a recorded placement snapshot
// and a freshly computed one.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxLines = 2000

const truncated = "... (diff truncated) ..."

// Lines returns a unified-style diff of want against got, or "" when the
// two are identical. Comparison is line-wise so a changed coordinate shows
// up as one removed and one added line.
func Lines(want, got []byte, wantLabel, gotLabel string) string {
	if bytes.Equal(want, got) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", wantLabel, gotLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(want), countLines(got))

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written == maxLines {
				buf.WriteString(truncated + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}
	return buf.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
