package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSplice(t *testing.T) {
	background := "......\n......\n......"

	cases := []struct {
		name    string
		view    string
		overlay string
		x, y    int
		want    string
	}{
		{name: "inside", view: background, overlay: "ab\ncd", x: 2, y: 1, want: "......\n..ab..\n..cd.."},
		{name: "origin", view: background, overlay: "ab", x: 0, y: 0, want: "ab....\n......\n......"},
		{name: "clipped above", view: background, overlay: "ab\ncd", x: 4, y: -1, want: "....cd\n......\n......"},
		{name: "clipped below", view: background, overlay: "ab\ncd", x: 0, y: 2, want: "......\n......\nab...."},
		{name: "clipped left", view: "....", overlay: "abc", x: -1, y: 0, want: "bc.."},
		{name: "short row padded", view: "..", overlay: "X", x: 4, y: 0, want: "..  X"},
		{name: "empty overlay", view: background, overlay: "", x: 1, y: 1, want: background},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Splice(tc.view, tc.overlay, tc.x, tc.y))
		})
	}
}

func TestSplicePreservesStyledBackground(t *testing.T) {
	view := "\x1b[31mredred\x1b[0m"

	out := Splice(view, "X", 3, 0)

	assert.Equal(t, "redXed", ansi.Strip(out))
	assert.Contains(t, out, "\x1b[31m")
}
