package playground

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the playground key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding

	NextPlacement key.Binding
	PrevPlacement key.Binding
	NextStrategy  key.Binding
	ToggleArrow   key.Binding
	TogglePanel   key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap moves the anchor with arrows or hjkl and scrolls the page
// with page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "move right"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	NextPlacement: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "next placement"),
	),
	PrevPlacement: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "previous placement"),
	),
	NextStrategy: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "strategy"),
	),
	ToggleArrow: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "arrow"),
	),
	TogglePanel: key.NewBinding(
		key.WithKeys("t", "enter"),
		key.WithHelp("t", "open/close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPlacement, k.NextStrategy, k.ToggleArrow, k.TogglePanel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ScrollUp, k.ScrollDown},
		{k.NextPlacement, k.PrevPlacement, k.NextStrategy, k.ToggleArrow},
		{k.TogglePanel, k.Help, k.Quit},
	}
}
