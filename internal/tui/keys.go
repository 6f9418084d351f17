package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the chart viewer key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Advance   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "next chart"),
		),
	}
}
