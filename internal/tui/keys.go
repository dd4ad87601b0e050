package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings.
// Cursor movement lives in components.GridKeys.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding
	Search key.Binding
	Filter key.Binding
	Open   key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "s"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter results"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat search"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
