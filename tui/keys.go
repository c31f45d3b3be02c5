package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings.
type KeyMap struct {
	Quit          key.Binding
	NextCategory  key.Binding
	PrevCategory  key.Binding
	NextPreset    key.Binding
	PrevPreset    key.Binding
	Add           key.Binding
	Remove        key.Binding
	Custom        key.Binding
	Undo          key.Binding
	ClearCategory key.Binding
	ClearBar      key.Binding
	Save          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev preset"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "add preset"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove preset"),
		),
		Custom: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "custom entry"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		ClearCategory: key.NewBinding(
			key.WithKeys("D", "delete"),
			key.WithHelp("D", "clear category"),
		),
		ClearBar: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "clear bar"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save now"),
		),
	}
}
