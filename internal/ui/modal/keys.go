package modal

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the keyboard bindings for the trigger and the open dialog
type KeyMap struct {
	Open  key.Binding
	Close key.Binding
}

// DefaultKeyMap returns enter/o to open and esc to close
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// matchesKey reports whether a document key name triggers b
func matchesKey(b key.Binding, name string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), name)
}
