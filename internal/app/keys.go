package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/azmodal/internal/ui/modal"
)

// keyMap combines the modal bindings with application-level ones
type keyMap struct {
	modal.KeyMap
	Quit key.Binding
}

func newKeyMap(modalKeys modal.KeyMap) keyMap {
	return keyMap{
		KeyMap: modalKeys,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
