package statusbar

import "github.com/riordanpawley/azmodal/internal/types"

// GetHints returns the keybinding hints for the given modal phase
func GetHints(phase types.Phase) string {
	switch phase {
	case types.PhaseClosed:
		return "Enter/click: open  q: quit"
	case types.PhaseOpen:
		return "Esc: close  click outside: close  X: close"
	case types.PhaseClosing:
		// Nothing to do while the fade runs
		return ""
	default:
		return ""
	}
}
