package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/azmodal/internal/types"
	"github.com/riordanpawley/azmodal/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	phase  types.Phase
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given phase, width, and styles
func New(phase types.Phase, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		phase:  phase,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.PhaseBadge(sb.phase).Render(sb.phase.String())

	hints := GetHints(sb.phase)

	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	} else {
		content = badge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
