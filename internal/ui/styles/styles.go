package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/azmodal/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Page
	Page      lipgloss.Style
	Heading   lipgloss.Style
	Paragraph lipgloss.Style

	// Modal classes: .open-btn, .overlay, .modal, .modal.fade-out, .close-btn
	OpenBtn  lipgloss.Style
	Overlay  lipgloss.Style
	Modal    lipgloss.Style
	FadeOut  lipgloss.Style
	CloseBtn lipgloss.Style

	// Content
	ContentText   lipgloss.Style
	ContentButton lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusHint lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	modal := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Lavender).
		Foreground(Text).
		Padding(1, 2)

	return &Styles{
		Page: lipgloss.NewStyle().
			Padding(1, 2),

		Heading: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		Paragraph: lipgloss.NewStyle().
			Foreground(Subtext1).
			MarginBottom(1),

		OpenBtn: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 2),

		// The page under an open modal is redrawn in a single muted color.
		Overlay: lipgloss.NewStyle().
			Foreground(Surface2),

		Modal: modal,

		// Same frame geometry as Modal so the content does not shift.
		FadeOut: modal.
			BorderForeground(Surface1).
			Foreground(Overlay0).
			Faint(true),

		CloseBtn: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true).
			Padding(0, 1),

		ContentText: lipgloss.NewStyle().
			Foreground(Text),

		ContentButton: lipgloss.NewStyle().
			Foreground(Base).
			Background(Green).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// PhaseBadge returns the status badge style for a modal phase
func (s *Styles) PhaseBadge(phase types.Phase) lipgloss.Style {
	color, ok := PhaseColors[phase]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(Base).
		Bold(true).
		Padding(0, 1)
}
