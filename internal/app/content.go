package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/azmodal/internal/ui/events"
	"github.com/riordanpawley/azmodal/internal/ui/modal"
	"github.com/riordanpawley/azmodal/internal/ui/styles"
)

const keepOpenLabel = "Keep open"

// noteContent is the dialog body shown by the demo. Clicking the text
// closes the modal; the "Keep open" button swallows its click.
type noteContent struct {
	text   string
	styles *styles.Styles
	kept   int
}

func (c *noteContent) body() string {
	return c.styles.ContentText.Render(c.text)
}

func (c *noteContent) button() string {
	return c.styles.ContentButton.Render(keepOpenLabel)
}

// View implements modal.Content
func (c *noteContent) View() string {
	row := c.button()
	if c.kept > 0 {
		row += c.styles.StatusHint.Render(fmt.Sprintf("  kept open %d×", c.kept))
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.body(), "", row)
}

// Regions implements modal.Regioner
func (c *noteContent) Regions() []modal.Region {
	btn := c.button()
	return []modal.Region{{
		ID: "keep-open",
		Bounds: events.Rect{
			X: 0,
			Y: lipgloss.Height(c.body()) + 1,
			W: lipgloss.Width(btn),
			H: lipgloss.Height(btn),
		},
		OnClick: func(ev *events.Event) tea.Cmd {
			c.kept++
			ev.StopPropagation()
			return nil
		},
	}}
}
