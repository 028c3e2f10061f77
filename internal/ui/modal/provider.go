// Package modal implements a dismissible modal dialog for Bubble Tea.
//
// A Provider renders a trigger button and owns the modal's State. Its
// Window mounts an overlay into the shared events.Document while open and
// closes on an outside click, Escape, the close button, or a click on the
// content. Closing fades the frame for FadeDuration before unmounting.
//
//	doc := events.NewDocument()
//	p, err := modal.NewProvider(doc, "Open Modal", modal.Text("Hello"))
//
//	// Update:
//	cmds = append(cmds, doc.Handle(msg))
//	_, cmd := p.Update(msg)
//
//	// View:
//	page := lipgloss.JoinVertical(lipgloss.Left, heading, p.View())
//	p.PlaceTrigger(x, y)
//	return p.Render(page)
package modal

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/azmodal/internal/types"
	"github.com/riordanpawley/azmodal/internal/ui/events"
	"github.com/riordanpawley/azmodal/internal/ui/styles"
)

// Provider owns one modal: its trigger, its State and its Window.
type Provider struct {
	label   string
	doc     *events.Document
	trigger *events.Node
	state   *State
	window  *Window

	styles *styles.Styles
	keys   KeyMap
	logger *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithStyles overrides the default theme.
func WithStyles(st *styles.Styles) Option {
	return func(p *Provider) {
		p.styles = st
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(p *Provider) {
		p.keys = keys
	}
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a closed modal whose trigger and overlay live in doc.
func NewProvider(doc *events.Document, label string, content Content, opts ...Option) (*Provider, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if content == nil {
		return nil, ErrNoContent
	}
	if strings.TrimSpace(label) == "" {
		return nil, ErrEmptyLabel
	}

	p := &Provider{
		label:  label,
		doc:    doc,
		styles: styles.New(),
		keys:   DefaultKeyMap(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.state = NewState(p.logger)
	p.window = newWindow(p.state, doc, content, p.styles, p.keys, p.logger)

	p.trigger = events.NewNode("open-btn", events.Rect{})
	p.trigger.OnClick = func(*events.Event) tea.Cmd {
		return p.OpenModal()
	}
	doc.Mount(p.trigger)

	return p, nil
}

// State returns the shared state handle.
func (p *Provider) State() *State {
	return p.state
}

// Window returns the overlay renderer.
func (p *Provider) Window() *Window {
	return p.window
}

// Trigger returns the trigger button node.
func (p *Provider) Trigger() *events.Node {
	return p.trigger
}

// Keys returns the active key bindings.
func (p *Provider) Keys() KeyMap {
	return p.keys
}

// IsModalOpen reports whether the overlay is mounted.
func (p *Provider) IsModalOpen() bool {
	return p.state.IsOpen()
}

// IsExiting reports whether the fade-out is running.
func (p *Provider) IsExiting() bool {
	return p.state.IsExiting()
}

// Phase returns the current lifecycle stage.
func (p *Provider) Phase() types.Phase {
	return p.state.Phase()
}

// OpenModal opens the modal.
func (p *Provider) OpenModal() tea.Cmd {
	return p.state.Open()
}

// CloseModal starts closing the modal.
func (p *Provider) CloseModal() tea.Cmd {
	return p.state.Close(types.DismissProgrammatic)
}

// Init implements tea.Model.
func (p *Provider) Init() tea.Cmd {
	return nil
}

// Update opens the modal on the Open binding while closed and applies the
// provider's own timer messages. Mouse and Escape handling arrive through
// the document.
func (p *Provider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if !p.state.IsOpen() && key.Matches(msg, p.keys.Open) {
			return p, p.OpenModal()
		}
		return p, nil
	}

	if _, cmd := p.state.Update(msg); cmd != nil {
		return p, cmd
	}
	return p, nil
}

// View renders the trigger button.
func (p *Provider) View() string {
	return p.styles.OpenBtn.Render(p.label)
}

// PlaceTrigger records where the host drew View so clicks can find it.
func (p *Provider) PlaceTrigger(x, y int) {
	view := p.View()
	p.trigger.Bounds = events.Rect{X: x, Y: y, W: lipgloss.Width(view), H: lipgloss.Height(view)}
}

// Render draws the open modal over base, the host's full page view.
func (p *Provider) Render(base string) string {
	return p.window.Render(base)
}
