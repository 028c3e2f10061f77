// Package app contains the demo application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/azmodal/internal/config"
	"github.com/riordanpawley/azmodal/internal/types"
	"github.com/riordanpawley/azmodal/internal/ui/events"
	"github.com/riordanpawley/azmodal/internal/ui/modal"
	"github.com/riordanpawley/azmodal/internal/ui/statusbar"
	"github.com/riordanpawley/azmodal/internal/ui/styles"
	"github.com/riordanpawley/azmodal/internal/ui/toast"
)

// toastTTL is how long a dismissal toast stays on screen
const toastTTL = 3 * time.Second

const intro = "A single modal dialog. Activate the button below to open it; " +
	"dismiss it by clicking outside, pressing Esc, using the X, or clicking its text."

// toastExpiredMsg prunes toasts whose TTL has passed
type toastExpiredMsg time.Time

// Model is the main application state
type Model struct {
	// Event target shared by every mounted component
	doc *events.Document

	// The one modal on the page and its body
	modal *modal.Provider
	note  *noteContent

	// UI state
	keys   keyMap
	help   help.Model
	toasts []types.Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates the application model with the given config
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	st := styles.New()
	doc := events.NewDocument()

	note := &noteContent{text: cfg.Modal.Content, styles: st}
	provider, err := modal.NewProvider(doc, cfg.Modal.Label, note,
		modal.WithStyles(st),
		modal.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create modal: %w", err)
	}

	h := help.New()
	h.Styles.ShortKey = st.StatusHint.Bold(true)
	h.Styles.ShortDesc = st.StatusHint

	return Model{
		doc:    doc,
		modal:  provider,
		note:   note,
		keys:   newKeyMap(provider.Keys()),
		help:   h,
		toasts: []types.Toast{},
		styles: st,
		config: cfg,
		logger: logger,
	}, nil
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return m.modal.Init()
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.doc.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.doc.Handle(msg)

	case modal.ClosedMsg:
		m.logger.Info("modal dismissed", "reason", msg.Reason.String())
		m.toasts = append(m.toasts, types.NewToast(types.ToastInfo, "Closed via "+msg.Reason.String(), time.Now(), toastTTL))
		return m, expireToastsAfter(toastTTL)

	case toastExpiredMsg:
		m.toasts = types.PruneToasts(m.toasts, time.Time(msg))
		return m, nil
	}

	_, cmd := m.modal.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// q would be swallowed by an open dialog, so it only quits from the page
	if key.Matches(msg, m.keys.Quit) && !m.modal.IsModalOpen() {
		return m, tea.Quit
	}

	docCmd := m.doc.Handle(msg)
	_, modalCmd := m.modal.Update(msg)
	return m, tea.Batch(docCmd, modalCmd)
}

func expireToastsAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return toastExpiredMsg(t)
	})
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	page := m.renderPage()

	statusBarView := statusbar.New(m.modal.Phase(), m.width, m.styles).Render()
	helpView := m.help.View(m.keys)

	var toastRow string
	if len(m.toasts) > 0 {
		toastRow = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toast.New(m.styles).Render(m.toasts, m.width))
	}

	mainHeight := max(m.height-lipgloss.Height(statusBarView)-lipgloss.Height(helpView), 1)
	if toastRow != "" {
		mainHeight = max(mainHeight-lipgloss.Height(toastRow), 1)
	}
	mainView := lipgloss.Place(m.width, mainHeight, lipgloss.Left, lipgloss.Top, page)

	parts := []string{mainView}
	if toastRow != "" {
		parts = append(parts, toastRow)
	}
	parts = append(parts, helpView, statusBarView)
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// The modal renders into the whole screen, above page and chrome.
	return m.modal.Render(view)
}

// renderPage draws the page content and records where the trigger landed
func (m Model) renderPage() string {
	heading := m.styles.Heading.Render("azmodal")
	paragraph := m.styles.Paragraph.
		Width(max(min(m.width-m.styles.Page.GetHorizontalPadding(), 60), 10)).
		Render(intro)
	trigger := m.modal.View()

	m.modal.PlaceTrigger(
		m.styles.Page.GetPaddingLeft(),
		m.styles.Page.GetPaddingTop()+lipgloss.Height(heading)+lipgloss.Height(paragraph),
	)

	return m.styles.Page.Render(lipgloss.JoinVertical(lipgloss.Left, heading, paragraph, trigger))
}
