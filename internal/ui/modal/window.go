package modal

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/azmodal/internal/types"
	"github.com/riordanpawley/azmodal/internal/ui/events"
	"github.com/riordanpawley/azmodal/internal/ui/styles"
)

// closeLabel is the text of the close control
const closeLabel = "X"

// Window renders the overlay and dialog frame while its State is open.
//
// On mount it attaches an overlay node (covering the screen) to the
// document body, with the frame, close button and content nested inside,
// and registers two document listeners: a capture-phase click listener for
// outside clicks and a keydown listener for Escape. Both are removed on
// unmount.
type Window struct {
	state   *State
	doc     *events.Document
	content Content
	styles  *styles.Styles
	keys    KeyMap
	logger  *slog.Logger

	overlay  *events.Node
	frame    *events.Node
	closeBtn *events.Node
	body     *events.Node

	unmount   func()
	listeners []func()
}

func newWindow(state *State, doc *events.Document, content Content, st *styles.Styles, keys KeyMap, logger *slog.Logger) *Window {
	w := &Window{
		state:   state,
		doc:     doc,
		content: content,
		styles:  st,
		keys:    keys,
		logger:  logger,
	}
	state.Subscribe(w.sync)
	return w
}

// Mounted reports whether the window's nodes and listeners are attached.
func (w *Window) Mounted() bool {
	return w.unmount != nil
}

// Frame returns the dialog frame node, or nil while closed. Clicks on any
// node it contains count as inside the dialog.
func (w *Window) Frame() *events.Node {
	return w.frame
}

// Overlay returns the overlay node, or nil while closed.
func (w *Window) Overlay() *events.Node {
	return w.overlay
}

// CloseButton returns the close control node, or nil while closed.
func (w *Window) CloseButton() *events.Node {
	return w.closeBtn
}

// ContentNode returns the node carrying the content's close handler, or nil
// while closed.
func (w *Window) ContentNode() *events.Node {
	return w.body
}

func (w *Window) sync() {
	switch {
	case w.state.IsOpen() && !w.Mounted():
		w.mount()
	case !w.state.IsOpen() && w.Mounted():
		w.teardown()
	}
	if w.overlay != nil {
		w.overlay.Hidden = !w.state.IsOpen()
	}
}

func (w *Window) mount() {
	w.overlay = events.NewNode("overlay", events.Rect{})
	w.frame = events.NewNode("modal", events.Rect{})
	w.closeBtn = events.NewNode("close-btn", events.Rect{})
	w.body = events.NewNode("content", events.Rect{})

	w.closeBtn.OnClick = func(*events.Event) tea.Cmd {
		return w.state.Close(types.DismissCloseButton)
	}
	w.body.OnClick = func(*events.Event) tea.Cmd {
		return w.state.Close(types.DismissContentClick)
	}

	w.frame.Append(w.closeBtn, w.body)
	w.overlay.Append(w.frame)
	w.unmount = w.doc.Mount(w.overlay)

	w.listeners = []func(){
		w.doc.AddEventListener(events.Click, events.Capture, w.handleClick),
		w.doc.AddEventListener(events.KeyDown, events.Bubble, w.handleKeyDown),
	}

	w.layout()
	w.logger.Debug("modal window mounted", "id", w.state.ID(), "listeners", w.doc.ListenerCount())
}

func (w *Window) teardown() {
	for _, remove := range w.listeners {
		remove()
	}
	w.listeners = nil

	w.unmount()
	w.unmount = nil
	w.overlay, w.frame, w.closeBtn, w.body = nil, nil, nil, nil

	w.logger.Debug("modal window unmounted", "id", w.state.ID(), "listeners", w.doc.ListenerCount())
}

// handleClick dismisses on any click whose target is outside the frame.
// It runs in the capture phase, so content handlers that stop propagation
// cannot hide an outside click from it.
func (w *Window) handleClick(ev *events.Event) tea.Cmd {
	if w.frame == nil || w.frame.Contains(ev.Target) {
		return nil
	}
	return w.state.Close(types.DismissOutsideClick)
}

func (w *Window) handleKeyDown(ev *events.Event) tea.Cmd {
	if !matchesKey(w.keys.Close, ev.Key) {
		return nil
	}
	return w.state.Close(types.DismissEscape)
}

// frameLayout is one rendered frame and the screen regions it occupies.
type frameLayout struct {
	view    string
	frame   events.Rect
	close   events.Rect
	content events.Rect
}

func (w *Window) frameStyle() lipgloss.Style {
	if w.state.IsExiting() {
		return w.styles.FadeOut
	}
	return w.styles.Modal
}

// measure renders the frame and computes where it lands when centered on
// the document.
func (w *Window) measure() frameLayout {
	st := w.frameStyle()

	closeView := w.styles.CloseBtn.Render(closeLabel)
	body := w.content.View()

	innerW := max(lipgloss.Width(body), lipgloss.Width(closeView))
	header := lipgloss.PlaceHorizontal(innerW, lipgloss.Right, closeView)
	view := st.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))

	screenW, screenH := w.doc.Size()
	fw, fh := lipgloss.Width(view), lipgloss.Height(view)
	x := max((screenW-fw)/2, 0)
	y := max((screenH-fh)/2, 0)

	innerX := x + st.GetBorderLeftSize() + st.GetPaddingLeft()
	innerY := y + st.GetBorderTopSize() + st.GetPaddingTop()
	cw, ch := lipgloss.Width(closeView), lipgloss.Height(closeView)

	return frameLayout{
		view:    view,
		frame:   events.Rect{X: x, Y: y, W: fw, H: fh},
		close:   events.Rect{X: innerX + innerW - cw, Y: innerY, W: cw, H: ch},
		content: events.Rect{X: innerX, Y: innerY + ch + 1, W: lipgloss.Width(body), H: lipgloss.Height(body)},
	}
}

// layout measures the frame and moves the mounted nodes to match what is
// about to be drawn.
func (w *Window) layout() frameLayout {
	l := w.measure()
	if !w.Mounted() {
		return l
	}

	screenW, screenH := w.doc.Size()
	w.overlay.Bounds = events.Rect{W: screenW, H: screenH}
	w.frame.Bounds = l.frame
	w.closeBtn.Bounds = l.close
	w.body.Bounds = l.content

	for _, child := range append([]*events.Node(nil), w.body.Children()...) {
		child.Remove()
	}
	if r, ok := w.content.(Regioner); ok {
		for _, region := range r.Regions() {
			n := events.NewNode(region.ID, region.Bounds.Offset(l.content.X, l.content.Y))
			n.OnClick = region.OnClick
			w.body.Append(n)
		}
	}
	return l
}

// View returns the rendered frame, or "" while closed.
func (w *Window) View() string {
	if !w.state.IsOpen() {
		return ""
	}
	return w.measure().view
}

// Render draws the overlay and frame on top of base. While closed it
// returns base unchanged.
func (w *Window) Render(base string) string {
	if !w.Mounted() {
		return base
	}
	l := w.layout()
	screenW, screenH := w.doc.Size()

	dimmed := w.styles.Overlay.Render(ansi.Strip(base))
	return overlayAt(dimmed, l.view, l.frame.X, l.frame.Y, screenW, screenH)
}
