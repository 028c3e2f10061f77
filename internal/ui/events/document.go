package events

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies the type of an event.
type Kind int

const (
	Click Kind = iota
	KeyDown
)

// String returns the DOM name of the event kind
func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case KeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Phase selects when a document listener runs relative to node handlers.
type Phase int

const (
	// Bubble listeners run after the target and its ancestors.
	Bubble Phase = iota
	// Capture listeners run before any node handler.
	Capture
)

// Event is a single click or key press travelling through the tree.
type Event struct {
	Kind   Kind
	Target *Node

	// X and Y are set for clicks.
	X, Y int
	// Key is set for key events, using tea.KeyMsg.String() names ("esc", "enter").
	Key string

	stopped bool
}

// StopPropagation prevents the event from reaching further handlers.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

type listener struct {
	id    int
	kind  Kind
	phase Phase
	fn    Handler
}

// Document is the root event target. Its body node spans the whole screen
// and is the mount point for detached (portal) content.
type Document struct {
	body      *Node
	listeners []listener
	nextID    int
}

// NewDocument creates a document with an empty, zero-sized body.
func NewDocument() *Document {
	return &Document{
		body: NewNode("body", Rect{}),
	}
}

// Body returns the root node.
func (d *Document) Body() *Node {
	return d.body
}

// Resize sets the body to cover a width x height screen.
func (d *Document) Resize(width, height int) {
	d.body.Bounds = Rect{W: width, H: height}
}

// Size returns the current body dimensions.
func (d *Document) Size() (width, height int) {
	return d.body.Bounds.W, d.body.Bounds.H
}

// Mount appends n to the body, above everything mounted before it.
// The returned func detaches it again and is safe to call more than once.
func (d *Document) Mount(n *Node) (unmount func()) {
	d.body.Append(n)
	return func() {
		if n.parent == d.body {
			n.Remove()
		}
	}
}

// AddEventListener registers fn for events of the given kind and phase.
// The returned func removes the registration and is idempotent.
func (d *Document) AddEventListener(kind Kind, phase Phase, fn Handler) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, kind: kind, phase: phase, fn: fn})
	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered document listeners.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// Click dispatches a click at (x, y) to the node under it.
// A click outside the body is targeted at the body.
func (d *Document) Click(x, y int) tea.Cmd {
	target := d.body.HitTest(x, y)
	if target == nil {
		target = d.body
	}
	return d.Dispatch(&Event{Kind: Click, Target: target, X: x, Y: y})
}

// KeyDown dispatches a key press. Key events target the body; there is no
// focus tracking.
func (d *Document) KeyDown(key string) tea.Cmd {
	return d.Dispatch(&Event{Kind: KeyDown, Target: d.body, Key: key})
}

// Dispatch runs ev through capture listeners, the target's ancestor chain,
// then bubble listeners, stopping as soon as a handler stops propagation.
func (d *Document) Dispatch(ev *Event) tea.Cmd {
	var cmds []tea.Cmd

	// Handlers may add or remove listeners, so iterate over a snapshot.
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)

	for _, l := range snapshot {
		if ev.stopped {
			return tea.Batch(cmds...)
		}
		if l.kind == ev.Kind && l.phase == Capture {
			cmds = append(cmds, l.fn(ev))
		}
	}

	if ev.Kind == Click {
		for n := ev.Target; n != nil && !ev.stopped; n = n.parent {
			if n.OnClick != nil {
				cmds = append(cmds, n.OnClick(ev))
			}
		}
	}

	for _, l := range snapshot {
		if ev.stopped {
			break
		}
		if l.kind == ev.Kind && l.phase == Bubble {
			cmds = append(cmds, l.fn(ev))
		}
	}

	return tea.Batch(cmds...)
}

// Handle translates Bubble Tea input into document events. Left-button
// presses become clicks and every key message becomes a keydown. Other
// messages are ignored.
func (d *Document) Handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return d.Click(msg.X, msg.Y)
		}
	case tea.KeyMsg:
		return d.KeyDown(msg.String())
	}
	return nil
}
