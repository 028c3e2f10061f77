// Package events provides a small retained node tree with mouse hit-testing
// and DOM-style event dispatch for Bubble Tea views.
//
// Views render to strings, so there is no element tree to ask "what was
// clicked". Components describe the screen regions they drew as Nodes, a
// Document owns the root of that tree, and incoming tea.MouseMsg and
// tea.KeyMsg values are turned into Events that run through a capture phase
// (document listeners), the target's ancestor chain, and a bubble phase.
package events

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen region in cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Handler reacts to an event delivered to a node or listener.
type Handler func(ev *Event) tea.Cmd

// Node is a rectangular region of the rendered screen.
type Node struct {
	ID     string
	Bounds Rect

	// OnClick runs when a click targets this node or bubbles through it.
	OnClick Handler

	// Hidden mirrors aria-hidden. It is informational only; hidden nodes
	// still take part in hit-testing.
	Hidden bool

	parent   *Node
	children []*Node
}

// NewNode creates a detached node.
func NewNode(id string, bounds Rect) *Node {
	return &Node{ID: id, Bounds: bounds}
}

// Append attaches children to n, detaching them from any previous parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches n from its parent. It is a no-op on a detached node.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in paint order.
func (n *Node) Children() []*Node {
	return n.children
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// HitTest returns the deepest node under (x, y), or nil if the point is
// outside n. Children painted later win over earlier siblings.
func (n *Node) HitTest(x, y int) *Node {
	if !n.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}
