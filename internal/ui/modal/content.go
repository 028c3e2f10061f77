package modal

import "github.com/riordanpawley/azmodal/internal/ui/events"

// Content is the single element shown inside the dialog frame. Clicking it
// closes the modal unless one of its regions stops propagation.
//
// Wrap the content in a container only if that container is part of the
// Content itself: outside-click detection is measured against the frame, so
// any extra wrapper counts as inside the dialog.
type Content interface {
	View() string
}

// Region is an interactive area inside the content. Bounds are relative to
// the top-left cell of the content's View.
type Region struct {
	ID      string
	Bounds  events.Rect
	OnClick events.Handler
}

// Regioner is implemented by content that has its own click targets.
// Region handlers run before the content's close handler and may call
// ev.StopPropagation to keep the modal open.
type Regioner interface {
	Regions() []Region
}

// Text is plain text content.
type Text string

// View implements Content.
func (t Text) View() string {
	return string(t)
}
