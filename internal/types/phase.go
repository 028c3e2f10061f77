// Package types contains shared types used across the application.
package types

// Phase is the visible lifecycle stage of a modal
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseClosing
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "CLOSED"
	case PhaseOpen:
		return "OPEN"
	case PhaseClosing:
		return "CLOSING"
	default:
		return "UNKNOWN"
	}
}

// DismissReason records which interaction closed a modal
type DismissReason int

const (
	DismissProgrammatic DismissReason = iota
	DismissOutsideClick
	DismissEscape
	DismissCloseButton
	DismissContentClick
)

// String returns a human readable reason, used in logs and toasts
func (r DismissReason) String() string {
	switch r {
	case DismissOutsideClick:
		return "outside click"
	case DismissEscape:
		return "escape"
	case DismissCloseButton:
		return "close button"
	case DismissContentClick:
		return "content click"
	default:
		return "programmatic"
	}
}
