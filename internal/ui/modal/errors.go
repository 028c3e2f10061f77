package modal

import "errors"

// Construction errors
var (
	ErrNoContent  = errors.New("modal: content is required")
	ErrEmptyLabel = errors.New("modal: trigger label is empty")
	ErrNoDocument = errors.New("modal: document is required")
)
