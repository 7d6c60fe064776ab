package message

import "errors"

var (
	// ErrInvalidSummary is raised when a message sentence is empty or does not end with a dot.
	ErrInvalidSummary = errors.New("message must be a non-empty sentence ending with a dot")

	// ErrEmptyContextKey is raised when a context pair has no key.
	ErrEmptyContextKey = errors.New("context key may not be empty")
)
