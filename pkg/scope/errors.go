package scope

import "errors"

var (
	// ErrAlreadyInitialized is returned when an application scope is created
	// while another one is still open.
	ErrAlreadyInitialized = errors.New("application scope already initialized")

	// ErrClosed is returned when a closed scope is used to create a child or
	// is closed again.
	ErrClosed = errors.New("application scope closed")

	// ErrChildrenOpen is returned by Close when child scopes were still open
	// once the context was done.
	ErrChildrenOpen = errors.New("child scopes still open")
)
