package render

import "errors"

var (
	// ErrNilMapper is raised when a nil mapper is registered.
	ErrNilMapper = errors.New("mapper may not be nil")

	// ErrNilType is raised when a mapper is registered for a nil type.
	ErrNilType = errors.New("type may not be nil")
)
