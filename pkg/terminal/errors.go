package terminal

import "errors"

// ErrUnknownEncoding is returned when an encoding name cannot be parsed.
var ErrUnknownEncoding = errors.New("unknown terminal encoding")
