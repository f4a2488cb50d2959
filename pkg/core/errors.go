package core

import "errors"

var (
	// ErrInvalidConfiguration is wrapped by every rejected render, camera or photo setting
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds is returned for pixel coordinates outside a photo
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
