package einkcover

import "errors"

var (
	// ErrEmptyImage is returned when the decoded image has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrBadDimensions is returned when the target dimensions are not positive.
	ErrBadDimensions = errors.New("target dimensions must be positive")
)
