package color

import "errors"

var (
	// ErrInvalidFormat is returned for hex input that is not 3 or 6 hex digits.
	ErrInvalidFormat = errors.New("invalid hex color format")

	// ErrInvalidArgument is returned when an option is outside its allowed range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput is returned when a converter receives channel values
	// outside 0-255.
	ErrInvalidInput = errors.New("invalid color input")
)
