package mandel

import "errors"

// Validation errors for render parameters.
var (
	// ErrEmptyPalette indicates a palette too short to tell members from
	// escaping points.
	ErrEmptyPalette = errors.New("mandel: palette needs at least two characters")

	// ErrPalette indicates a palette character that would not print as a
	// single visible cell, such as a newline or tab.
	ErrPalette = errors.New("mandel: palette characters must be printable")

	// ErrDimensions indicates a non-positive grid width or height.
	ErrDimensions = errors.New("mandel: grid dimensions must be positive")

	// ErrBounds indicates a degenerate or inverted plane region.
	ErrBounds = errors.New("mandel: region minimum must be below maximum")
)
