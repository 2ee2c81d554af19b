package pictor

import "errors"

var (
	// ErrOutOfBounds is returned by pixel lookups outside the image area.
	ErrOutOfBounds = errors.New("location falls outside of the image")

	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrRegionOutOfBounds is returned when a crop region starts outside
	// the image.
	ErrRegionOutOfBounds = errors.New("region falls outside of the image")
)
