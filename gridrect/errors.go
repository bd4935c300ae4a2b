package gridrect

import "errors"

// Sentinel errors for gridrect operations. Callers match them with errors.Is;
// returned errors may wrap them with extra context.
var (
	// ErrNonRectangular indicates dense rows of differing lengths.
	ErrNonRectangular = errors.New("gridrect: all rows must have the same length")
	// ErrNegativeDimension indicates a width or height below zero.
	ErrNegativeDimension = errors.New("gridrect: width and height must be non-negative")
	// ErrGridTooLarge indicates a width×height product that does not fit in an int.
	ErrGridTooLarge = errors.New("gridrect: grid area overflows int")
	// ErrNilPredicate indicates a lazy grid was requested without a predicate.
	ErrNilPredicate = errors.New("gridrect: occupancy predicate is nil")
	// ErrNilGrid indicates a nil Grid was passed to an entry point.
	ErrNilGrid = errors.New("gridrect: grid is nil")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("gridrect: invalid option supplied")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridrect: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridrect: no path between specified components")
)
