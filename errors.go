package contour

import "errors"

// Sentinel errors for the validation failure classes. All validation
// errors returned by this package wrap one of these, so callers can
// classify failures with errors.Is.
var (
	// ErrShape reports mismatched grid shapes, wrong dimensionality,
	// or axis lengths that do not match the data grid.
	ErrShape = errors.New("contour: grid shape mismatch")

	// ErrValue reports an invalid argument value, such as a zero step
	// size or an inverted level band.
	ErrValue = errors.New("contour: invalid value")

	// ErrLevel reports a contour level that is not a real number.
	ErrLevel = errors.New("contour: level is not a number")
)
