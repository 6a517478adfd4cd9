package geom

import "errors"

// Sentinel errors. Call sites wrap these with the offending Point or Size
// so callers can match with errors.Is while still seeing the coordinates.
var (
	// ErrNegativeSize reports a Size built from a negative component.
	ErrNegativeSize = errors.New("negative size component")

	// ErrOutOfBounds reports a Point outside a Table's Size.
	ErrOutOfBounds = errors.New("point out of bounds")
)
