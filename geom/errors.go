package geom

import "errors"

var (
	// ErrDimensionMismatch signals a point or box whose coordinate count
	// does not match the configured dimensionality.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")
)
