package geom

import "errors"

// ErrInvalidRegion indicates a Region construction where min exceeds max
// on at least one axis.
var ErrInvalidRegion = errors.New("geom: region min exceeds max")
