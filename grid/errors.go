package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a point or region argument not contained in
	// the target's region.
	ErrOutOfBounds = errors.New("grid: point or region out of bounds")
	// ErrShortBuffer indicates FromSlice was given fewer elements than the
	// declared region holds.
	ErrShortBuffer = errors.New("grid: buffer shorter than region area")
	// ErrRegionMismatch indicates Zip operands whose regions differ.
	ErrRegionMismatch = errors.New("grid: operand regions do not match")
	// ErrAliasingViolation is the panic value raised when an exclusive
	// view's region would overlap another live view, or when a grid is
	// resized or displaced while views are live.
	ErrAliasingViolation = errors.New("grid: aliasing violation")
)
