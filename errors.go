package poisson

import (
	"errors"
	"fmt"
)

// Errors returned by the sampling entry points. Use errors.Is to test for
// them; the returned errors wrap these with the offending value.
var (
	// ErrInvalidParameter reports a non-positive or non-finite radius,
	// an empty region, or a non-positive attempt count or tile size.
	ErrInvalidParameter = errors.New("poisson: invalid parameter")

	// ErrMaskMismatch reports a mask whose bounds do not cover the region.
	ErrMaskMismatch = errors.New("poisson: mask does not cover region")

	// ErrTileFailure reports that a tile of a parallel run failed. The
	// whole run fails and no partial result is returned.
	ErrTileFailure = errors.New("poisson: tile failed")
)

// errCellOccupied is an internal invariant violation: an accepted point
// mapped to a grid cell that already holds a sample.
var errCellOccupied = errors.New("poisson: grid cell already occupied")

// TileError is the error of one failed tile in a parallel run.
// It matches both ErrTileFailure and its cause under errors.Is.
type TileError struct {
	// Tile is the sub-region the failing engine was sampling.
	Tile Region

	// Err is the underlying cause.
	Err error
}

func (e *TileError) Error() string {
	return fmt.Sprintf("poisson: tile %v failed: %v", e.Tile, e.Err)
}

// Unwrap returns ErrTileFailure and the cause.
func (e *TileError) Unwrap() []error {
	return []error{ErrTileFailure, e.Err}
}
