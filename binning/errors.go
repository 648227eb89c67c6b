// SPDX-License-Identifier: MIT

package binning

import "errors"

// Every message is prefixed with "binning: ..." so call sites can wrap with
// fmt.Errorf("Ctx: %w", ErrX) and callers still match via errors.Is.
var (
	// ErrTooFewBoundaries is returned when a binning has fewer than two boundaries.
	ErrTooFewBoundaries = errors.New("binning: at least two boundaries required")

	// ErrNotIncreasing is returned when boundaries are not strictly increasing.
	ErrNotIncreasing = errors.New("binning: boundaries must be strictly increasing")

	// ErrNaNInf is returned when a boundary or range limit is NaN or ±Inf.
	ErrNaNInf = errors.New("binning: NaN or Inf encountered")

	// ErrBadBinCount is returned by NewUniform for a non-positive cell count.
	ErrBadBinCount = errors.New("binning: bin count must be > 0")

	// ErrBadRange is returned by NewUniform when hi <= lo.
	ErrBadRange = errors.New("binning: range upper limit must exceed lower limit")

	// ErrUnsupportedDimensionality is returned when a grid is asked to span
	// zero or more than MaxDims dimensions.
	ErrUnsupportedDimensionality = errors.New("binning: only 1 to 3 dimensions are supported")

	// ErrNilBinning is returned when a nil *Binning is passed to NewGrid.
	ErrNilBinning = errors.New("binning: nil binning")

	// ErrDuplicateName is returned when two grid dimensions share a name
	// or a dimension has an empty name.
	ErrDuplicateName = errors.New("binning: dimension names must be unique and non-empty")

	// ErrCoordinateLength is returned when a coordinate tuple does not have
	// exactly one entry per grid dimension.
	ErrCoordinateLength = errors.New("binning: coordinate length does not match dimensions")

	// ErrCellOutOfRange is returned when a per-dimension cell index is outside
	// [0, NumBins) or the wrong number of indices is supplied.
	ErrCellOutOfRange = errors.New("binning: cell index out of range")
)
