// SPDX-License-Identifier: MIT

package histfunc

import (
	"errors"

	"github.com/katalvlaran/paramhist/binning"
	"github.com/katalvlaran/paramhist/indexer"
	"github.com/katalvlaran/paramhist/integral"
	"github.com/katalvlaran/paramhist/param"
)

var (
	// ErrNilGrid is returned by New when no grid is supplied.
	ErrNilGrid = errors.New("histfunc: nil grid")

	// ErrLengthMismatch is returned by EvaluateBatch for a wrong column count,
	// columns of unequal length or an output buffer that is too short.
	ErrLengthMismatch = errors.New("histfunc: length mismatch")
)

// The full error taxonomy of a Func, re-exported so callers can match every
// condition via errors.Is against this package alone. They are the same
// values as in the packages that detect them.
var (
	// ErrSizeMismatch: parameter count != cell count, or a rebinning that
	// changes a dimension's cell count.
	ErrSizeMismatch = param.ErrSizeMismatch

	// ErrShapeMismatch: a shape source with the wrong number of data cells.
	ErrShapeMismatch = param.ErrShapeMismatch

	// ErrIndexOutOfRange: a flat index outside the table. Indicates
	// inconsistent cell counts or a bad caller-supplied index.
	ErrIndexOutOfRange = indexer.ErrIndexOutOfRange

	// ErrUnsupportedDimensionality: zero or more than three dimensions.
	ErrUnsupportedDimensionality = binning.ErrUnsupportedDimensionality

	// ErrUnknownCacheCode: an integral code this Func never issued.
	ErrUnknownCacheCode = integral.ErrUnknownCacheCode

	// ErrCoordinateLength: a scalar coordinate with the wrong number of values.
	ErrCoordinateLength = binning.ErrCoordinateLength
)
