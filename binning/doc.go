// Package binning describes the discretised coordinate space a binned
// function lives on.
//
// What:
//
//   - Binning: ordered cell boundaries of one named axis, with O(1) (uniform)
//     or O(log n) (variable) coordinate lookup and a vectorised BinNumbers.
//   - Grid: 1..3 Binnings; flat cell indices in the binned-dataset convention
//     (last dimension fastest), cell volumes.
//   - Histogram: dense cell contents with underflow/overflow guard cells,
//     first dimension fastest; used as a source of nominal shapes.
//
// Out-of-range coordinates clamp to the edge cells in Locate, Index and
// BinNumbers. Histogram.Fill routes them to guard cells instead.
//
// Errors:
//
//   - ErrTooFewBoundaries, ErrNotIncreasing, ErrNaNInf: invalid boundaries.
//   - ErrBadBinCount, ErrBadRange: invalid uniform binning parameters.
//   - ErrUnsupportedDimensionality: zero or more than three dimensions.
//   - ErrNilBinning, ErrDuplicateName: invalid grid dimensions.
//   - ErrCoordinateLength, ErrCellOutOfRange: malformed lookups.
package binning
