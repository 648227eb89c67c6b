// Package histfunc provides Func, a function over a 1..3 dimensional binned
// domain whose value in each cell is an independently adjustable parameter.
//
// 🚀 What it does
//
//	F(x) = gamma[cell(x)]
//
// where cell(x) is located with the grid's binnings and gamma is the
// parameter table. Typical use: per-bin scale factors in a binned
// likelihood fit, where a minimiser moves the gammas and the function is
// evaluated over large batches of events.
//
// ✨ Features:
//   - Scalar evaluation: Evaluate(coord...).
//   - Batch evaluation: EvaluateBatch(columns, out), one column per
//     dimension, no per-point allocation.
//   - Analytic integral: AnalyticalIntegralCode / AnalyticalIntegral, with
//     per-configuration memoised cell volumes.
//   - Per-cell and bulk constant flags, nominal values from a histogram,
//     sampling hints for plotting.
//
// ⚙️ Index conventions:
//
// Coordinates are mapped to cells in the binned-dataset order (last
// dimension fastest, "grid index"). Parameters are stored in histogram
// order (first dimension fastest, "table index"). Parameter and
// SetParamConst take grid indices; Table().Get takes table indices.
//
// Errors (all matchable via errors.Is against this package):
//
//   - ErrSizeMismatch, ErrShapeMismatch: parameters or shape do not fit the grid.
//   - ErrIndexOutOfRange: an index outside the table.
//   - ErrLengthMismatch: malformed batch input.
//   - ErrUnsupportedDimensionality: more than three dimensions.
//   - ErrUnknownCacheCode: an integral code that was never issued.
//
// A Func is not safe for concurrent use.
package histfunc
