// Package integral memoises the setup of analytic integrals of a binned
// function.
//
// A configuration is the pair (variables integrated analytically,
// normalisation set), compared by value and independent of order. The
// Manager issues one 1-based code per configuration; code 0 (NoAnalytic)
// is reserved for "no analytic integral available". Each code owns an
// Element holding per-cell weights (cell volumes), built once by the
// caller-supplied Builder. Evaluating an integral is then a single dot
// product between the current parameter values and those weights.
//
// Errors:
//
//   - ErrUnknownCacheCode: a code that was never issued.
//   - ErrLengthMismatch: parameter values not aligned with the weights.
package integral
