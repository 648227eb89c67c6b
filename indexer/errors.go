// SPDX-License-Identifier: MIT

package indexer

import (
	"errors"

	"github.com/katalvlaran/paramhist/binning"
)

var (
	// ErrIndexOutOfRange indicates a flat index (or a per-dimension cell index)
	// outside the cell range. A conversion result outside the range means the
	// cached counts are inconsistent with the caller's data and must not be
	// clamped or retried.
	ErrIndexOutOfRange = errors.New("indexer: index out of range")

	// ErrBadCount indicates a per-dimension cell count below 1.
	ErrBadCount = errors.New("indexer: cell count must be >= 1")
)

// ErrUnsupportedDimensionality is shared with the binning package so both
// layers report the same condition with the same sentinel.
var ErrUnsupportedDimensionality = binning.ErrUnsupportedDimensionality
