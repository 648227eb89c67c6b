// SPDX-License-Identifier: MIT

package param

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paramhist/binning"
	"github.com/katalvlaran/paramhist/indexer"
)

var (
	// ErrSizeMismatch is returned when the number of bound parameters differs
	// from the number of cells of the domain.
	ErrSizeMismatch = errors.New("param: parameter count does not match cell count")

	// ErrShapeMismatch is returned when an external shape source supplies a
	// number of data cells different from the table size.
	ErrShapeMismatch = errors.New("param: shape does not match cell count")

	// ErrNilParameter is returned when a slot holds no ScalarParameter.
	ErrNilParameter = errors.New("param: slot is not a scalar parameter")

	// ErrAlreadyBound is returned by BindFrom on a table that already holds slots.
	ErrAlreadyBound = errors.New("param: table already bound")
)

// Shared sentinels: a table index out of range and a bad dimensionality mean
// the same thing at every layer.
var (
	ErrIndexOutOfRange           = indexer.ErrIndexOutOfRange
	ErrUnsupportedDimensionality = binning.ErrUnsupportedDimensionality
)

// SlotError reports a problem with one slot of a parameter list.
type SlotError struct {
	Index int
	Err   error
}

func (e SlotError) Error() string {
	return fmt.Sprintf("param: slot %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e SlotError) Unwrap() error { return e.Err }
