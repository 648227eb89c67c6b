// SPDX-License-Identifier: MIT

// Package param - fixed-size table of scalar parameter slots.
//
// Purpose:
//   - Hold exactly one parameter per cell, in table order (first dimension fastest).
//   - Enforce size == Π cell counts at bind time; the table is never resized.
//   - Load nominal values from external storage that interleaves guard cells.

package param

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/paramhist/indexer"
)

// Table is an ordered, fixed-size list of parameter slots, one per cell.
// Slots are referenced, not owned: the same parameter may be shared with a
// fitter or another table.
type Table struct {
	counts indexer.Counts
	slots  []ScalarParameter
	bound  bool
}

// NewTable returns an unbound table for a domain with the given counts.
// Bind it once with BindFrom.
func NewTable(counts indexer.Counts) *Table {
	return &Table{counts: counts}
}

// Bind is NewTable followed by BindFrom.
func Bind(counts indexer.Counts, params []ScalarParameter) (*Table, error) {
	t := NewTable(counts)
	if err := t.BindFrom(params); err != nil {
		return nil, err
	}

	return t, nil
}

// BindFrom installs the ordered parameter list. It may be called once.
// All nil slots are reported together, each as a SlotError.
//
// Errors: ErrAlreadyBound, ErrSizeMismatch, ErrNilParameter (via SlotError).
func (t *Table) BindFrom(params []ScalarParameter) error {
	if t.bound {
		return fmt.Errorf("Table.BindFrom: %w", ErrAlreadyBound)
	}
	if len(params) != t.counts.Total {
		return fmt.Errorf("Table.BindFrom: %d parameters for %d cells: %w", len(params), t.counts.Total, ErrSizeMismatch)
	}
	var err error
	for i, p := range params {
		if p == nil {
			err = multierr.Append(err, SlotError{Index: i, Err: ErrNilParameter})
		}
	}
	if err != nil {
		return err
	}
	t.slots = append([]ScalarParameter(nil), params...)
	t.bound = true

	return nil
}

// Counts returns the cell counts the table was built for.
func (t *Table) Counts() indexer.Counts { return t.counts }

// Size returns the number of bound slots (0 before BindFrom).
func (t *Table) Size() int { return len(t.slots) }

// Get returns the parameter at table index i.
//
// Errors: ErrIndexOutOfRange.
func (t *Table) Get(i int) (ScalarParameter, error) {
	if i < 0 || i >= len(t.slots) {
		return nil, fmt.Errorf("Table.Get(%d): size %d: %w", i, len(t.slots), ErrIndexOutOfRange)
	}

	return t.slots[i], nil
}

// At returns slot i with only the slice's own bounds check (it panics like
// an index expression). Hot loops use it after validating their indices.
func (t *Table) At(i int) ScalarParameter { return t.slots[i] }

// Value returns the current value of slot i.
//
// Errors: ErrIndexOutOfRange.
func (t *Table) Value(i int) (float64, error) {
	p, err := t.Get(i)
	if err != nil {
		return 0, err
	}

	return p.Value(), nil
}

// Values writes every slot value into dst, growing it if needed, and
// returns it. Passing the previous result back avoids allocation.
func (t *Table) Values(dst []float64) []float64 {
	if cap(dst) < len(t.slots) {
		dst = make([]float64, len(t.slots))
	}
	dst = dst[:len(t.slots)]
	for i, p := range t.slots {
		dst[i] = p.Value()
	}

	return dst
}

// Params returns a copy of the slot list in table order.
func (t *Table) Params() []ScalarParameter {
	return append([]ScalarParameter(nil), t.slots...)
}

// SetConstant sets the constant flag of slot i.
//
// Errors: ErrIndexOutOfRange.
func (t *Table) SetConstant(i int, c bool) error {
	p, err := t.Get(i)
	if err != nil {
		return err
	}
	p.SetConstant(c)

	return nil
}

// SetAllConstant sets the constant flag of every slot.
func (t *Table) SetAllConstant(c bool) {
	for _, p := range t.slots {
		p.SetConstant(c)
	}
}

// LoadValues copies values from external cell storage into the slots, in
// order, skipping every index for which skip returns true (guard cells).
// A nil skip keeps every cell. Nothing is written unless the number of kept
// cells equals Size().
//
// Errors: ErrShapeMismatch.
func (t *Table) LoadValues(cells []float64, skip func(int) bool) error {
	kept := 0
	for r := range cells {
		if skip == nil || !skip(r) {
			kept++
		}
	}
	if kept != len(t.slots) {
		return fmt.Errorf("Table.LoadValues: %d data cells for %d slots: %w", kept, len(t.slots), ErrShapeMismatch)
	}
	i := 0
	for r, v := range cells {
		if skip != nil && skip(r) {
			continue
		}
		t.slots[i].SetValue(v)
		i++
	}

	return nil
}
