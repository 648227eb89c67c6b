// SPDX-License-Identifier: MIT

package histfunc

import "fmt"

// EvaluateBatch writes into out[p] the function value at the p-th point,
// where point p has coordinate columns[d][p] in dimension d. Output order is
// input order.
//
// Cell indices are accumulated per dimension directly in table convention
// (stride 1, nx, nx·ny), so no grid index or coordinate tuple is built per
// point. The scratch buffer is owned by f and only grows; in steady state
// the call does not allocate.
//
// All validation happens before out is touched: either the whole batch is
// written or nothing is.
//
// Errors: ErrLengthMismatch, ErrIndexOutOfRange.
func (f *Func) EvaluateBatch(columns [][]float64, out []float64) error {
	if len(columns) != f.counts.Dims {
		return fmt.Errorf("Func.EvaluateBatch(%q): %d columns for %d dimensions: %w",
			f.name, len(columns), f.counts.Dims, ErrLengthMismatch)
	}
	size := len(columns[0])
	for d, col := range columns[1:] {
		if len(col) != size {
			return fmt.Errorf("Func.EvaluateBatch(%q): column %d has %d values, column 0 has %d: %w",
				f.name, d+1, len(col), size, ErrLengthMismatch)
		}
	}
	if len(out) < size {
		return fmt.Errorf("Func.EvaluateBatch(%q): output holds %d of %d values: %w",
			f.name, len(out), size, ErrLengthMismatch)
	}

	if cap(f.scratch) < size {
		f.scratch = make([]int, size)
	}
	idx := f.scratch[:size]
	clear(idx)

	mult := f.counts.Multipliers()
	for d, col := range columns {
		f.grid.Dim(d).BinNumbers(col, idx, mult[d])
	}

	total := f.table.Size()
	for p, t := range idx {
		if t < 0 || t >= total {
			return fmt.Errorf("Func.EvaluateBatch(%q): point %d maps to slot %d of %d: %w",
				f.name, p, t, total, ErrIndexOutOfRange)
		}
	}
	for p, t := range idx {
		out[p] = f.table.At(t).Value()
	}

	return nil
}
