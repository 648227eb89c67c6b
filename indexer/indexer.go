// SPDX-License-Identifier: MIT

package indexer

import "fmt"

// MaxDims is the highest dimensionality supported.
const MaxDims = 3

// Counts caches per-dimension cell counts and their products.
// The zero value is not usable; build it with NewCounts.
type Counts struct {
	X, Y, Z int // per-dimension cell counts, 1 for unused dimensions
	XY      int // X*Y
	YZ      int // Y*Z
	Total   int // X*Y*Z
	Dims    int // populated dimensions (1..3)
}

// NewCounts builds Counts from 1..3 per-dimension cell counts.
//
// Errors: ErrUnsupportedDimensionality, ErrBadCount.
func NewCounts(cells ...int) (Counts, error) {
	if len(cells) == 0 || len(cells) > MaxDims {
		return Counts{}, fmt.Errorf("NewCounts: %d dimensions: %w", len(cells), ErrUnsupportedDimensionality)
	}
	n := [MaxDims]int{1, 1, 1}
	for d, c := range cells {
		if c < 1 {
			return Counts{}, fmt.Errorf("NewCounts: dimension %d has %d cells: %w", d, c, ErrBadCount)
		}
		n[d] = c
	}

	return Counts{
		X:     n[0],
		Y:     n[1],
		Z:     n[2],
		XY:    n[0] * n[1],
		YZ:    n[1] * n[2],
		Total: n[0] * n[1] * n[2],
		Dims:  len(cells),
	}, nil
}

// Valid reports whether c was produced by NewCounts.
func (c Counts) Valid() bool { return c.Total > 0 }

// Multipliers returns the table-convention stride of each dimension:
// {1, X, X*Y}. Summing cell*stride over dimensions yields a table index.
func (c Counts) Multipliers() [MaxDims]int { return [MaxDims]int{1, c.X, c.XY} }

// ToTable converts a grid-convention flat index into a table-convention one.
// Complexity: O(1).
//
// Errors: ErrIndexOutOfRange when grid or the result falls outside [0, Total).
func (c Counts) ToTable(grid int) (int, error) {
	if grid < 0 || grid >= c.Total {
		return 0, fmt.Errorf("Counts.ToTable(%d): total %d: %w", grid, c.Total, ErrIndexOutOfRange)
	}
	i := grid / c.YZ
	rem := grid % c.YZ
	j := rem / c.Z
	k := rem % c.Z

	idx := i + j*c.X + k*c.XY
	if idx >= c.Total {
		return 0, fmt.Errorf("Counts.ToTable(%d): result %d, total %d: %w", grid, idx, c.Total, ErrIndexOutOfRange)
	}

	return idx, nil
}

// ToGrid converts a table-convention flat index into a grid-convention one.
// It is the inverse of ToTable.
//
// Errors: ErrIndexOutOfRange.
func (c Counts) ToGrid(table int) (int, error) {
	if table < 0 || table >= c.Total {
		return 0, fmt.Errorf("Counts.ToGrid(%d): total %d: %w", table, c.Total, ErrIndexOutOfRange)
	}
	i := table % c.X
	j := (table / c.X) % c.Y
	k := table / c.XY

	return i*c.YZ + j*c.Z + k, nil
}

// Cell returns the per-dimension cell indices of a table-convention index.
//
// Errors: ErrIndexOutOfRange.
func (c Counts) Cell(table int) (i, j, k int, err error) {
	if table < 0 || table >= c.Total {
		return 0, 0, 0, fmt.Errorf("Counts.Cell(%d): total %d: %w", table, c.Total, ErrIndexOutOfRange)
	}

	return table % c.X, (table / c.X) % c.Y, table / c.XY, nil
}

// DimsToTable returns the table-convention index of cell (i, j, k). Pass
// only the indices of populated dimensions; missing ones are taken as 0.
//
// Errors: ErrUnsupportedDimensionality when more indices than Dims are
// given, ErrIndexOutOfRange for an index outside its dimension.
func (c Counts) DimsToTable(cell ...int) (int, error) {
	if len(cell) > c.Dims {
		return 0, fmt.Errorf("Counts.DimsToTable: %d indices for %d dimensions: %w", len(cell), c.Dims, ErrUnsupportedDimensionality)
	}
	n := [MaxDims]int{c.X, c.Y, c.Z}
	mult := c.Multipliers()
	idx := 0
	for d, v := range cell {
		if v < 0 || v >= n[d] {
			return 0, fmt.Errorf("Counts.DimsToTable: dimension %d index %d of %d: %w", d, v, n[d], ErrIndexOutOfRange)
		}
		idx += v * mult[d]
	}

	return idx, nil
}
