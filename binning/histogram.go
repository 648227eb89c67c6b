// SPDX-License-Identifier: MIT

package binning

import "fmt"

// Histogram is a dense per-cell content store over a Grid, laid out the way
// histogram files store it: every populated dimension carries one underflow
// and one overflow guard cell, and the FIRST dimension varies fastest.
//
//	raw = bx + (nx+2)*(by + (ny+2)*bz),  bx in [0, nx+1], bx==0 underflow, bx==nx+1 overflow
//
// Unused dimensions have extent 1 and no guard cells.
type Histogram struct {
	grid     *Grid
	extent   [MaxDims]int // per-dimension raw extent (n+2 or 1)
	contents []float64
}

// NewHistogram allocates a zeroed histogram over g.
func NewHistogram(g *Grid) *Histogram {
	h := &Histogram{grid: g, extent: [MaxDims]int{1, 1, 1}}
	total := 1
	for d, b := range g.dims {
		h.extent[d] = b.n + 2
		total *= b.n + 2
	}
	h.contents = make([]float64, total)

	return h
}

// Grid returns the grid the histogram is defined over.
func (h *Histogram) Grid() *Grid { return h.grid }

// NumDataCells returns the number of non-guard cells.
func (h *Histogram) NumDataCells() int { return h.grid.NumCells() }

// Contents returns the raw storage, guard cells included. The slice is
// shared with the histogram.
func (h *Histogram) Contents() []float64 { return h.contents }

// IsGuard reports whether raw index r addresses an underflow or overflow cell.
func (h *Histogram) IsGuard(r int) bool {
	for d := range h.grid.dims {
		b := r % h.extent[d]
		if b == 0 || b == h.extent[d]-1 {
			return true
		}
		r /= h.extent[d]
	}

	return false
}

// rawIndex converts per-dimension raw bin numbers (guards included) to the
// flat storage index.
func (h *Histogram) rawIndex(bins [MaxDims]int) int {
	return bins[0] + h.extent[0]*(bins[1]+h.extent[1]*bins[2])
}

// dataIndex validates 0-based data cell indices and returns the raw index.
func (h *Histogram) dataIndex(cell []int) (int, error) {
	if len(cell) != len(h.grid.dims) {
		return 0, fmt.Errorf("Histogram: %d indices for %d dimensions: %w", len(cell), len(h.grid.dims), ErrCellOutOfRange)
	}
	var bins [MaxDims]int
	for d, b := range h.grid.dims {
		if cell[d] < 0 || cell[d] >= b.n {
			return 0, fmt.Errorf("Histogram: dimension %d index %d: %w", d, cell[d], ErrCellOutOfRange)
		}
		bins[d] = cell[d] + 1
	}

	return h.rawIndex(bins), nil
}

// SetCellContent stores v in the data cell with the given 0-based indices.
//
// Errors: ErrCellOutOfRange.
func (h *Histogram) SetCellContent(v float64, cell ...int) error {
	r, err := h.dataIndex(cell)
	if err != nil {
		return err
	}
	h.contents[r] = v

	return nil
}

// CellContent returns the content of the data cell with the given 0-based indices.
//
// Errors: ErrCellOutOfRange.
func (h *Histogram) CellContent(cell ...int) (float64, error) {
	r, err := h.dataIndex(cell)
	if err != nil {
		return 0, err
	}

	return h.contents[r], nil
}

// Fill adds w to the cell holding coord. Coordinates outside an axis range
// land in that axis' guard cells.
//
// Errors: ErrCoordinateLength.
func (h *Histogram) Fill(coord []float64, w float64) error {
	if len(coord) != len(h.grid.dims) {
		return fmt.Errorf("Histogram.Fill: got %d values for %d dimensions: %w",
			len(coord), len(h.grid.dims), ErrCoordinateLength)
	}
	var bins [MaxDims]int
	for d, b := range h.grid.dims {
		x := coord[d]
		switch {
		case x < b.lo:
			bins[d] = 0
		case !(x < b.hi):
			bins[d] = b.n + 1
		default:
			bins[d] = b.Locate(x) + 1
		}
	}
	h.contents[h.rawIndex(bins)] += w

	return nil
}
