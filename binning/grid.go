// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"

	"go.uber.org/multierr"
)

// MaxDims is the highest dimensionality a Grid supports.
const MaxDims = 3

// Grid is a rectilinear discretisation of up to three named axes.
//
// Flat indices produced by Grid follow the binned-dataset convention: the
// LAST populated dimension varies fastest,
//
//	grid = i*(ny*nz) + j*nz + k
//
// Unused trailing dimensions count as a single cell.
type Grid struct {
	dims   []*Binning
	counts [MaxDims]int
}

// NewGrid builds a grid over 1..3 binnings. All problems with the inputs are
// reported together.
//
// Errors: ErrUnsupportedDimensionality, ErrNilBinning, ErrDuplicateName.
func NewGrid(dims ...*Binning) (*Grid, error) {
	if len(dims) == 0 || len(dims) > MaxDims {
		return nil, fmt.Errorf("NewGrid: %d dimensions: %w", len(dims), ErrUnsupportedDimensionality)
	}

	var err error
	seen := make(map[string]struct{}, len(dims))
	for d, b := range dims {
		if b == nil {
			err = multierr.Append(err, fmt.Errorf("NewGrid: dimension %d: %w", d, ErrNilBinning))
			continue
		}
		if _, dup := seen[b.name]; dup || b.name == "" {
			err = multierr.Append(err, fmt.Errorf("NewGrid: dimension %d %q: %w", d, b.name, ErrDuplicateName))
		}
		seen[b.name] = struct{}{}
	}
	if err != nil {
		return nil, err
	}

	g := &Grid{dims: append([]*Binning(nil), dims...)}
	g.recount()

	return g, nil
}

func (g *Grid) recount() {
	g.counts = [MaxDims]int{1, 1, 1}
	for d, b := range g.dims {
		g.counts[d] = b.n
	}
}

// NumDims returns the number of populated dimensions (1..3).
func (g *Grid) NumDims() int { return len(g.dims) }

// Dim returns the binning of dimension d.
func (g *Grid) Dim(d int) *Binning { return g.dims[d] }

// Dims returns the binnings in dimension order. The slice is a copy.
func (g *Grid) Dims() []*Binning { return append([]*Binning(nil), g.dims...) }

// Names returns the dimension names in order.
func (g *Grid) Names() []string {
	names := make([]string, len(g.dims))
	for d, b := range g.dims {
		names[d] = b.name
	}

	return names
}

// Lookup returns the position of the dimension called name.
func (g *Grid) Lookup(name string) (int, bool) {
	for d, b := range g.dims {
		if b.name == name {
			return d, true
		}
	}

	return -1, false
}

// CellCounts returns the per-dimension cell counts, with 1 for unused
// trailing dimensions.
func (g *Grid) CellCounts() [MaxDims]int { return g.counts }

// NumCells returns the total number of cells.
func (g *Grid) NumCells() int { return g.counts[0] * g.counts[1] * g.counts[2] }

// Index returns the grid-convention flat index of the cell holding coord.
// Out-of-range components clamp as described on Binning.Locate.
//
// Errors: ErrCoordinateLength.
func (g *Grid) Index(coord []float64) (int, error) {
	if len(coord) != len(g.dims) {
		return 0, fmt.Errorf("Grid.Index: got %d values for %d dimensions: %w",
			len(coord), len(g.dims), ErrCoordinateLength)
	}
	idx := 0
	for d, b := range g.dims {
		idx = idx*b.n + b.Locate(coord[d])
	}

	return idx, nil
}

// WithDim returns a copy of the grid whose dimension d uses b instead.
// The name and cell count of b must match the replaced dimension.
//
// Errors: ErrCellOutOfRange for a bad d, ErrNilBinning, ErrDuplicateName when
// names differ, ErrBadBinCount when cell counts differ.
func (g *Grid) WithDim(d int, b *Binning) (*Grid, error) {
	if d < 0 || d >= len(g.dims) {
		return nil, fmt.Errorf("Grid.WithDim(%d): %w", d, ErrCellOutOfRange)
	}
	if b == nil {
		return nil, fmt.Errorf("Grid.WithDim(%d): %w", d, ErrNilBinning)
	}
	if b.name != g.dims[d].name {
		return nil, fmt.Errorf("Grid.WithDim(%d): %q replaces %q: %w", d, b.name, g.dims[d].name, ErrDuplicateName)
	}
	if b.n != g.dims[d].n {
		return nil, fmt.Errorf("Grid.WithDim(%d): %d cells replace %d: %w", d, b.n, g.dims[d].n, ErrBadBinCount)
	}
	out := &Grid{dims: append([]*Binning(nil), g.dims...)}
	out.dims[d] = b
	out.recount()

	return out, nil
}

// CellVolume returns the volume of cell (i, j, k). Indices of unused
// dimensions must be 0.
func (g *Grid) CellVolume(cell ...int) (float64, error) {
	if len(cell) != len(g.dims) {
		return 0, fmt.Errorf("Grid.CellVolume: %d indices for %d dimensions: %w", len(cell), len(g.dims), ErrCellOutOfRange)
	}
	v := 1.0
	for d, b := range g.dims {
		if cell[d] < 0 || cell[d] >= b.n {
			return 0, fmt.Errorf("Grid.CellVolume: dimension %d index %d: %w", d, cell[d], ErrCellOutOfRange)
		}
		v *= b.widths[cell[d]]
	}

	return v, nil
}

// CellVolumes returns the volume of every cell in grid order.
// Complexity: O(NumCells).
func (g *Grid) CellVolumes() []float64 {
	wx, wy, wz := g.axisWidths(0), g.axisWidths(1), g.axisWidths(2)
	out := make([]float64, 0, g.NumCells())
	for _, x := range wx {
		for _, y := range wy {
			for _, z := range wz {
				out = append(out, x*y*z)
			}
		}
	}

	return out
}

// axisWidths returns the widths of dimension d, or {1} for an unused one.
func (g *Grid) axisWidths(d int) []float64 {
	if d < len(g.dims) {
		return g.dims[d].widths
	}

	return []float64{1}
}
