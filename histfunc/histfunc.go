// SPDX-License-Identifier: MIT

// Package histfunc - piecewise-constant function over a binned domain.
//
// Purpose:
//   - Map a coordinate to its cell and return the value of that cell's parameter.
//   - Evaluate many coordinates at once through an owned, reusable scratch buffer.
//   - Integrate analytically as Σ parameter·cell-volume with memoised weights.
//
// Concurrency:
//   - A Func is NOT safe for concurrent use: the scratch buffer, value buffer and
//     integral cache are mutated in place. Distinct Funcs are independent.

package histfunc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramhist/binning"
	"github.com/katalvlaran/paramhist/indexer"
	"github.com/katalvlaran/paramhist/integral"
	"github.com/katalvlaran/paramhist/param"
)

// Func returns, for a point of a 1..3 dimensional grid, the value of the
// parameter bound to the cell containing it.
type Func struct {
	name   string
	grid   *binning.Grid
	counts indexer.Counts
	table  *param.Table
	ints   *integral.Manager

	scratch []int     // batch cell indices, grown on demand
	values  []float64 // parameter values for integrals, reused

	forceNumInt bool
	logger      *zap.Logger
}

// New binds params (in table order, first dimension fastest) to the cells of
// grid. Cell counts are computed once here and never recomputed lazily.
//
// Errors: ErrNilGrid, ErrSizeMismatch, param.ErrNilParameter.
func New(name string, grid *binning.Grid, params []param.ScalarParameter, opts ...Option) (*Func, error) {
	if grid == nil {
		return nil, fmt.Errorf("histfunc.New(%q): %w", name, ErrNilGrid)
	}
	o := gatherOptions(opts)

	cells := grid.CellCounts()
	counts, err := indexer.NewCounts(cells[:grid.NumDims()]...)
	if err != nil {
		return nil, fmt.Errorf("histfunc.New(%q): %w", name, err)
	}
	table, err := param.Bind(counts, params)
	if err != nil {
		return nil, fmt.Errorf("histfunc.New(%q): %w", name, err)
	}

	f := &Func{
		name:        name,
		grid:        grid,
		counts:      counts,
		table:       table,
		scratch:     make([]int, 0, o.scratchCapacity),
		forceNumInt: o.forceNumInt,
		logger:      o.logger.With(zap.String("func", name)),
	}
	f.ints = integral.NewManager(f.cellVolumes)
	f.logger.Debug("created binned function",
		zap.Strings("dims", grid.Names()),
		zap.Int("cells", counts.Total))

	return f, nil
}

// NewWithShape is New followed by SetShape(shape).
func NewWithShape(name string, grid *binning.Grid, params []param.ScalarParameter, shape *binning.Histogram, opts ...Option) (*Func, error) {
	f, err := New(name, grid, params, opts...)
	if err != nil {
		return nil, err
	}
	if err := f.SetShape(shape); err != nil {
		return nil, fmt.Errorf("histfunc.NewWithShape(%q): %w", name, err)
	}

	return f, nil
}

// Name returns the function name.
func (f *Func) Name() string { return f.name }

// Grid returns the grid the function is defined over.
func (f *Func) Grid() *binning.Grid { return f.grid }

// Table returns the parameter table.
func (f *Func) Table() *param.Table { return f.table }

// Counts returns the cached per-dimension cell counts.
func (f *Func) Counts() indexer.Counts { return f.counts }

// NumBins returns the total number of cells.
func (f *Func) NumBins() int { return f.counts.Total }

// Dims returns the dimension names in order.
func (f *Func) Dims() []string { return f.grid.Names() }

// SetShape loads parameter values from a histogram, skipping its guard cells.
// Data cells are taken first dimension fastest, which is table order.
//
// Errors: ErrShapeMismatch, also for a nil shape.
func (f *Func) SetShape(shape *binning.Histogram) error {
	if shape == nil {
		return fmt.Errorf("Func.SetShape(%q): nil histogram: %w", f.name, ErrShapeMismatch)
	}
	if err := f.table.LoadValues(shape.Contents(), shape.IsGuard); err != nil {
		return fmt.Errorf("Func.SetShape(%q): %w", f.name, err)
	}

	return nil
}

// SetBinning replaces the binning of dimension d with b, which must have the
// same name and cell count. Cached integral weights are invalidated; issued
// integral codes remain valid.
//
// Errors: ErrSizeMismatch when the cell count differs, binning errors otherwise.
func (f *Func) SetBinning(d int, b *binning.Binning) error {
	if b != nil && d >= 0 && d < f.grid.NumDims() && b.NumBins() != f.grid.Dim(d).NumBins() {
		return fmt.Errorf("Func.SetBinning(%d): %d cells replace %d: %w", d, b.NumBins(), f.grid.Dim(d).NumBins(), ErrSizeMismatch)
	}
	g, err := f.grid.WithDim(d, b)
	if err != nil {
		return fmt.Errorf("Func.SetBinning(%d): %w", d, err)
	}
	f.grid = g
	f.ints.Invalidate()
	f.logger.Debug("rebinned dimension, integral weights invalidated",
		zap.String("dim", b.Name()),
		zap.Int("codes", f.ints.Len()))

	return nil
}

// Clone returns an independent Func with the given name. Parameter slots are
// shared with f (a fit moving one moves both), while the scratch buffer,
// counts and integral cache are private copies.
func (f *Func) Clone(name string) *Func {
	table, err := param.Bind(f.counts, f.table.Params())
	if err != nil {
		// f.table was bound with the same counts
		panic(err)
	}
	c := &Func{
		name:        name,
		grid:        f.grid,
		counts:      f.counts,
		table:       table,
		scratch:     make([]int, 0, cap(f.scratch)),
		forceNumInt: f.forceNumInt,
		logger:      f.logger.With(zap.String("clone_of", f.name)),
	}
	c.ints = f.ints.Clone(c.cellVolumes)

	return c
}
