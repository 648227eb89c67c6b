// SPDX-License-Identifier: MIT

// Package binning - one-dimensional cell boundaries & coordinate lookup.
//
// Purpose:
//   - Hold the ordered boundary array of one axis and answer "which cell does x fall into".
//   - Provide a vectorised lookup (BinNumbers) that accumulates scaled cell indices
//     in place, so callers can build flat indices without a per-point tuple.
//
// Complexity quicksheet:
//   - NewBinning/NewUniform: O(n); Locate: O(1) uniform, O(log n) variable;
//     BinNumbers: O(len(xs)) uniform, O(len(xs)·log n) variable.

package binning

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Binning is an immutable ordered set of cell boundaries for one named axis.
// Cell i covers [bounds[i], bounds[i+1]).
type Binning struct {
	name     string
	bounds   []float64 // strictly increasing, len == n+1
	widths   []float64 // bounds[i+1]-bounds[i], len == n
	n        int       // cell count
	lo, hi   float64
	uniform  bool    // equal widths; enables the closed-form lookup
	invWidth float64 // n/(hi-lo) when uniform
}

// NewBinning builds a variable-width binning from the given boundaries.
// The slice is copied; later changes by the caller are not observed.
//
// Errors: ErrTooFewBoundaries, ErrNaNInf, ErrNotIncreasing.
func NewBinning(name string, bounds []float64) (*Binning, error) {
	if len(bounds) < 2 {
		return nil, fmt.Errorf("NewBinning(%q): %w", name, ErrTooFewBoundaries)
	}
	for i, v := range bounds {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewBinning(%q): boundary %d: %w", name, i, ErrNaNInf)
		}
		if i > 0 && v <= bounds[i-1] {
			return nil, fmt.Errorf("NewBinning(%q): boundary %d: %w", name, i, ErrNotIncreasing)
		}
	}

	return newBinning(name, append([]float64(nil), bounds...), false), nil
}

// NewUniform builds n equal-width cells spanning [lo, hi].
//
// Errors: ErrBadBinCount, ErrNaNInf, ErrBadRange.
func NewUniform(name string, n int, lo, hi float64) (*Binning, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewUniform(%q, %d): %w", name, n, ErrBadBinCount)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("NewUniform(%q): %w", name, ErrNaNInf)
	}
	if hi <= lo {
		return nil, fmt.Errorf("NewUniform(%q, %g, %g): %w", name, lo, hi, ErrBadRange)
	}
	bounds := floats.Span(make([]float64, n+1), lo, hi)

	return newBinning(name, bounds, true), nil
}

func newBinning(name string, bounds []float64, uniform bool) *Binning {
	n := len(bounds) - 1
	widths := make([]float64, n)
	floats.SubTo(widths, bounds[1:], bounds[:n])

	b := &Binning{
		name:    name,
		bounds:  bounds,
		widths:  widths,
		n:       n,
		lo:      bounds[0],
		hi:      bounds[n],
		uniform: uniform,
	}
	if uniform {
		b.invWidth = float64(n) / (b.hi - b.lo)
	}

	return b
}

// Name returns the axis name.
func (b *Binning) Name() string { return b.name }

// NumBins returns the number of cells (always >= 1).
func (b *Binning) NumBins() int { return b.n }

// Lo returns the lowest boundary.
func (b *Binning) Lo() float64 { return b.lo }

// Hi returns the highest boundary.
func (b *Binning) Hi() float64 { return b.hi }

// Uniform reports whether all cells have equal width by construction.
func (b *Binning) Uniform() bool { return b.uniform }

// Boundaries returns a copy of the n+1 boundaries.
func (b *Binning) Boundaries() []float64 { return append([]float64(nil), b.bounds...) }

// Widths returns a copy of the n cell widths.
func (b *Binning) Widths() []float64 { return append([]float64(nil), b.widths...) }

// Width returns the width of cell i. It panics if i is out of range,
// like a slice index would.
func (b *Binning) Width(i int) float64 { return b.widths[i] }

// Locate returns the index of the cell containing x.
// Values below Lo clamp to cell 0; values at or above Hi, and NaN, clamp
// to the last cell.
// Complexity: O(1) uniform, O(log n) otherwise.
func (b *Binning) Locate(x float64) int {
	if x < b.lo {
		return 0
	}
	if !(x < b.hi) {
		return b.n - 1
	}
	if b.uniform {
		return b.uniformCell(x)
	}

	return sort.Search(b.n, func(i int) bool { return x < b.bounds[i+1] })
}

// uniformCell locates x in [lo, hi) by the closed form, then corrects the
// guess against the stored boundaries so that x == bounds[i] lands in cell i
// despite rounding in (x-lo)/width.
func (b *Binning) uniformCell(x float64) int {
	last := b.n - 1
	i := int((x - b.lo) * b.invWidth)
	if i > last {
		i = last
	}
	for i > 0 && x < b.bounds[i] {
		i--
	}
	for i < last && x >= b.bounds[i+1] {
		i++
	}

	return i
}

// BinNumbers adds coef*Locate(xs[p]) to acc[p] for every p.
// acc must be at least as long as xs; the caller owns zeroing it.
// Complexity: O(len(xs)) uniform, O(len(xs)·log n) otherwise. No allocation.
func (b *Binning) BinNumbers(xs []float64, acc []int, coef int) {
	acc = acc[:len(xs)]
	if b.uniform {
		last := b.n - 1
		for p, x := range xs {
			var i int
			switch {
			case x < b.lo:
				i = 0
			case !(x < b.hi):
				i = last
			default:
				i = b.uniformCell(x)
			}
			acc[p] += coef * i
		}

		return
	}
	for p, x := range xs {
		acc[p] += coef * b.Locate(x)
	}
}

// SamplingHint returns pairs of points just left and right of every boundary
// inside [lo, hi] widened by 1% on each side. Curve samplers use them to
// resolve the vertical steps of a piecewise-constant function.
func (b *Binning) SamplingHint(lo, hi float64) []float64 {
	lo -= 0.01 * (hi - lo)
	hi += 0.01 * (hi - lo)
	delta := (hi - lo) * 1e-8

	var hint []float64
	for _, v := range b.bounds {
		if v >= lo && v <= hi {
			hint = append(hint, v-delta, v+delta)
		}
	}

	return hint
}

// BoundariesWithin returns the boundaries that lie in [lo, hi].
func (b *Binning) BoundariesWithin(lo, hi float64) []float64 {
	var out []float64
	for _, v := range b.bounds {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}

	return out
}
