// SPDX-License-Identifier: MIT

package binning_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramhist/binning"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestNewBinning_Validation(t *testing.T) {
	_, err := binning.NewBinning("x", []float64{1})
	require.ErrorIs(t, err, binning.ErrTooFewBoundaries)

	_, err = binning.NewBinning("x", []float64{0, 1, 1})
	require.ErrorIs(t, err, binning.ErrNotIncreasing)

	_, err = binning.NewBinning("x", []float64{0, math.NaN()})
	require.ErrorIs(t, err, binning.ErrNaNInf)

	_, err = binning.NewBinning("x", []float64{math.Inf(-1), 0})
	require.ErrorIs(t, err, binning.ErrNaNInf)
}

func TestNewUniform_Validation(t *testing.T) {
	_, err := binning.NewUniform("x", 0, 0, 1)
	require.ErrorIs(t, err, binning.ErrBadBinCount)

	_, err = binning.NewUniform("x", 3, 1, 1)
	require.ErrorIs(t, err, binning.ErrBadRange)

	_, err = binning.NewUniform("x", 3, 0, math.Inf(1))
	require.ErrorIs(t, err, binning.ErrNaNInf)
}

func TestNewUniform_Boundaries(t *testing.T) {
	b, err := binning.NewUniform("x", 4, 0, 2)
	require.NoError(t, err)
	require.True(t, b.Uniform())
	require.Equal(t, 4, b.NumBins())
	if d := cmp.Diff([]float64{0, 0.5, 1, 1.5, 2}, b.Boundaries(), approx); d != "" {
		t.Errorf("boundaries mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0.5, 0.5, 0.5, 0.5}, b.Widths(), approx); d != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", d)
	}
}

func TestBinning_BoundariesAreCopied(t *testing.T) {
	in := []float64{0, 1, 3}
	b, err := binning.NewBinning("x", in)
	require.NoError(t, err)
	in[1] = 2
	out := b.Boundaries()
	out[0] = -5
	require.Equal(t, []float64{0, 1, 3}, b.Boundaries())
}

func TestLocate(t *testing.T) {
	uni, err := binning.NewUniform("u", 4, 0, 4)
	require.NoError(t, err)
	vari, err := binning.NewBinning("v", []float64{0, 1, 2, 3, 4})
	require.NoError(t, err)

	cases := []struct {
		x    float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{2.5, 2},
		{3.999, 3},
		{4, 3},
		{100, 3},
		{math.NaN(), 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, uni.Locate(tc.x), "uniform Locate(%g)", tc.x)
		require.Equal(t, tc.want, vari.Locate(tc.x), "variable Locate(%g)", tc.x)
	}
}

func TestBinNumbers_MatchesLocate(t *testing.T) {
	xs := []float64{-1, 0.1, 1.7, 2.2, 9, 0.99, math.NaN()}
	for _, build := range []func() (*binning.Binning, error){
		func() (*binning.Binning, error) { return binning.NewUniform("u", 5, 0, 2.5) },
		func() (*binning.Binning, error) { return binning.NewBinning("v", []float64{0, 0.3, 1, 2, 2.5}) },
	} {
		b, err := build()
		require.NoError(t, err)

		acc := make([]int, len(xs))
		for p := range acc {
			acc[p] = 7
		}
		b.BinNumbers(xs, acc, 3)
		for p, x := range xs {
			require.Equal(t, 7+3*b.Locate(x), acc[p], "%s x=%g", b.Name(), x)
		}
	}
}

// TestUniformLocate_BoundaryBelongsToUpperCell checks that every interior
// boundary of a uniform binning opens its own cell, on the scalar and the
// batch path, for widths that are not exact in binary.
func TestUniformLocate_BoundaryBelongsToUpperCell(t *testing.T) {
	ranges := [][2]float64{{0, 1}, {0.1, 0.7}, {-3.3, 7.9}, {1e-3, 2.2e-3}}
	for _, n := range []int{3, 7, 10, 13, 49, 100} {
		for _, r := range ranges {
			b, err := binning.NewUniform("u", n, r[0], r[1])
			require.NoError(t, err)
			bounds := b.Boundaries()

			edges := bounds[:n]
			acc := make([]int, n)
			b.BinNumbers(edges, acc, 1)
			for i, x := range edges {
				require.Equal(t, i, b.Locate(x), "n=%d range=%v boundary[%d]=%v", n, r, i, x)
				require.Equal(t, i, acc[i], "batch n=%d range=%v boundary[%d]=%v", n, r, i, x)
			}

			// just below a boundary stays in the lower cell
			for i := 1; i < n; i++ {
				below := math.Nextafter(bounds[i], math.Inf(-1))
				require.Equal(t, i-1, b.Locate(below), "n=%d range=%v below boundary[%d]", n, r, i)
			}

			vari, err := binning.NewBinning("v", bounds)
			require.NoError(t, err)
			for _, x := range edges {
				require.Equal(t, vari.Locate(x), b.Locate(x))
			}
		}
	}
}

func TestSamplingHint(t *testing.T) {
	b, err := binning.NewBinning("x", []float64{0, 1, 2, 10})
	require.NoError(t, err)

	hint := b.SamplingHint(0, 2)
	// widened range is [-0.02, 2.0202]: boundaries 0, 1, 2 qualify
	require.Len(t, hint, 6)
	for i := 0; i < len(hint); i += 2 {
		require.Less(t, hint[i], hint[i+1])
	}
	require.InDelta(t, 1.0, (hint[2]+hint[3])/2, 1e-12)

	require.Equal(t, []float64{1, 2}, b.BoundariesWithin(0.5, 2))
	require.Empty(t, b.BoundariesWithin(3, 4))
}

func TestNewGrid_Errors(t *testing.T) {
	x, _ := binning.NewUniform("x", 2, 0, 1)
	y, _ := binning.NewUniform("y", 2, 0, 1)

	_, err := binning.NewGrid()
	require.ErrorIs(t, err, binning.ErrUnsupportedDimensionality)

	_, err = binning.NewGrid(x, y, x, y)
	require.ErrorIs(t, err, binning.ErrUnsupportedDimensionality)

	// both problems are reported
	_, err = binning.NewGrid(x, nil, x)
	require.True(t, errors.Is(err, binning.ErrNilBinning))
	require.True(t, errors.Is(err, binning.ErrDuplicateName))
}

func TestGrid_IndexLastDimensionFastest(t *testing.T) {
	x, _ := binning.NewUniform("x", 3, 0, 3)
	y, _ := binning.NewUniform("y", 2, 0, 2)
	g, err := binning.NewGrid(x, y)
	require.NoError(t, err)

	require.Equal(t, [binning.MaxDims]int{3, 2, 1}, g.CellCounts())
	require.Equal(t, 6, g.NumCells())
	require.Equal(t, []string{"x", "y"}, g.Names())

	idx, err := g.Index([]float64{2.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 4, idx) // i=2, j=0 -> 2*ny + 0

	idx, err = g.Index([]float64{0.5, 1.5})
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = g.Index([]float64{0.5})
	require.ErrorIs(t, err, binning.ErrCoordinateLength)

	d, ok := g.Lookup("y")
	require.True(t, ok)
	require.Equal(t, 1, d)
	_, ok = g.Lookup("z")
	require.False(t, ok)
}

func TestGrid_CellVolumes(t *testing.T) {
	x, _ := binning.NewBinning("x", []float64{0, 1, 3})
	y, _ := binning.NewBinning("y", []float64{0, 0.5, 2, 5})
	g, err := binning.NewGrid(x, y)
	require.NoError(t, err)

	// grid order: (i,j) -> i*3+j
	want := []float64{0.5, 1.5, 3, 1, 3, 6}
	if d := cmp.Diff(want, g.CellVolumes(), approx); d != "" {
		t.Errorf("volumes mismatch (-want +got):\n%s", d)
	}

	v, err := g.CellVolume(1, 2)
	require.NoError(t, err)
	require.InDelta(t, 6.0, v, 1e-12)

	_, err = g.CellVolume(2, 0)
	require.ErrorIs(t, err, binning.ErrCellOutOfRange)
	_, err = g.CellVolume(0)
	require.ErrorIs(t, err, binning.ErrCellOutOfRange)
}

func TestGrid_WithDim(t *testing.T) {
	x, _ := binning.NewUniform("x", 2, 0, 2)
	g, err := binning.NewGrid(x)
	require.NoError(t, err)

	wide, _ := binning.NewBinning("x", []float64{0, 1, 5})
	g2, err := g.WithDim(0, wide)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, g.CellVolumes())
	require.Equal(t, []float64{1, 4}, g2.CellVolumes())

	three, _ := binning.NewUniform("x", 3, 0, 2)
	_, err = g.WithDim(0, three)
	require.ErrorIs(t, err, binning.ErrBadBinCount)

	other, _ := binning.NewUniform("y", 2, 0, 2)
	_, err = g.WithDim(0, other)
	require.ErrorIs(t, err, binning.ErrDuplicateName)

	_, err = g.WithDim(1, wide)
	require.ErrorIs(t, err, binning.ErrCellOutOfRange)
}
