// SPDX-License-Identifier: MIT

package histfunc

// PlotSamplingHint returns points just left and right of each boundary of
// dimension dim inside [lo, hi] (range widened by 1%), so that curve
// samplers resolve the steps of the function. ok is false when dim is not a
// dimension of f.
func (f *Func) PlotSamplingHint(dim string, lo, hi float64) (hint []float64, ok bool) {
	d, ok := f.grid.Lookup(dim)
	if !ok {
		return nil, false
	}

	return f.grid.Dim(d).SamplingHint(lo, hi), true
}

// BinBoundaries returns the boundaries of dimension dim that lie in
// [lo, hi]. ok is false when dim is not a dimension of f.
func (f *Func) BinBoundaries(dim string, lo, hi float64) (bounds []float64, ok bool) {
	d, ok := f.grid.Lookup(dim)
	if !ok {
		return nil, false
	}

	return f.grid.Dim(d).BoundariesWithin(lo, hi), true
}
