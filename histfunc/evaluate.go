// SPDX-License-Identifier: MIT

package histfunc

import (
	"fmt"

	"github.com/katalvlaran/paramhist/param"
)

// CurrentBin returns the grid-convention index of the cell holding coord.
//
// Errors: ErrCoordinateLength.
func (f *Func) CurrentBin(coord ...float64) (int, error) {
	g, err := f.grid.Index(coord)
	if err != nil {
		return 0, fmt.Errorf("Func.CurrentBin(%q): %w", f.name, err)
	}

	return g, nil
}

// Parameter returns the parameter of the cell with grid-convention index g.
//
// Errors: ErrIndexOutOfRange.
func (f *Func) Parameter(g int) (param.ScalarParameter, error) {
	t, err := f.counts.ToTable(g)
	if err != nil {
		return nil, fmt.Errorf("Func.Parameter(%q): %w", f.name, err)
	}
	p, err := f.table.Get(t)
	if err != nil {
		return nil, fmt.Errorf("Func.Parameter(%q): %w", f.name, err)
	}

	return p, nil
}

// ParameterAt returns the parameter of the cell holding coord.
func (f *Func) ParameterAt(coord ...float64) (param.ScalarParameter, error) {
	g, err := f.CurrentBin(coord...)
	if err != nil {
		return nil, err
	}

	return f.Parameter(g)
}

// Evaluate returns the current value of the parameter of the cell holding
// coord. It is a pure function of coord and the parameter values.
// Complexity: O(dims) uniform binnings, O(dims·log n) variable.
//
// Errors: ErrCoordinateLength, ErrIndexOutOfRange.
func (f *Func) Evaluate(coord ...float64) (float64, error) {
	p, err := f.ParameterAt(coord...)
	if err != nil {
		return 0, err
	}

	return p.Value(), nil
}

// SetParamConst sets the constant flag of the parameter of the cell with
// grid-convention index g.
//
// Errors: ErrIndexOutOfRange.
func (f *Func) SetParamConst(g int, c bool) error {
	p, err := f.Parameter(g)
	if err != nil {
		return err
	}
	p.SetConstant(c)

	return nil
}

// SetConstant sets the constant flag of every parameter.
func (f *Func) SetConstant(c bool) {
	f.table.SetAllConstant(c)
}
