// SPDX-License-Identifier: MIT

package param

import "math"

// ScalarParameter is the capability a table slot needs: a named, mutable
// scalar that can be frozen by a fit.
type ScalarParameter interface {
	Name() string
	Value() float64
	SetValue(v float64)
	IsConstant() bool
	SetConstant(c bool)
}

// Bounded is implemented by parameters that carry an informational range.
// Enforcing the range is the parameter's own concern.
type Bounded interface {
	Min() float64
	Max() float64
	SetRange(lo, hi float64)
}

// RealVar is the default ScalarParameter: a value with an optional range and
// a constant flag.
type RealVar struct {
	name     string
	value    float64
	min, max float64
	constant bool
}

// Compile-time conformance.
var (
	_ ScalarParameter = (*RealVar)(nil)
	_ Bounded         = (*RealVar)(nil)
)

// NewRealVar returns a free (non-constant) parameter.
func NewRealVar(name string, value, lo, hi float64) *RealVar {
	return &RealVar{name: name, value: value, min: lo, max: hi}
}

// NewFreeVar returns an unbounded parameter.
func NewFreeVar(name string, value float64) *RealVar {
	return NewRealVar(name, value, math.Inf(-1), math.Inf(1))
}

// Name returns the parameter name.
func (v *RealVar) Name() string { return v.name }

// Value returns the current value.
func (v *RealVar) Value() float64 { return v.value }

// SetValue sets the current value. The range is not enforced.
func (v *RealVar) SetValue(x float64) { v.value = x }

// IsConstant reports whether the parameter is fixed in fits.
func (v *RealVar) IsConstant() bool { return v.constant }

// SetConstant fixes or frees the parameter.
func (v *RealVar) SetConstant(c bool) { v.constant = c }

// Min returns the lower bound.
func (v *RealVar) Min() float64 { return v.min }

// Max returns the upper bound.
func (v *RealVar) Max() float64 { return v.max }

// SetRange sets both bounds.
func (v *RealVar) SetRange(lo, hi float64) { v.min, v.max = lo, hi }
