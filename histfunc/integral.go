// SPDX-License-Identifier: MIT

package histfunc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramhist/integral"
)

// AnalyticalIntegralCode returns the code of the analytic integral over
// intVars normalised over normVars, and the variables it integrates.
// The function can integrate any set analytically over its full domain, so
// analVars is intVars itself. It returns integral.NoAnalytic (and no vars)
// when intVars is empty or numeric integration is forced.
//
// The same (intVars, normVars), in any order, always yields the same code;
// cell volumes are computed only on the first request.
func (f *Func) AnalyticalIntegralCode(intVars, normVars []string) (code int, analVars []string) {
	if len(intVars) == 0 || f.forceNumInt {
		return integral.NoAnalytic, nil
	}
	code, created := f.ints.Request(intVars, normVars)
	if created {
		f.logger.Debug("cached integral configuration",
			zap.Int("code", code),
			zap.Strings("int_vars", intVars),
			zap.Strings("norm_vars", normVars))
	}

	return code, append([]string(nil), intVars...)
}

// AnalyticalIntegral returns Σ parameter[c]·volume[c] over all cells for an
// issued code. normVars is accepted for symmetry with the request; the
// weights do not depend on it.
//
// Errors: ErrUnknownCacheCode.
func (f *Func) AnalyticalIntegral(code int, normVars []string) (float64, error) {
	f.values = f.table.Values(f.values)
	v, err := f.ints.Evaluate(code, f.values)
	if err != nil {
		return 0, fmt.Errorf("Func.AnalyticalIntegral(%q, %d): %w", f.name, code, err)
	}

	return v, nil
}

// cellVolumes is the integral.Builder of f: cell volumes of the full domain
// in table order.
func (f *Func) cellVolumes(integral.Key) []float64 {
	grid := f.grid.CellVolumes()
	out := make([]float64, len(grid))
	for g, v := range grid {
		t, err := f.counts.ToTable(g)
		if err != nil {
			// grid and counts are built together and rebinning keeps counts
			panic(err)
		}
		out[t] = v
	}

	return out
}
