// SPDX-License-Identifier: MIT

package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramhist/binning"
	"github.com/katalvlaran/paramhist/indexer"
)

// Defaults for generated bin parameters.
const (
	// DefaultNominal is the initial value of every generated parameter.
	DefaultNominal = 1.0

	// DefaultMin is the lower bound of every generated parameter.
	DefaultMin = 0.0

	// FallbackMin and FallbackMax replace an empty or inverted range passed to
	// CreateFlatParamSet.
	FallbackMin = 0.0
	FallbackMax = 10.0
)

// FactoryOption configures the parameter factories.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	logger *zap.Logger
}

// WithFactoryLogger routes factory warnings to l. It panics on nil.
func WithFactoryLogger(l *zap.Logger) FactoryOption {
	if l == nil {
		panic("param: WithFactoryLogger: nil logger")
	}

	return func(o *factoryOptions) { o.logger = l }
}

func gatherFactoryOptions(opts []FactoryOption) factoryOptions {
	o := factoryOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// BinName returns "<prefix>_bin_<i>[_<j>[_<k>]]" for the given cell indices.
func BinName(prefix string, cell ...int) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("_bin")
	for _, c := range cell {
		sb.WriteByte('_')
		sb.WriteString(strconv.Itoa(c))
	}

	return sb.String()
}

// CreateParamSet creates one parameter per cell of a domain with the given
// per-dimension cell counts. Parameters are named with BinName, start at
// DefaultNominal with lower bound DefaultMin and no upper bound, and are
// returned in table order (first dimension fastest).
//
// An empty cells list logs a warning and returns no parameters.
//
// Errors: ErrUnsupportedDimensionality, indexer.ErrBadCount.
func CreateParamSet(prefix string, cells []int, opts ...FactoryOption) ([]*RealVar, error) {
	o := gatherFactoryOptions(opts)
	if len(cells) == 0 {
		o.logger.Warn("no variables provided, not creating bin parameters", zap.String("prefix", prefix))
		return nil, nil
	}
	counts, err := indexer.NewCounts(cells...)
	if err != nil {
		return nil, fmt.Errorf("CreateParamSet(%q): %w", prefix, err)
	}

	out := make([]*RealVar, 0, counts.Total)
	for t := 0; t < counts.Total; t++ {
		i, j, k, _ := counts.Cell(t)
		name := BinName(prefix, []int{i, j, k}[:counts.Dims]...)
		out = append(out, NewRealVar(name, DefaultNominal, DefaultMin, math.Inf(1)))
	}

	return out, nil
}

// CreateParamSetForGrid is CreateParamSet over the cell counts of g.
func CreateParamSetForGrid(prefix string, g *binning.Grid, opts ...FactoryOption) ([]*RealVar, error) {
	counts := g.CellCounts()

	return CreateParamSet(prefix, counts[:g.NumDims()], opts...)
}

// CreateParamSetRange is CreateParamSet with every parameter's range set to
// [lo, hi]. The nominal value is left untouched.
func CreateParamSetRange(prefix string, cells []int, lo, hi float64, opts ...FactoryOption) ([]*RealVar, error) {
	vars, err := CreateParamSet(prefix, cells, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range vars {
		v.SetRange(lo, hi)
	}

	return vars, nil
}

// CreateFlatParamSet creates n parameters "<prefix>_bin_<i>" with range
// [lo, hi]. When hi <= lo a warning is logged and [FallbackMin, FallbackMax]
// is used instead. The nominal DefaultNominal is clamped into the range.
func CreateFlatParamSet(prefix string, n int, lo, hi float64, opts ...FactoryOption) []*RealVar {
	o := gatherFactoryOptions(opts)
	if hi <= lo {
		o.logger.Warn("invalid parameter range, using fallback",
			zap.String("prefix", prefix),
			zap.Float64("min", lo), zap.Float64("max", hi),
			zap.Float64("fallback_min", FallbackMin), zap.Float64("fallback_max", FallbackMax))
		lo, hi = FallbackMin, FallbackMax
	}
	nominal := math.Min(math.Max(DefaultNominal, lo), hi)

	out := make([]*RealVar, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, NewRealVar(BinName(prefix, i), nominal, lo, hi))
	}

	return out
}

// Scalars converts a RealVar list to the slot type accepted by Table.
func Scalars(vars []*RealVar) []ScalarParameter {
	out := make([]ScalarParameter, len(vars))
	for i, v := range vars {
		out[i] = v
	}

	return out
}
