// SPDX-License-Identifier: MIT

package histfunc_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/paramhist/histfunc"
)

const benchPoints = 1 << 14

func benchFunc(b *testing.B, cells ...int) (*histfunc.Func, [][]float64) {
	rng := rand.New(rand.NewSource(7))
	f, _ := buildFunc(b, rng, cells, histfunc.WithScratchCapacity(benchPoints))

	return f, randomPoints(rng, f, benchPoints)
}

// BenchmarkEvaluateBatch3D measures throughput of the batch path on a
// variable-width 3D grid.
func BenchmarkEvaluateBatch3D(b *testing.B) {
	f, cols := benchFunc(b, 10, 20, 30)
	out := make([]float64, benchPoints)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.EvaluateBatch(cols, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluateScalar3D is the point-by-point baseline for the batch path.
func BenchmarkEvaluateScalar3D(b *testing.B) {
	f, cols := benchFunc(b, 10, 20, 30)
	coord := make([]float64, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := i % benchPoints
		coord[0], coord[1], coord[2] = cols[0][p], cols[1][p], cols[2][p]
		if _, err := f.Evaluate(coord...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyticalIntegral measures a cached integral over 6000 cells.
func BenchmarkAnalyticalIntegral(b *testing.B) {
	f, _ := benchFunc(b, 10, 20, 30)
	code, _ := f.AnalyticalIntegralCode(f.Dims(), nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.AnalyticalIntegral(code, nil); err != nil {
			b.Fatal(err)
		}
	}
}
