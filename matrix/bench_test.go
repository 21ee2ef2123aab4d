// Package matrix_test provides benchmarks for the orthogonalization kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gsokit/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkErr error
	sinkB   bool
)

// randDense fills an n×n matrix with uniform values in [-1, 1).
func randDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, 2*rng.Float64()-1)
		}
	}

	return m
}

func BenchmarkGSO(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDense(b, n, 1337)
			out, _ := matrix.NewDense(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.GSO(out, a)
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDense(b, n, 4242)
			q, _ := matrix.NewDense(n, n)
			r, _ := matrix.NewDense(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkErr = matrix.QR(q, r, a)
			}
		})
	}
}

func BenchmarkGram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDense(b, n, 11)
			g, _ := matrix.NewDense(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matrix.Gram(g, a)
			}
			sinkB = matrix.EqualApprox(g, g, 0)
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 22)
			y := randDense(b, n, 33)
			dst, _ := matrix.NewDense(n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matrix.Mul(dst, x, y)
			}
		})
	}
}
