// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix"
)

// eps is the stability threshold the engine runs with by default.
const eps = matrix.DefaultEpsilon

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Used to force the facades through their At-based materialization path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows BUILDS a *Dense from row literals or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandIntDense FILLS an r×c matrix with integers in (-50, 50) drawn from rng.
// Mirrors the randomized fixtures the engine was first validated against.
func RandIntDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(99)-49)))
		}
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// Columns RETURNS every column of m as a fresh slice.
func Columns(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Cols())
	var err error
	for j := range out {
		out[j], err = m.Col(j)
		require.NoError(t, err)
	}

	return out
}

// RequireDimensionPanic ASSERTS that f panics with an error wrapping ErrDimensionMismatch.
func RequireDimensionPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		rec := recover()
		require.NotNil(t, rec, "expected a dimension panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.True(t, errors.Is(err, matrix.ErrDimensionMismatch), "panic %v", err)
	}()
	f()
}

// RequireOrthonormalColumns ASSERTS pairwise |⟨b_j,b_k⟩| <= dotTol and, for
// every non-zero column, |‖b_j‖² − 1| <= normTol.
func RequireOrthonormalColumns(t *testing.T, b *matrix.Dense, dotTol, normTol float64) {
	t.Helper()
	cols := Columns(t, b)
	var j, k int
	for j = 0; j < len(cols); j++ {
		for k = j + 1; k < len(cols); k++ {
			d := matrix.Dot(cols[j], cols[k])
			require.LessOrEqual(t, math.Abs(d), dotTol, "columns %d,%d dot=%g\n%v", j, k, d, b)
		}
		n := matrix.SquaredNorm(cols[j])
		if n != 0 {
			require.LessOrEqual(t, math.Abs(n-1), normTol, "column %d norm²=%.17g\n%v", j, n, b)
		}
	}
}
