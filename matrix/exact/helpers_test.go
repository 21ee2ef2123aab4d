// SPDX-License-Identifier: MIT
// Package exact_test contains test helpers.

package exact_test

import (
	"errors"
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix/exact"
)

// MustRat BUILDS a rational matrix from string literals or fails the test.
func MustRat(t testing.TB, rows [][]string) *exact.RatDense {
	t.Helper()
	m, err := exact.NewRatDenseFromStrings(rows)
	require.NoError(t, err)

	return m
}

// MustInt BUILDS an integer matrix from string literals or fails the test.
func MustInt(t testing.TB, rows [][]string) *exact.IntDense {
	t.Helper()
	m, err := exact.NewIntDenseFromStrings(rows)
	require.NoError(t, err)

	return m
}

// RandRows DRAWS an r×c literal of integers in (-50, 50). A literal with no
// rows parses as 0×0, so sweeps over empty shapes use RandRat/RandInt.
func RandRows(rng *rand.Rand, r, c int) [][]string {
	out := make([][]string, r)
	for i := range out {
		out[i] = make([]string, c)
		for j := range out[i] {
			out[i][j] = strconv.Itoa(rng.Intn(99) - 49)
		}
	}

	return out
}

// RandRat FILLS an explicitly shaped r×c rational matrix with integers in
// (-50, 50). Unlike a row literal it keeps the column count when r == 0.
func RandRat(t testing.TB, rng *rand.Rand, r, c int) *exact.RatDense {
	t.Helper()
	m, err := exact.NewRatDense(r, c)
	require.NoError(t, err)
	fillRand(t, rng, r, c, m.SetInt64)

	return m
}

// RandInt is RandRat for integer matrices.
func RandInt(t testing.TB, rng *rand.Rand, r, c int) *exact.IntDense {
	t.Helper()
	m, err := exact.NewIntDense(r, c)
	require.NoError(t, err)
	fillRand(t, rng, r, c, m.SetInt64)

	return m
}

func fillRand(t testing.TB, rng *rand.Rand, r, c int, set func(i, j int, v int64) error) {
	t.Helper()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, set(i, j, int64(rng.Intn(99)-49)))
		}
	}
}

// Identity RETURNS the n×n rational identity.
func Identity(t testing.TB, n int) *exact.RatDense {
	t.Helper()
	m, err := exact.NewRatDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.SetInt64(i, i, 1))
	}

	return m
}

// RatColumn RETURNS a copy of column j.
func RatColumn(t testing.TB, m *exact.RatDense, j int) []*big.Rat {
	t.Helper()
	out := make([]*big.Rat, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[i] = v
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
		require.True(t, errors.Is(err, exact.ErrDimensionMismatch), "panic %v", err)
	}()
	f()
}
