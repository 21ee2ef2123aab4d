// SPDX-License-Identifier: MIT
package exact_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix"
	"github.com/katalvlaran/gsokit/matrix/exact"
)

func TestGSOConcrete(t *testing.T) {
	a := MustRat(t, [][]string{{"3", "1"}, {"4", "2"}})
	b, err := exact.Orthogonalize(a)
	require.NoError(t, err)
	require.Equal(t, "[3 -8/25]\n[4 6/25]\n", b.String())
}

// TestGSODependentColumnSkipped: a dependent column is exactly zero and later
// columns skip the projection onto it.
func TestGSODependentColumnSkipped(t *testing.T) {
	a := MustRat(t, [][]string{{"1", "2", "0"}, {"1", "2", "1"}, {"0", "0", "1"}})
	b, err := exact.Orthogonalize(a)
	require.NoError(t, err)
	require.Equal(t, "[1 0 -1/2]\n[1 0 1/2]\n[0 0 1]\n", b.String())
}

// TestGSOExactOrthogonality: ⟨b_j, b_k⟩ == 0 exactly for every shape up to 6×6.
func TestGSOExactOrthogonality(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var m, n, j, k int
	for m = 0; m <= 6; m++ {
		for n = 0; n <= 6; n++ {
			a := RandRat(t, rng, m, n)
			b, err := exact.NewRatDense(m, n)
			require.NoError(t, err)
			exact.GSO(b, a)

			cols := make([][]*big.Rat, n)
			for j = 0; j < n; j++ {
				cols[j] = RatColumn(t, b, j)
			}
			for j = 0; j < n; j++ {
				for k = j + 1; k < n; k++ {
					require.Zero(t, exact.RatDot(cols[j], cols[k]).Sign(), "%dx%d cols %d,%d", m, n, j, k)
				}
			}
			if n > 0 && m > 0 {
				require.True(t, exact.Equal(colMatrix(t, RatColumn(t, a, 0)), colMatrix(t, cols[0])),
					"first column must be copied unchanged")
			}
		}
	}
}

func TestGSOAliased(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := MustRat(t, RandRows(rng, 5, 4))
	want, err := exact.Orthogonalize(a)
	require.NoError(t, err)

	exact.GSO(a, a)
	require.True(t, exact.Equal(want, a))

	RequireDimensionPanic(t, func() { exact.GSO(MustRat(t, [][]string{{"1"}}), a) })
}

// TestGSOAgreesWithFloatEngine: normalizing the exact basis reproduces the
// floating-point GSO to within rounding.
func TestGSOAgreesWithFloatEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 10; trial++ {
		a := MustRat(t, RandRows(rng, 6, 4))
		b, err := exact.Orthogonalize(a)
		require.NoError(t, err)

		fa, err := matrix.NewDenseFrom(a.Float64Rows())
		require.NoError(t, err)
		fb, err := matrix.Orthonormalize(fa)
		require.NoError(t, err)

		exactRows := b.Float64Rows()
		for k := 0; k < 4; k++ {
			var norm float64
			for i := range exactRows {
				norm += exactRows[i][k] * exactRows[i][k]
			}
			norm = math.Sqrt(norm)
			for i := range exactRows {
				got, err := fb.At(i, k)
				require.NoError(t, err)
				require.InDelta(t, exactRows[i][k]/norm, got, 1e-12, "trial %d col %d", trial, k)
			}
		}
	}
}

// colMatrix WRAPS a column as an n×1 matrix for comparison with exact.Equal.
func colMatrix(t *testing.T, col []*big.Rat) *exact.RatDense {
	t.Helper()
	m, err := exact.NewRatDense(len(col), 1)
	require.NoError(t, err)
	for i, v := range col {
		require.NoError(t, m.Set(i, 0, v))
	}

	return m
}

// TestDegenerateShapes: empty inputs keep their shape through GSO and Gram.
func TestDegenerateShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 3}, {3, 0}} {
		a := RandRat(t, rng, tc.r, tc.c)
		b, err := exact.NewRatDense(tc.r, tc.c)
		require.NoError(t, err)
		exact.GSO(b, a)
		exact.GSO(a, a)
		require.Equal(t, tc.r, a.Rows())
		require.Equal(t, tc.c, a.Cols())

		ia := RandInt(t, rng, tc.r, tc.c)
		g, err := exact.GramOf(ia)
		require.NoError(t, err)
		require.Equal(t, tc.r, g.Rows())
		require.Equal(t, tc.r, g.Cols())
		for i := 0; i < tc.r; i++ {
			for j := 0; j < tc.r; j++ {
				require.Zero(t, g.Entry(i, j).Sign(), "no columns gives a zero Gram")
			}
		}
	}

	// a literal without rows carries no column count
	m := MustRat(t, [][]string{})
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}
