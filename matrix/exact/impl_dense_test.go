// SPDX-License-Identifier: MIT
package exact_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix/exact"
)

func TestNewDenseDimensions(t *testing.T) {
	_, err := exact.NewRatDense(-1, 2)
	require.ErrorIs(t, err, exact.ErrInvalidDimensions)
	_, err = exact.NewIntDense(2, -1)
	require.ErrorIs(t, err, exact.ErrInvalidDimensions)

	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := exact.NewRatDense(shape[0], shape[1])
		require.NoError(t, err)
		r, c := m.Shape()
		require.Equal(t, shape[0], r)
		require.Equal(t, shape[1], c)
		if r > 1 {
			require.NoError(t, m.SwapRows(0, r-1))
		}
	}
}

// TestEntryIsLive verifies Entry returns the stored scalar, At a copy.
func TestEntryIsLive(t *testing.T) {
	m := MustRat(t, [][]string{{"1/2", "3"}})

	m.Entry(0, 0).SetInt64(5)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "5", v.RatString())

	v.SetInt64(7)
	require.Equal(t, "[5 3]\n", m.String())

	require.Panics(t, func() { m.Entry(1, 0) })
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, exact.ErrOutOfRange)
}

func TestSetCopiesValue(t *testing.T) {
	m, err := exact.NewIntDense(1, 2)
	require.NoError(t, err)

	v := big.NewInt(4)
	require.NoError(t, m.Set(0, 1, v))
	v.SetInt64(9)
	require.Equal(t, "[0 4]\n", m.String())

	require.ErrorIs(t, m.Set(0, 0, nil), exact.ErrNilScalar)
	require.ErrorIs(t, m.Set(1, 0, v), exact.ErrOutOfRange)
	require.ErrorIs(t, m.SetInt64(0, 2, 1), exact.ErrOutOfRange)
}

// TestSwapRowsThroughOffsetTable: rows exchange without moving scalars.
func TestSwapRowsThroughOffsetTable(t *testing.T) {
	m := MustRat(t, [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}})
	p := m.Entry(0, 1)

	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, "[5 6]\n[3 4]\n[1 2]\n", m.String())
	require.Same(t, p, m.Entry(2, 1), "the scalar itself must not move")

	// a clone is laid out in logical order and independent
	c := m.Clone()
	require.True(t, exact.Equal(m, c))
	c.Entry(0, 0).SetInt64(0)
	require.Equal(t, "5", m.Entry(0, 0).RatString())

	require.ErrorIs(t, m.SwapRows(0, 3), exact.ErrOutOfRange)
}

func TestZeroAndFloat64Rows(t *testing.T) {
	m := MustRat(t, [][]string{{"1/4", "-3"}, {"0.5", "1e2"}})
	require.Equal(t, [][]float64{{0.25, -3}, {0.5, 100}}, m.Float64Rows())

	im := MustInt(t, [][]string{{"-7", "12345678901234567890"}})
	require.Equal(t, [][]float64{{-7, 12345678901234567890}}, im.Float64Rows())

	m.Zero()
	require.Equal(t, "[0 0]\n[0 0]\n", m.String())
}

func TestFromStringsErrors(t *testing.T) {
	_, err := exact.NewRatDenseFromStrings([][]string{{"1", "2"}, {"3"}})
	require.ErrorIs(t, err, exact.ErrBadShape)

	_, err = exact.NewRatDenseFromStrings([][]string{{"1/0"}})
	require.ErrorIs(t, err, exact.ErrParse)

	_, err = exact.NewIntDenseFromStrings([][]string{{"1/2"}})
	require.ErrorIs(t, err, exact.ErrParse)

	m, err := exact.NewRatDenseFromStrings([][]string{{" -6/4 ", "0.125"}})
	require.NoError(t, err)
	require.Equal(t, "[-3/2 1/8]\n", m.String())

	empty, err := exact.NewIntDenseFromStrings(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

func TestStrings(t *testing.T) {
	m := MustRat(t, [][]string{{"-7/4", "6/2"}})
	require.Equal(t, [][]string{{"-7/4", "3"}}, m.Strings())
}
