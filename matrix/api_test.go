// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gsokit/matrix"
)

// TestFacadesAcceptAnyMatrix routes non-Dense inputs through the At-based path.
func TestFacadesAcceptAnyMatrix(t *testing.T) {
	base := FromRows(t, [][]float64{{3, 1}, {4, 2}})
	in := hide{base}

	b, err := matrix.Orthonormalize(in)
	require.NoError(t, err)
	want := MustDense(t, 2, 2)
	require.NoError(t, matrix.GSO(want, base))
	require.True(t, matrix.EqualApprox(want, b, 0))

	q, r, err := matrix.Factorize(in)
	require.NoError(t, err)
	qr, err := matrix.Product(q, r)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(base, qr, 1e-14))

	g, err := matrix.GramOf(in)
	require.NoError(t, err)
	require.Equal(t, "[10 14]\n[14 20]\n", g.String())

	tr, err := matrix.T(in)
	require.NoError(t, err)
	require.Equal(t, "[3 4]\n[1 2]\n", tr.String())

	cp, err := matrix.CopyOf(in)
	require.NoError(t, err)
	require.NoError(t, cp.Set(0, 0, 0))
	require.Equal(t, 3.0, MustAt(t, base, 0, 0))
}

// TestFacadesDoNotMutateInput: facades never write into their arguments.
func TestFacadesDoNotMutateInput(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 1}, {0, 1}, {2, 5}})
	before := a.String()

	_, err := matrix.Orthonormalize(a)
	require.NoError(t, err)
	_, _, err = matrix.Factorize(a)
	require.NoError(t, err)
	_, err = matrix.GramOf(a)
	require.NoError(t, err)

	require.Equal(t, before, a.String())
}

func TestFacadesNilAndShapeErrors(t *testing.T) {
	var nilDense *matrix.Dense

	_, err := matrix.Orthonormalize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.Factorize(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.GramOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.T(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.CopyOf(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Product(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Product(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFactorizeEmptyShapes(t *testing.T) {
	q, r, err := matrix.Factorize(MustDense(t, 0, 3))
	require.NoError(t, err)
	require.Equal(t, 0, q.Rows())
	require.Equal(t, 3, r.Rows())
	require.Equal(t, 3, r.Cols())
}
