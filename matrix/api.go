// SPDX-License-Identifier: MIT

// Package matrix – public facades.
//
// Purpose:
//   - Allocate outputs of the right shape and call the output-parameter kernels.
//   - Accept any Matrix implementation; *Dense operands are used in place
//     (they are only read), anything else is materialized once.
//   - Never panic on user input: nil and shape problems come back as errors.
//
// AI-Hints:
//   - Use the kernels (GSO, QR, Mul, ...) directly when you manage buffers
//     yourself or want in-place, aliased updates.

package matrix

import "fmt"

// asDense returns m as a *Dense, copying through At when m is another implementation.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	d := newDense(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Orthonormalize returns a new matrix whose columns are GSO(m).
// Errors: ErrNilMatrix, ErrRefinementDiverged (wrapped with "GSO").
// Complexity: as GSO plus one allocation.
func Orthonormalize(m Matrix, opts ...Option) (*Dense, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGSO, err)
	}
	b := newDense(a.r, a.c)
	if err = GSO(b, a, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Factorize returns fresh Q (rows×cols) and R (cols×cols, zero below the
// diagonal) with Q·R ≈ m.
// Errors: ErrNilMatrix, ErrRefinementDiverged (wrapped with "QR").
func Factorize(m Matrix, opts ...Option) (q, r *Dense, err error) {
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	q = newDense(a.r, a.c)
	r = newDense(a.c, a.c)
	if err = QR(q, r, a, opts...); err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// GramOf returns the Gram matrix m·mᵀ of the rows of m.
// Errors: ErrNilMatrix.
func GramOf(m Matrix) (*Dense, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	g := newDense(a.r, a.r)
	Gram(g, a)

	return g, nil
}

// Product returns a × b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Product(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c := newDense(da.r, db.c)
	Mul(c, da, db)

	return c, nil
}

// T returns mᵀ.
// Errors: ErrNilMatrix.
func T(m Matrix) (*Dense, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t := newDense(a.c, a.r)
	Transpose(t, a)

	return t, nil
}

// CopyOf returns an independent *Dense copy of any Matrix.
// Errors: ErrNilMatrix.
func CopyOf(m Matrix) (*Dense, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return a.clone(), nil
}
