// SPDX-License-Identifier: MIT

// Package exact – public facades.
//
// Purpose:
//   - Allocate outputs and call the kernels; return errors instead of
//     panicking on nil or ill-shaped input.

package exact

import "math/big"

// Orthogonalize returns the exact Gram–Schmidt orthogonalization of the columns of a.
// Errors: ErrNilMatrix.
func Orthogonalize(a *RatDense) (*RatDense, error) {
	if a == nil {
		return nil, matrixErrorf(opGSO, ErrNilMatrix)
	}
	b := newDense[*big.Rat](a.r, a.c)
	GSO(b, a)

	return b, nil
}

// GramOf returns the integer Gram matrix a·aᵀ.
// Errors: ErrNilMatrix.
func GramOf(a *IntDense) (*IntDense, error) {
	if a == nil {
		return nil, matrixErrorf(opGram, ErrNilMatrix)
	}
	g := newDense[*big.Int](a.r, a.r)
	Gram(g, a)

	return g, nil
}

// DeterminantOf returns det(a).
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func DeterminantOf(a *IntDense) (*big.Int, error) {
	if a == nil {
		return nil, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opDeterminant, err)
	}

	return Determinant(a), nil
}

// Reduce returns the reduced row echelon form of a with its Reduction summary.
// Errors: ErrNilMatrix.
func Reduce(a *RatDense) (*RatDense, Reduction, error) {
	if a == nil {
		return nil, Reduction{}, matrixErrorf(opRREF, ErrNilMatrix)
	}
	dst := newDense[*big.Rat](a.r, a.c)
	red := RREF(dst, a)

	return dst, red, nil
}

// InverseOf returns a⁻¹ and det(a).
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
func InverseOf(a *RatDense) (*RatDense, *big.Rat, error) {
	if a == nil {
		return nil, nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if err := validateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opInverse, err)
	}
	inv := newDense[*big.Rat](a.r, a.c)
	det, ok := Inverse(inv, a)
	if !ok {
		return nil, det, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, det, nil
}
