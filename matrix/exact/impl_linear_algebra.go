// SPDX-License-Identifier: MIT
// Package exact provides the exact counterparts of the dense kernels:
// copy ("set"), O(1) swap, equality, transpose and multiplication, all
// writing into caller-provided outputs.
//
// Notes:
//   - Shape disagreement panics with an error wrapping ErrDimensionMismatch;
//     the facades in api.go return errors instead.
//   - When the output may alias an input the kernel computes into a fresh
//     temporary and Swaps it into the output.

package exact

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opCopy        = "Copy"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opGSO         = "GSO"
	opGram        = "Gram"
	opDeterminant = "Determinant"
	opRREF        = "RREF"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustConform escalates a validation failure to a panic whose value is an error.
func mustConform(op string, err error) {
	if err != nil {
		panic(matrixErrorf(op, err))
	}
}

// validateShape checks that m is exactly rows×cols.
func validateShape[T Scalar[T]](m *Dense[T], rows, cols int) error {
	if m.r != rows || m.c != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: want %dx%d, have %dx%d", rows, cols, m.r, m.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateSquare checks that m is square.
func validateSquare[T Scalar[T]](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// Copy assigns src to dst entry-wise; dst == src is a no-op.
// Panics (ErrDimensionMismatch) when shapes differ.
// Complexity: O(r*c).
func Copy[T Scalar[T]](dst, src *Dense[T]) {
	if dst == src {
		return
	}
	mustConform(opCopy, validateShape(dst, src.r, src.c))
	var i, j int
	for i = 0; i < src.r; i++ {
		d, s := dst.row(i), src.row(i)
		for j = range s {
			d[j].Set(s[j])
		}
	}
}

// Swap exchanges the contents of a and b in O(1); shapes may differ.
func Swap[T Scalar[T]](a, b *Dense[T]) {
	*a, *b = *b, *a
}

// Equal reports whether a and b share a shape and every entry compares equal.
func Equal[T Scalar[T]](a, b *Dense[T]) bool {
	if a == b {
		return true
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		ra, rb := a.row(i), b.row(i)
		for j = range ra {
			if ra[j].Cmp(rb[j]) != 0 {
				return false
			}
		}
	}

	return true
}

// Transpose writes srcᵀ into dst (dst must be src.Cols()×src.Rows()).
// dst == src is legal for square matrices (temporary + Swap).
// Complexity: O(r*c).
func Transpose[T Scalar[T]](dst, src *Dense[T]) {
	mustConform(opTranspose, validateShape(dst, src.c, src.r))
	if dst == src {
		tmp := newDense[T](src.c, src.r)
		Transpose(tmp, src)
		Swap(dst, tmp)

		return
	}
	var i, j int
	for i = 0; i < src.r; i++ {
		s := src.row(i)
		for j = range s {
			dst.data[dst.rowOff[j]+i].Set(s[j])
		}
	}
}

// Mul performs dst = a × b exactly.
// MAIN DESCRIPTION:
//   - dst must be a.Rows()×b.Cols(); dst may alias a and/or b.
//
// Implementation:
//   - Stage 1: validate; panic on mismatch.
//   - Stage 2: aliased output → temporary + Swap.
//   - Stage 3: zero dst, i→k→j accumulation skipping zero a[i,k].
//
// Complexity:
//   - Time O(r*n*c) big-number operations.
func Mul[T Scalar[T]](dst, a, b *Dense[T]) {
	if a.c != b.r {
		mustConform(opMul, validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch))
	}
	mustConform(opMul, validateShape(dst, a.r, b.c))
	if dst == a || dst == b {
		tmp := newDense[T](a.r, b.c)
		Mul(tmp, a, b)
		Swap(dst, tmp)

		return
	}

	dst.Zero()
	prod := newScalar[T]()
	var i, k, j int
	for i = 0; i < a.r; i++ {
		ra, rd := a.row(i), dst.row(i)
		for k = range ra {
			if ra[k].Sign() == 0 {
				continue
			}
			rb := b.row(k)
			for j = range rb {
				rd[j].Add(rd[j], prod.Mul(ra[k], rb[j]))
			}
		}
	}
}
