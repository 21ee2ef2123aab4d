// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels the orthogonalization engine is
// validated with: copy ("set"), O(1) swap, approximate equality, transpose and
// multiplication, all writing into caller-provided outputs.
//
// Purpose:
//   - Declare canonical output-parameter kernels and operation tags.
//   - Implement the aliasing rule shared by every kernel: when the output may
//     alias an input, compute into a fresh temporary, then Swap it into the
//     output. The temporary's old buffer is dropped before return.
//
// Notes:
//   - Shape disagreement panics with an error wrapping ErrDimensionMismatch
//     (see mustConform); the facades in api.go return the same error instead.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCopy      = "Copy"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opGSO       = "GSO"
	opQR        = "QR"
	opGram      = "Gram"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Copy assigns src to dst element-wise (dst and src must share a shape).
// MAIN DESCRIPTION:
//   - The container's "set" operation: dst becomes an independent copy of src.
//
// Implementation:
//   - Stage 1: dst == src is a no-op.
//   - Stage 2: validate shapes; panic on mismatch.
//   - Stage 3: single flat copy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Copy(dst, src *Dense) {
	if dst == src {
		return
	}
	mustConform(opCopy, ValidateSameShape(dst, src))
	copy(dst.data, src.data)
}

// Swap exchanges the contents of a and b by swapping struct fields: O(1), no data copy.
// The shapes may differ; each value simply takes over the other's buffer.
func Swap(a, b *Dense) {
	*a, *b = *b, *a
}

// EqualApprox reports whether a and b share a shape and |a[i,j]-b[i,j]| <= eps everywhere.
// MAIN DESCRIPTION:
//   - Absolute, entrywise comparison; shapes that differ compare unequal
//     (this is a predicate, not a kernel, so no panic).
//
// Inputs:
//   - a, b: matrices to compare.
//   - eps : non-negative absolute tolerance.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Scale eps with the magnitude of the data when comparing reconstructions.
func EqualApprox(a, b *Dense, eps float64) bool {
	if a == b {
		return true
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !(math.Abs(a.data[i]-b.data[i]) <= eps) {
			return false
		}
	}

	return true
}

// Transpose writes srcᵀ into dst (dst must be src.Cols()×src.Rows()).
// MAIN DESCRIPTION:
//   - dst == src is legal for square matrices and handled via temp + swap.
//
// Implementation:
//   - Stage 1: validate dst shape; panic on mismatch.
//   - Stage 2: if dst aliases src, recurse into a temporary and swap.
//   - Stage 3: contiguous read of src rows, strided write into dst.
//
// Complexity:
//   - Time O(r*c), Space O(1) (O(r*c) when aliased).
func Transpose(dst, src *Dense) {
	mustConform(opTranspose, ValidateShape(dst, src.c, src.r))
	if dst == src {
		tmp := newDense(src.c, src.r)
		Transpose(tmp, src)
		Swap(dst, tmp)

		return
	}

	rows, cols := src.r, src.c
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			dst.data[j*rows+i] = src.data[baseSrc+j]
		}
	}
}

// Mul performs standard matrix multiplication dst = A × B.
// MAIN DESCRIPTION:
//   - dst must be a.Rows()×b.Cols(); dst may alias a and/or b.
//
// Implementation:
//   - Stage 1: validate inner dimensions and dst shape; panic on mismatch.
//   - Stage 2: aliased output → compute into a temporary, then Swap into dst.
//   - Stage 3: zero dst, then i→k→j accumulation over row-major strides,
//     skipping zero A[i,k].
//
// Behavior highlights:
//   - a.Cols() == 0 yields the zero matrix.
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(1) (O(r*c) when aliased).
func Mul(dst, a, b *Dense) {
	mustConform(opMul, ValidateMulCompatible(a, b))
	mustConform(opMul, ValidateShape(dst, a.r, b.c))
	if dst == a || dst == b {
		tmp := newDense(a.r, b.c)
		Mul(tmp, a, b)
		Swap(dst, tmp)

		return
	}

	dst.Zero()
	aRows, aCols, bCols := a.r, a.c, b.c
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				dst.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}
}
