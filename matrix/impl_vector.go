// SPDX-License-Identifier: MIT

// Package matrix - vector primitives on []float64.
//
// Purpose:
//   - Raw vector math for callers (and tests) that hold basis vectors outside a
//     matrix: elementwise add/sub/scale, dot product, squared norm, zeroing,
//     approximate equality.
//   - Length disagreement is a caller contract violation: the writing kernels
//     panic with an error wrapping ErrDimensionMismatch, the same way the
//     matrix kernels do.
//
// Notes:
//   - dst may alias a and/or b: every kernel reads index i before writing it.
//   - Dot/SquaredNorm accumulate left-to-right starting from the first product,
//     matching the column walks inside GSO so results are bit-identical.

package matrix

import "math"

const (
	opVecAdd   = "VecAdd"
	opVecSub   = "VecSub"
	opVecScale = "VecScale"
	opDot      = "Dot"
)

// VecAdd sets dst[i] = a[i] + b[i].
// Panics (ErrDimensionMismatch) unless len(dst) == len(a) == len(b).
// Complexity: O(n).
func VecAdd(dst, a, b []float64) {
	mustConform(opVecAdd, ValidateVecLen(a, b))
	mustConform(opVecAdd, ValidateVecLen(dst, a))
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// VecSub sets dst[i] = a[i] - b[i].
// Panics (ErrDimensionMismatch) unless len(dst) == len(a) == len(b).
// Complexity: O(n).
func VecSub(dst, a, b []float64) {
	mustConform(opVecSub, ValidateVecLen(a, b))
	mustConform(opVecSub, ValidateVecLen(dst, a))
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// VecScale sets dst[i] = s * a[i].
// Panics (ErrDimensionMismatch) unless len(dst) == len(a).
// Complexity: O(n).
func VecScale(dst []float64, s float64, a []float64) {
	mustConform(opVecScale, ValidateVecLen(dst, a))
	for i := range dst {
		dst[i] = s * a[i]
	}
}

// Dot returns ⟨a, b⟩; 0 for empty vectors.
// Panics (ErrDimensionMismatch) when lengths differ.
// Complexity: O(n).
func Dot(a, b []float64) float64 {
	mustConform(opDot, ValidateVecLen(a, b))
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// SquaredNorm returns ⟨a, a⟩.
// Complexity: O(n).
func SquaredNorm(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}

	return sum
}

// VecZero sets every element of a to 0.
func VecZero(a []float64) {
	clear(a)
}

// VecEqualApprox reports whether |a[i]-b[i]| <= eps for every i.
// Vectors of different length are never equal.
// Complexity: O(n).
func VecEqualApprox(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}

	return true
}
