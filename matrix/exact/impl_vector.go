// SPDX-License-Identifier: MIT

// Package exact - vector primitives on slices of live scalars.
//
// Notes:
//   - The slices hold pointers; writing dst[i] writes whatever matrix entry
//     dst[i] points at. Column views from Dense.col are used this way by GSO.
//   - dst may alias a and/or b: big.Rat/big.Int arithmetic tolerates
//     receiver/argument aliasing and every index is read before it is written.

package exact

import "math/big"

const (
	opDot       = "RatDot"
	opVecSub    = "RatVecSub"
	opVecAddMul = "RatVecAddMul"
)

func validateVecLen(a, b int) error {
	if a != b {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// dot returns a freshly allocated ⟨a, b⟩.
func dot[T Scalar[T]](a, b []T) T {
	mustConform(opDot, validateVecLen(len(a), len(b)))
	sum, prod := newScalar[T](), newScalar[T]()
	for i := range a {
		sum.Add(sum, prod.Mul(a[i], b[i]))
	}

	return sum
}

// vecSub sets dst[i] = a[i] - b[i].
func vecSub[T Scalar[T]](dst, a, b []T) {
	mustConform(opVecSub, validateVecLen(len(a), len(b)))
	mustConform(opVecSub, validateVecLen(len(dst), len(a)))
	for i := range dst {
		dst[i].Sub(a[i], b[i])
	}
}

// vecAddMul sets dst[i] = a[i] + s·b[i].
func vecAddMul[T Scalar[T]](dst, a []T, s T, b []T) {
	mustConform(opVecAddMul, validateVecLen(len(a), len(b)))
	mustConform(opVecAddMul, validateVecLen(len(dst), len(a)))
	tmp := newScalar[T]()
	for i := range dst {
		tmp.Mul(s, b[i])
		dst[i].Add(a[i], tmp)
	}
}

// RatDot returns ⟨a, b⟩ as a new rational; 0 for empty vectors.
// Panics (ErrDimensionMismatch) when lengths differ.
func RatDot(a, b []*big.Rat) *big.Rat { return dot(a, b) }

// RatSquaredNorm returns ⟨a, a⟩ as a new rational.
func RatSquaredNorm(a []*big.Rat) *big.Rat { return dot(a, a) }

// RatVecSub sets dst[i] = a[i] - b[i].
// Panics (ErrDimensionMismatch) unless all lengths agree.
func RatVecSub(dst, a, b []*big.Rat) { vecSub(dst, a, b) }

// RatVecAddMul sets dst[i] = a[i] + s·b[i] (the axpy of the GSO update).
// Panics (ErrDimensionMismatch) unless all lengths agree.
func RatVecAddMul(dst, a []*big.Rat, s *big.Rat, b []*big.Rat) { vecAddMul(dst, a, s, b) }
