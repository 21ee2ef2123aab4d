// SPDX-License-Identifier: MIT

// Package exact is the exact-arithmetic side of gsokit: matrices of
// rationals (RatDense, *big.Rat entries) and integers (IntDense, *big.Int
// entries) with
//
//   - GSO: exact Gram–Schmidt orthogonalization (no normalization, no ε).
//   - Gram, Determinant (Bareiss) and Covolume for integer lattices.
//   - RREF and Inverse via Gauss–Jordan elimination, reporting rank,
//     pivots, determinant and singularity.
//
// Both matrix types are instances of the generic Dense, which keeps a
// row-offset table so elimination swaps rows in O(1). Kernels write into
// caller-provided outputs, may alias input and output, and panic with an
// error wrapping ErrDimensionMismatch on shape disagreement; the facades in
// api.go (Orthogonalize, GramOf, DeterminantOf, Reduce, InverseOf) return
// errors instead.
package exact
