// SPDX-License-Identifier: MIT

// Package matrix is a floating-point Gram–Schmidt / QR engine over a dense,
// row-major float64 container.
//
// The package provides:
//
//   - Dense: an r×c matrix (0×n and m×0 included) with safe accessors,
//     column/row extraction, O(1) Swap and in-place SwapRows.
//   - GSO: column-by-column orthonormalization with adaptive
//     re-orthogonalization. A column whose residual collapses below the
//     stability threshold comes out as the zero vector.
//   - QR: the same basis plus the upper-triangular coefficients R with Q·R ≈ A.
//   - Gram: the matrix of pairwise inner products of the rows, A·Aᵀ.
//   - Copy, Transpose, Mul, EqualApprox and vector helpers used to validate
//     the above.
//
// Kernels write into caller-provided outputs and may be called with the output
// aliasing an input (GSO(a, a), Mul(a, a, a), ...). Shape disagreement is a
// caller bug and panics with an error wrapping ErrDimensionMismatch. The
// facades (Orthonormalize, Factorize, GramOf, Product, T, CopyOf) allocate the
// outputs and return errors instead.
//
// The stability threshold (WithEpsilon), the per-column pass cap
// (WithMaxPasses) and refinement tracing (WithLogger, zerolog) are
// configured with functional options.
//
// For exact rational arithmetic over the same operations see the exact
// subpackage.
package matrix
