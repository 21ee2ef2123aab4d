// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Facades MUST return these sentinels and tests MUST check them
// via errors.Is. Kernels that write into caller-provided outputs panic with an
// error wrapping ErrDimensionMismatch when shapes disagree: that is a caller
// contract violation, not a runtime condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers will still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numerical (refinement cap).

var (
	// ErrBadShape is returned when a row-literal is ragged or otherwise malformed.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// and/or the output, e.g. Mul where a.Cols != b.Rows or dst is not a.Rows×b.Cols.
	// Kernels panic with it; facades return it.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRefinementDiverged is an internal error: the re-orthogonalization loop of
	// GSO/QR hit its pass cap without accepting or flushing the residual.
	// Finite input is not expected to trigger it under the default cap.
	ErrRefinementDiverged = errors.New("matrix: re-orthogonalization did not settle")
)
