// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
// Facades return these sentinels (wrapped with an operation tag); kernels that
// write into caller-provided outputs panic with an error wrapping
// ErrDimensionMismatch when shapes disagree. Callers match with errors.Is.

package exact

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("exact: dimensions must be >= 0")

	// ErrBadShape is returned when a row-literal is ragged.
	ErrBadShape = errors.New("exact: invalid shape")

	// ErrOutOfRange indicates an index outside the matrix bounds.
	ErrOutOfRange = errors.New("exact: index out of range")

	// ErrDimensionMismatch indicates incompatible operand/output dimensions.
	ErrDimensionMismatch = errors.New("exact: dimension mismatch")

	// ErrParse indicates a textual entry that is not a valid number of the
	// matrix's scalar domain.
	ErrParse = errors.New("exact: cannot parse entry")

	// ErrSingular is returned by InverseOf for a matrix with zero determinant.
	ErrSingular = errors.New("exact: matrix is singular")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("exact: nil matrix")

	// ErrNilScalar indicates a nil *big.Rat / *big.Int passed to Set.
	ErrNilScalar = errors.New("exact: nil scalar")
)
