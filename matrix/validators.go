// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors wrapped with the validator tag so call sites
//     can wrap uniformly; kernels escalate the same errors to panics via
//     mustConform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//   - Facades: call ValidateX and return the error.
//   - Kernels with output parameters: call mustConform(op, ValidateX(...)).
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustConform escalates a validation failure to a panic.
// Output-parameter kernels treat shape disagreement as a caller bug: the panic
// value is an error, so recover() + errors.Is(err, ErrDimensionMismatch) works.
func mustConform(op string, err error) {
	if err != nil {
		panic(matrixErrorf(op, err))
	}
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil or a typed nil *Dense.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape checks that m is exactly rows×cols.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: want %dx%d, have %dx%d", rows, cols, m.Rows(), m.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures two vectors have the same length.
// Time: O(1). Space: O(1).
func ValidateVecLen(a, b []float64) error {
	if len(a) != len(b) {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: %d vs %d", len(a), len(b)), ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
