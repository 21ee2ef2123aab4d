// Package gsokit orthonormalizes bases and computes lattice invariants,
// in floating point and exactly.
//
// What is inside?
//
//	matrix/       — float64 Dense container, Gram–Schmidt with adaptive
//	                re-orthogonalization (GSO), QR, Gram matrix, Mul/Transpose
//	matrix/exact/ — rational and integer matrices: exact GSO, Gram,
//	                Bareiss determinant, covolume, RREF, inverse
//	cmd/gsokit/   — command-line front end over YAML matrix files
//
// Kernels write into caller-provided outputs and accept the output aliasing
// an input. A shape mismatch is a caller bug and panics; the facades
// (matrix.Orthonormalize, exact.InverseOf, ...) return errors instead.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{3, 1}, {4, 2}})
//	q, r, err := matrix.Factorize(a)
//
//	go get github.com/katalvlaran/gsokit/matrix
package gsokit
