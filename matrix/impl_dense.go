// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Treat 0×n and m×0 as legal, canonical empty matrices (no allocation).
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels in this package operate on the flat data slice directly; columns
//     are walked with stride c (data[j], data[c+j], data[2c+j], ...).
//   - Use Col/SetCol to move whole basis vectors in and out of a matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxSetCol   = "SetCol"   // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     nil when r*c == 0 (canonical empty matrix).
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer unless the shape is empty.
//
// Behavior highlights:
//   - 0×n and m×0 are legal and allocate nothing: the orthogonalization
//     kernels accept them as vacuous input.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense(rows, cols int) *Dense {
	m := &Dense{r: rows, c: cols}
	if rows*cols > 0 {
		m.data = make([]float64, rows*cols)
	}

	return m
}

// NewDenseFrom builds a Dense from row literals.
// MAIN DESCRIPTION:
//   - Copy a [][]float64 (one slice per row) into fresh row-major storage.
//
// Implementation:
//   - Stage 1: the column count is len(rows[0]) (0 when there are no rows).
//   - Stage 2: every row must have that length; else ErrBadShape.
//   - Stage 3: every value must be finite; else ErrNaNInf.
//
// Returns:
//   - *Dense: independent copy.
//
// Errors:
//   - ErrBadShape (ragged input), ErrNaNInf (non-finite entry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := newDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf.
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used by kernels.
func (m *Dense) clone() *Dense {
	cp := newDense(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v (len(v) must equal Rows()).
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf. Nothing is written on error.
// Complexity: O(r).
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, len(v), j, ErrDimensionMismatch)
	}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return denseErrorf(ctxSetCol, i, j, ErrNaNInf)
		}
	}
	for i := range v {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Zero sets every entry to 0 in place.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	clear(m.data)
}

// SwapRows exchanges rows r and s in place.
// Stride addressing means the row contents move; r == s is a no-op.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(r, s int) error {
	if r < 0 || r >= m.r || s < 0 || s >= m.r {
		return denseErrorf(ctxSwapRows, r, s, ErrOutOfRange)
	}
	if r == s {
		return nil
	}
	a := m.data[r*m.c : (r+1)*m.c]
	b := m.data[s*m.c : (s+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// String renders one bracketed row per line with space-separated entries.
// Intended for diagnostics only; the layout is not a stable format.
//
// Determinism:
//   - Fixed traversal order; %g-equivalent shortest formatting.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
