// SPDX-License-Identifier: MIT

// Package exact - dense storage of big-number entries with a row-offset table.
//
// Purpose:
//   - One flat buffer of scalar pointers plus rowOff, where rowOff[i] is the
//     offset of row i inside the buffer. SwapRows exchanges two table entries:
//     O(1), no scalar moves. Elimination (RREF, Bareiss) relies on it.
//   - Every entry is an independently allocated scalar; Entry hands out the
//     live pointer so kernels mutate in place without copying.
//   - 0×n and m×0 are legal canonical empty matrices (no allocation).
//
// Complexity quicksheet:
//   - New*: O(r*c) allocations; Entry/At/Set: O(1); SwapRows: O(1); Swap: O(1).

package exact

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxEntry    = "Entry"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSwapRows = "SwapRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an r×c matrix over the exact scalar domain T.
type Dense[T Scalar[T]] struct {
	r, c   int
	data   []T   // r*c independently allocated scalars; nil when empty
	rowOff []int // rowOff[i] = offset of row i in data; nil when empty
}

// RatDense is a matrix of rationals.
type RatDense = Dense[*big.Rat]

// IntDense is a matrix of integers.
type IntDense = Dense[*big.Int]

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*RatDense)(nil)
	_ fmt.Stringer = (*IntDense)(nil)
)

// NewRatDense returns an r×c zero matrix of rationals.
// Errors: ErrInvalidDimensions.
func NewRatDense(rows, cols int) (*RatDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[*big.Rat](rows, cols), nil
}

// NewIntDense returns an r×c zero matrix of integers.
// Errors: ErrInvalidDimensions.
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[*big.Int](rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense[T Scalar[T]](rows, cols int) *Dense[T] {
	m := &Dense[T]{r: rows, c: cols}
	if rows*cols == 0 {
		return m
	}
	m.data = make([]T, rows*cols)
	for k := range m.data {
		m.data[k] = newScalar[T]()
	}
	m.rowOff = make([]int, rows)
	for i := range m.rowOff {
		m.rowOff[i] = i * cols
	}

	return m
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// row returns the live slice of row i (through the offset table); nil when
// the matrix has no columns.
func (m *Dense[T]) row(i int) []T {
	if m.c == 0 {
		return nil
	}
	off := m.rowOff[i]

	return m.data[off : off+m.c]
}

// col gathers the live pointers of column j.
func (m *Dense[T]) col(j int) []T {
	out := make([]T, m.r)
	for i := range out {
		out[i] = m.data[m.rowOff[i]+j]
	}

	return out
}

func (m *Dense[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// Entry returns the live scalar at (i, j); mutating it mutates the matrix.
// Panics with ErrOutOfRange on a bad index, like slice indexing.
// Complexity: O(1).
func (m *Dense[T]) Entry(i, j int) T {
	if !m.inBounds(i, j) {
		panic(denseErrorf(ctxEntry, i, j, ErrOutOfRange))
	}

	return m.data[m.rowOff[i]+j]
}

// At returns a copy of the entry at (i, j).
// Errors: ErrOutOfRange.
func (m *Dense[T]) At(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return newScalar[T]().Set(m.data[m.rowOff[i]+j]), nil
}

// Set stores a copy of v at (i, j).
// Errors: ErrOutOfRange, ErrNilScalar.
func (m *Dense[T]) Set(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v == nil {
		return denseErrorf(ctxSet, i, j, ErrNilScalar)
	}
	m.data[m.rowOff[i]+j].Set(v)

	return nil
}

// SetInt64 stores the integer v at (i, j).
// Errors: ErrOutOfRange.
func (m *Dense[T]) SetInt64(i, j int, v int64) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[m.rowOff[i]+j].SetInt64(v)

	return nil
}

// Clone returns a deep copy; the copy's rows are laid out in logical order.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDense[T](m.r, m.c)
	Copy(cp, m)

	return cp
}

// Zero sets every entry to 0 in place.
func (m *Dense[T]) Zero() {
	for _, v := range m.data {
		v.SetInt64(0)
	}
}

// SwapRows exchanges rows r and s by swapping their offset-table entries.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) SwapRows(r, s int) error {
	if r < 0 || r >= m.r || s < 0 || s >= m.r {
		return denseErrorf(ctxSwapRows, r, s, ErrOutOfRange)
	}
	if m.rowOff != nil {
		m.rowOff[r], m.rowOff[s] = m.rowOff[s], m.rowOff[r]
	}

	return nil
}

// Float64Rows returns the nearest float64 of every entry, one slice per row.
// Used to hand exact input to the floating-point engine.
func (m *Dense[T]) Float64Rows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = toFloat64(m.data[m.rowOff[i]+j])
		}
	}

	return out
}

// Strings returns every entry in canonical text form ("-7/4", "3"), one slice per row.
func (m *Dense[T]) Strings() [][]string {
	out := make([][]string, m.r)
	for i := range out {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = format(m.data[m.rowOff[i]+j])
		}
	}

	return out
}

// String renders one bracketed row per line with space-separated entries
// ("[1/2 -3 0]"). Diagnostics only.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(format(m.data[m.rowOff[i]+j]))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
