// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math/big"
	"strings"
)

// NewRatDenseFromStrings builds a rational matrix from row literals.
// Accepted entries are anything big.Rat.SetString takes: "3", "-7/4", "0.125",
// "1e-3". Surrounding spaces are ignored. A literal with no rows yields a 0×0
// matrix; use NewRatDense for 0×c.
// Errors: ErrBadShape (ragged rows), ErrParse (bad entry).
// Complexity: O(r*c) parses.
func NewRatDenseFromStrings(rows [][]string) (*RatDense, error) {
	return fromStrings(rows, func(dst *big.Rat, s string) bool {
		_, ok := dst.SetString(s)
		return ok
	})
}

// NewIntDenseFromStrings builds an integer matrix from base-10 row literals.
// A literal with no rows yields a 0×0 matrix; use NewIntDense for 0×c.
// Errors: ErrBadShape (ragged rows), ErrParse (bad or non-integer entry).
func NewIntDenseFromStrings(rows [][]string) (*IntDense, error) {
	return fromStrings(rows, func(dst *big.Int, s string) bool {
		_, ok := dst.SetString(s, 10)
		return ok
	})
}

// fromStrings shapes the literal and runs parse on every trimmed entry.
func fromStrings[T Scalar[T]](rows [][]string, parse func(dst T, s string) bool) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
	}
	m := newDense[T](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			s := strings.TrimSpace(rows[i][j])
			if !parse(m.data[m.rowOff[i]+j], s) {
				return nil, fmt.Errorf("entry (%d,%d) %q: %w", i, j, s, ErrParse)
			}
		}
	}

	return m, nil
}
