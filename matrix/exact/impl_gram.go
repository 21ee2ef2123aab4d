// SPDX-License-Identifier: MIT

// Package exact - integer lattice invariants.
//
// Purpose:
//   - Gram: pairwise inner products of the rows of an integer basis.
//   - Determinant: fraction-free (Bareiss) elimination over the integers.
//   - Covolume: √det(B·Bᵀ), the volume of a fundamental domain of the
//     lattice spanned by the rows of B.

package exact

import (
	"math/big"
)

// Gram writes into b the Gram matrix of the rows of a: b[i][j] = ⟨a_i·, a_j·⟩.
// b must be a.Rows()×a.Rows(); it may alias a when a is square.
// a.Cols() == 0 yields the zero matrix.
// Complexity: O(m²·n) integer operations.
func Gram(b, a *IntDense) {
	mustConform(opGram, validateShape(b, a.r, a.r))
	if b == a {
		tmp := newDense[*big.Int](a.r, a.r)
		Gram(tmp, a)
		Swap(b, tmp)

		return
	}
	if a.c == 0 {
		b.Zero()

		return
	}

	prod := new(big.Int)
	var i, j, k int
	for i = 0; i < a.r; i++ {
		ri := a.row(i)
		for j = 0; j < a.r; j++ {
			rj := a.row(j)
			s := b.Entry(i, j)
			s.SetInt64(0)
			for k = range ri {
				s.Add(s, prod.Mul(ri[k], rj[k]))
			}
		}
	}
}

// Determinant returns det(a) computed with Bareiss fraction-free elimination.
// MAIN DESCRIPTION:
//   - Every intermediate value is itself a minor of a, so all divisions are
//     exact and entries stay integral.
//
// Implementation:
//   - Stage 1: a must be square; panic (ErrDimensionMismatch) otherwise.
//   - Stage 2: eliminate on a clone; a zero pivot is replaced by the first
//     non-zero entry below it (O(1) row swap, sign flip); none → det 0.
//   - Stage 3: m[i][j] = (m[i][j]·m[k][k] − m[i][k]·m[k][j]) / prev.
//
// Behavior highlights:
//   - The 0×0 determinant is 1.
//
// Complexity:
//   - Time O(n³) big-integer operations, Space O(n²).
func Determinant(a *IntDense) *big.Int {
	mustConform(opDeterminant, validateSquare(a))
	n := a.r
	if n == 0 {
		return big.NewInt(1)
	}
	m := a.Clone()
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	negate := false
	var i, j, k, p int
	for k = 0; k < n-1; k++ {
		if m.Entry(k, k).Sign() == 0 {
			for p = k + 1; p < n && m.Entry(p, k).Sign() == 0; p++ {
			}
			if p == n {
				return new(big.Int)
			}
			_ = m.SwapRows(k, p)
			negate = !negate
		}
		pivot := m.Entry(k, k)
		rk := m.row(k)
		for i = k + 1; i < n; i++ {
			ri := m.row(i)
			for j = k + 1; j < n; j++ {
				t1.Mul(ri[j], pivot)
				t2.Mul(ri[k], rk[j])
				ri[j].Quo(t1.Sub(t1, t2), prev)
			}
		}
		prev.Set(pivot)
	}
	det := new(big.Int).Set(m.Entry(n-1, n-1))
	if negate {
		det.Neg(det)
	}

	return det
}

// Covolume returns √det(a·aᵀ) rounded to the nearest float64.
// The Gram determinant is exact; only the final square root is inexact, taken
// with big.Float at a precision that covers the integer.
// Rows that are linearly dependent give 0; zero rows give 1.
func Covolume(a *IntDense) float64 {
	g := newDense[*big.Int](a.r, a.r)
	Gram(g, a)
	det := Determinant(g)
	if det.Sign() <= 0 {
		return 0
	}
	prec := uint(det.BitLen() + 64)
	f := new(big.Float).SetPrec(prec).SetInt(det)
	f.Sqrt(f)
	v, _ := f.Float64()

	return v
}
