// SPDX-License-Identifier: MIT

package exact

import "math/big"

// Reduction summarizes a Gauss–Jordan elimination.
type Reduction struct {
	// Rank is the number of pivot rows.
	Rank int
	// Pivots lists the pivot column of every pivot row, increasing.
	Pivots []int
	// Det is the determinant of the input; nil for a non-square input and
	// 0 when a square input is rank-deficient.
	Det *big.Rat
	// Singular is set for square input whose reduced form is not the identity.
	Singular bool
}

// reduce runs Gauss–Jordan elimination on m in place.
// MAIN DESCRIPTION:
//   - Column by column, the first non-zero entry at or below the current
//     pivot row is swapped up (O(1), determinant sign flips), the row is
//     scaled to a leading 1 (determinant multiplied by the pivot) and the
//     column is cleared in every other row.
//
// Returns rank, pivot columns and the product of swap signs and pivots
// (the determinant when m is square and of full rank).
//
// Complexity:
//   - Time O(r·c·min(r, c)) rational operations.
func reduce(m *RatDense) (rank int, pivots []int, det *big.Rat) {
	det = big.NewRat(1, 1)
	inv, neg := new(big.Rat), new(big.Rat)
	var i, j, col, p int
	for col = 0; col < m.c && rank < m.r; col++ {
		for p = rank; p < m.r && m.Entry(p, col).Sign() == 0; p++ {
		}
		if p == m.r {
			continue
		}
		if p != rank {
			_ = m.SwapRows(p, rank)
			det.Neg(det)
		}
		pr := m.row(rank)
		det.Mul(det, pr[col])
		inv.Inv(pr[col])
		for j = col; j < m.c; j++ {
			pr[j].Mul(pr[j], inv)
		}
		for i = 0; i < m.r; i++ {
			if i == rank {
				continue
			}
			ri := m.row(i)
			if ri[col].Sign() == 0 {
				continue
			}
			neg.Neg(ri[col])
			vecAddMul(ri[col:], ri[col:], neg, pr[col:])
		}
		pivots = append(pivots, col)
		rank++
	}

	return rank, pivots, det
}

// RREF writes into dst the reduced row echelon form of src.
// MAIN DESCRIPTION:
//   - Exact Gauss–Jordan elimination; big.Rat keeps every entry in lowest terms.
//
// Implementation:
//   - Stage 1: dst must have src's shape; panic (ErrDimensionMismatch) otherwise.
//   - Stage 2: copy src into dst (no-op when aliased) and reduce in place.
//
// Behavior highlights:
//   - Row swaps move offset-table entries only, so dst's internal row order
//     may differ from a fresh matrix; every accessor goes through the table.
//
// Complexity:
//   - Time O(r·c·min(r, c)) rational operations, Space O(1) extra.
func RREF(dst, src *RatDense) Reduction {
	mustConform(opRREF, validateShape(dst, src.r, src.c))
	Copy(dst, src)
	rank, pivots, det := reduce(dst)

	red := Reduction{Rank: rank, Pivots: pivots}
	if src.r == src.c {
		red.Singular = rank < src.r
		if red.Singular {
			det.SetInt64(0)
		}
		red.Det = det
	}

	return red
}

// Inverse writes src⁻¹ into dst and returns det(src).
// MAIN DESCRIPTION:
//   - Reduces the augmented matrix [src | I]; src is invertible exactly when
//     the first n pivots land in the first n columns.
//
// Implementation:
//   - Stage 1: src square and dst the same shape; panic otherwise.
//   - Stage 2: build [src | I] and reduce it.
//   - Stage 3: singular → (0, false), dst untouched; else copy the right half.
//
// Behavior highlights:
//   - dst may alias src.
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²).
func Inverse(dst, src *RatDense) (det *big.Rat, ok bool) {
	mustConform(opInverse, validateSquare(src))
	mustConform(opInverse, validateShape(dst, src.r, src.c))
	n := src.r
	aug := newDense[*big.Rat](n, 2*n)
	var i, j int
	for i = 0; i < n; i++ {
		ra, rs := aug.row(i), src.row(i)
		for j = 0; j < n; j++ {
			ra[j].Set(rs[j])
		}
		ra[n+i].SetInt64(1)
	}

	rank, pivots, det := reduce(aug)
	if rank < n || (n > 0 && pivots[n-1] != n-1) {
		return new(big.Rat), false
	}
	for i = 0; i < n; i++ {
		ra, rd := aug.row(i), dst.row(i)
		for j = 0; j < n; j++ {
			rd[j].Set(ra[n+j])
		}
	}

	return det, true
}
