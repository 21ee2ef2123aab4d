// SPDX-License-Identifier: MIT

package exact

import "math/big"

// GSO writes into b the exact Gram–Schmidt orthogonalization of the columns of a.
// MAIN DESCRIPTION:
//   - b_k = a_k − Σ_{i<k} μ_ik·b_i with μ_ik = ⟨a_k, b_i⟩ / ⟨b_i, b_i⟩.
//   - The result is orthogonal, not orthonormal: no square roots are taken.
//
// Implementation:
//   - Stage 1: validate b has a's shape; panic (ErrDimensionMismatch) otherwise.
//   - Stage 2: b == a → temporary + Swap (μ needs the original a_k).
//   - Stage 3: per column: copy a_k, subtract every projection, cache ⟨b_k, b_k⟩.
//
// Behavior highlights:
//   - A projection onto a zero b_i is skipped, so a dependent column
//     leaves b_k == 0 exactly and later columns ignore it.
//   - ⟨b_j, b_k⟩ == 0 exactly for j != k.
//
// Complexity:
//   - Time O(rows·cols²) rational operations, Space O(cols) cached norms.
func GSO(b, a *RatDense) {
	mustConform(opGSO, validateShape(b, a.r, a.c))
	if b == a {
		tmp := newDense[*big.Rat](a.r, a.c)
		GSO(tmp, a)
		Swap(b, tmp)

		return
	}
	if a.r == 0 {
		return
	}

	views := make([][]*big.Rat, a.c) // live columns of b
	norms := make([]*big.Rat, a.c)   // ⟨b_i, b_i⟩
	mu := new(big.Rat)
	var i, j, k int
	for k = 0; k < a.c; k++ {
		ak, bk := a.col(k), b.col(k)
		for j = range bk {
			bk[j].Set(ak[j])
		}
		for i = 0; i < k; i++ {
			if norms[i].Sign() == 0 {
				continue
			}
			mu.Quo(RatDot(ak, views[i]), norms[i])
			mu.Neg(mu)
			RatVecAddMul(bk, bk, mu, views[i])
		}
		views[k] = bk
		norms[k] = RatSquaredNorm(bk)
	}
}
