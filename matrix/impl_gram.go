// SPDX-License-Identifier: MIT

package matrix

// Gram writes into b the Gram matrix of the rows of a: b[i][j] = ⟨a_i·, a_j·⟩.
// MAIN DESCRIPTION:
//   - b must be a.Rows()×a.Rows(); b may alias a when a is square.
//
// Implementation:
//   - Stage 1: validate b's shape; panic (ErrDimensionMismatch) otherwise.
//   - Stage 2: aliased output → temporary + Swap.
//   - Stage 3: a.Cols() == 0 → zero matrix.
//   - Stage 4: fill every (i, j) independently, both triangles included.
//
// Behavior highlights:
//   - Symmetry is a consequence of the arithmetic, not enforced by mirroring:
//     b[i][j] and b[j][i] run the same products in the same order, so they agree bitwise.
//
// Complexity:
//   - Time O(m²·n), Space O(1) (O(m²) when aliased).
func Gram(b, a *Dense) {
	mustConform(opGram, ValidateShape(b, a.r, a.r))
	if b == a {
		tmp := newDense(a.r, a.r)
		Gram(tmp, a)
		Swap(b, tmp)

		return
	}
	if a.c == 0 {
		b.Zero()

		return
	}

	m, n := a.r, a.c
	var (
		i, j, k    int
		rowI, rowJ []float64
		sum        float64
	)
	for i = 0; i < m; i++ {
		rowI = a.data[i*n : (i+1)*n]
		for j = 0; j < m; j++ {
			rowJ = a.data[j*n : (j+1)*n]
			sum = rowI[0] * rowJ[0]
			for k = 1; k < n; k++ {
				sum += rowI[k] * rowJ[k]
			}
			b.data[i*m+j] = sum
		}
	}
}
