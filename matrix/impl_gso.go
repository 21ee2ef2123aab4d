// SPDX-License-Identifier: MIT

// Package matrix - Gram–Schmidt orthonormalization and QR factorization.
//
// Purpose:
//   - GSO(b, a): columns of b become an orthonormal basis of the span of the
//     columns of a, built column by column.
//   - QR(q, r, a): the same basis in q plus the upper-triangular coefficients in
//     r, so that q·r ≈ a.
//
// Refinement loop (per column k, shared by GSO and QR):
//
//	t = 0
//	for i < k: s = ⟨b_i, b_k⟩; t += s²; b_k -= s·b_i     (QR: r[i][k] = s, or += s after a redo)
//	s = ⟨b_k, b_k⟩; t += s
//	s <  t and s·ε != 0  → redo the pass (cancellation ate the residual)
//	s <  t and s·ε == 0  → flush: s = 0, column is numerically dependent
//	otherwise            → accept s
//
// The column is then scaled by 1/√s, or by 0 when s == 0, so a dependent
// column comes out as the zero vector. The pass count is capped
// (Options.MaxPasses); hitting the cap returns ErrRefinementDiverged.
//
// AI-Hints:
//   - Most columns settle in two passes; the comparator t includes s itself, so
//     any non-zero projection forces at least one redo.
//   - Aliasing (b == a, q == a) costs one temporary of a's shape.

package matrix

import (
	"fmt"
	"math"
)

// residualOutcome tags how the refinement loop of a column ended.
type residualOutcome int

const (
	// residualAccepted: the residual survived the stability test.
	residualAccepted residualOutcome = iota
	// residualFlushed: the residual underflowed relative to ε and was forced to zero.
	residualFlushed
)

// String implements fmt.Stringer for log fields and test messages.
func (r residualOutcome) String() string {
	if r == residualFlushed {
		return "flushed"
	}

	return "accepted"
}

// residual is the result of refining one column.
type residual struct {
	outcome residualOutcome
	sq      float64 // squared norm of the residual; 0 when flushed
	passes  int     // number of passes run, >= 1
}

// orthoEngine holds the state shared by every column of one GSO/QR call.
// r is nil for plain GSO.
type orthoEngine struct {
	b  *Dense
	r  *Dense
	o  Options
	op string
}

// colDot returns ⟨b_i, b_k⟩ walking both columns with stride c.
func colDot(b *Dense, i, k int) float64 {
	var s float64
	for j, off := 0, 0; j < b.r; j, off = j+1, off+b.c {
		s += b.data[off+i] * b.data[off+k]
	}

	return s
}

// colSubScaled performs b_k -= s·b_i.
func colSubScaled(b *Dense, k int, s float64, i int) {
	for j, off := 0, 0; j < b.r; j, off = j+1, off+b.c {
		b.data[off+k] -= s * b.data[off+i]
	}
}

// colScale performs b_k *= s.
func colScale(b *Dense, k int, s float64) {
	for j, off := 0, 0; j < b.r; j, off = j+1, off+b.c {
		b.data[off+k] *= s
	}
}

// colCopy copies column k of src into column k of dst (same shape).
func colCopy(dst, src *Dense, k int) {
	for j, off := 0, 0; j < src.r; j, off = j+1, off+src.c {
		dst.data[off+k] = src.data[off+k]
	}
}

// refine runs the refinement loop for column k of e.b against columns 0..k-1.
// MAIN DESCRIPTION:
//   - Bounded iteration with an explicit pass counter and a tagged outcome.
//
// Implementation:
//   - Stage 1: project out every prior column, accumulating t = Σs² (+ r[i][k]).
//   - Stage 2: s = ‖b_k‖², t += s.
//   - Stage 3: stability test → accept, flush, or next pass.
//
// Behavior highlights:
//   - r[i][k] is assigned on the first pass and incremented on later passes:
//     a later coefficient corrects the first one.
//
// Errors:
//   - ErrRefinementDiverged when maxPasses passes did not settle.
//
// Complexity:
//   - Time O(passes·k·rows), Space O(1).
func (e *orthoEngine) refine(k int) (residual, error) {
	b, r := e.b, e.r
	orig := true
	var s, t float64
	var i, pass int
	for pass = 1; pass <= e.o.maxPasses; pass++ {
		t = 0
		for i = 0; i < k; i++ {
			s = colDot(b, i, k)
			t += s * s
			colSubScaled(b, k, s, i)
			if r != nil {
				if orig {
					r.data[i*r.c+k] = s
				} else {
					r.data[i*r.c+k] += s
				}
			}
		}
		s = colDot(b, k, k)
		t += s

		if !(s < t) {
			return residual{outcome: residualAccepted, sq: s, passes: pass}, nil
		}
		if s*e.o.eps == 0 {
			e.o.logger.Debug().Str("op", e.op).Int("col", k).Int("pass", pass).
				Msg("residual flushed to zero")

			return residual{outcome: residualFlushed, sq: 0, passes: pass}, nil
		}
		orig = false
		e.o.logger.Debug().Str("op", e.op).Int("col", k).Int("pass", pass).
			Float64("residual", s).Float64("removed", t).
			Msg("re-orthogonalizing column")
	}

	return residual{}, fmt.Errorf("column %d after %d passes: %w", k, e.o.maxPasses, ErrRefinementDiverged)
}

// run orthonormalizes every column of a into e.b (distinct buffers, a.r > 0).
func (e *orthoEngine) run(a *Dense) error {
	var (
		k         int
		res       residual
		norm, inv float64
		err       error
	)
	for k = 0; k < a.c; k++ {
		colCopy(e.b, a, k)
		res, err = e.refine(k)
		if err != nil {
			return matrixErrorf(e.op, err)
		}
		norm = math.Sqrt(res.sq)
		if e.r != nil {
			e.r.data[k*e.r.c+k] = norm
		}
		inv = 0
		if norm != 0 {
			inv = 1 / norm
		}
		colScale(e.b, k, inv)
	}

	return nil
}

// GSO writes into b an orthonormal basis built from the columns of a.
// MAIN DESCRIPTION:
//   - Classical Gram–Schmidt with adaptive re-orthogonalization; a column whose
//     residual collapses numerically is left as the zero vector.
//
// Implementation:
//   - Stage 1: validate b has a's shape; panic (ErrDimensionMismatch) otherwise.
//   - Stage 2: b == a → compute into a temporary, Swap into b.
//   - Stage 3: rows == 0 → nothing to do.
//   - Stage 4: per column: copy, refine, normalize.
//
// Behavior highlights:
//   - For every j != k: |⟨b_j, b_k⟩| is O(ε); every non-zero column has unit norm.
//   - The aliased form leaves b untouched when an error is returned.
//
// Inputs:
//   - b: output, same shape as a (may be a).
//   - a: input basis (columns).
//   - opts: WithEpsilon, WithMaxPasses, WithLogger.
//
// Errors:
//   - ErrRefinementDiverged (wrapped with "GSO").
//
// Complexity:
//   - Time O(passes·rows·cols²), Space O(1) (O(rows·cols) when aliased).
func GSO(b, a *Dense, opts ...Option) error {
	mustConform(opGSO, ValidateSameShape(b, a))
	if b == a {
		tmp := newDense(a.r, a.c)
		if err := GSO(tmp, a, opts...); err != nil {
			return err
		}
		Swap(b, tmp)

		return nil
	}
	if a.r == 0 {
		return nil
	}

	e := orthoEngine{b: b, o: gatherOptions(opts...), op: opGSO}

	return e.run(a)
}

// QR factors a into an orthonormal q and an upper-triangular r with q·r ≈ a.
// MAIN DESCRIPTION:
//   - q is exactly what GSO(q, a) produces; r collects the projection
//     coefficients of every refinement pass and the residual norms on its
//     diagonal.
//
// Implementation:
//   - Stage 1: validate q ~ a and r is cols×cols; q and r must be distinct.
//   - Stage 2: outputs aliasing a are computed into temporaries and swapped in.
//   - Stage 3: rows == 0 → nothing to do.
//   - Stage 4: per column: copy, refine (accumulating r[i][k]), r[k][k] = √s, normalize.
//
// Behavior highlights:
//   - Entries of r below the diagonal are never written; pre-zero r if needed.
//     An r that aliases a is replaced by a fresh matrix, so its lower triangle is zero.
//   - r[k][k] == 0 marks a numerically dependent column (q's column k is zero).
//
// Errors:
//   - ErrRefinementDiverged (wrapped with "QR").
//
// Complexity:
//   - Time O(passes·rows·cols²), Space O(1) (plus temporaries when aliased).
func QR(q, r, a *Dense, opts ...Option) error {
	mustConform(opQR, ValidateSameShape(q, a))
	mustConform(opQR, ValidateShape(r, a.c, a.c))
	if q == r {
		mustConform(opQR, validatorErrorf("q and r must be distinct", ErrDimensionMismatch))
	}
	if q == a || r == a {
		qOut, rOut := q, r
		if q == a {
			qOut = newDense(a.r, a.c)
		}
		if r == a {
			rOut = newDense(a.c, a.c)
		}
		if err := QR(qOut, rOut, a, opts...); err != nil {
			return err
		}
		if qOut != q {
			Swap(q, qOut)
		}
		if rOut != r {
			Swap(r, rOut)
		}

		return nil
	}
	if a.r == 0 {
		return nil
	}

	e := orthoEngine{b: q, r: r, o: gatherOptions(opts...), op: opQR}

	return e.run(a)
}
