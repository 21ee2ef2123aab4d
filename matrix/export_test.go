// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the refinement loop.
//
// Purpose:
//   - Expose the tagged outcome of a single column's refinement to matrix_test
//     without widening the production API.

// RefineColumn runs the refinement loop on column k of b in place; columns
// 0..k-1 must already be orthonormal. It reports the outcome tag
// ("accepted"/"flushed"), the residual's squared norm and the pass count.
func RefineColumn(b *Dense, k int, opts ...Option) (outcome string, sq float64, passes int, err error) {
	e := orthoEngine{b: b, o: gatherOptions(opts...), op: "RefineColumn"}
	res, err := e.refine(k)

	return res.outcome.String(), res.sq, res.passes, err
}
