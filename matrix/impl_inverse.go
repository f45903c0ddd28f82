// SPDX-License-Identifier: MIT

// Package matrix - dense inversion by Gauss–Jordan elimination.
//
// Purpose:
//   - Reduce [A | I] to [I | A⁻¹] on a private scratch copy of A.
//   - Repair zero leading pivots with a one-row lookahead swap performed
//     before elimination, then undo the swaps as column interchanges.
//
// Known limitations (kept deliberately, outputs depend on them):
//   - The lookahead only inspects row k+1; it never searches for the best pivot.
//   - The swap test is |a_kk| < threshold on the ORIGINAL entries, so a pivot
//     that only vanishes during elimination is not repaired. Such matrices fail
//     with ErrSingular even when they are invertible.
//   - The threshold (DefaultPivotThreshold = 1e-5) is absolute, not scaled.
//   - Swaps are undone in recording order. For overlapping pairs such as
//     (0,1),(1,2) this is not the inverse permutation of the row swaps.

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns A⁻¹ for a square, non-singular A.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination with the one-step pre-pivot pass.
//
// Implementation:
//   - Stage 1: validate non-nil, non-empty, square; copy A into scratch; result = I.
//   - Stage 2: pre-pivot pass; record every swapped pair in order.
//   - Stage 3: for each pivot column i: scale row i (scratch and result) by 1/s,
//     then eliminate column i from every other row j.
//   - Stage 4: swap result columns (p,q) for every recorded pair, same order.
//   - Stage 5: reject any non-finite entry.
//
// Behavior highlights:
//   - The input is never mutated.
//   - A zero or non-finite pivot aborts with ErrSingular instead of
//     propagating NaN/Inf into the result.
//
// Inputs:
//   - m: square matrix (any Matrix; *Dense avoids one generic copy loop).
//   - opts: WithPivotThreshold to override the swap threshold.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare (matches ErrDimensionMismatch),
//     ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	scratch, err := ToDense(m) // owned copy; the caller's matrix stays intact
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := scratch.r
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	tmp, res := scratch.data, inv.data
	swaps := prePivot(tmp, n, o.pivotThreshold)

	var (
		i, j, k    int
		rowI, rowJ int
		s, w       float64
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		s = tmp[rowI+i]
		if s == ZeroPivot || !isFinite(s) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d is %v: %w", i, s, ErrSingular))
		}
		// Normalise the pivot row in both buffers.
		for k = 0; k < n; k++ {
			tmp[rowI+k] /= s
			res[rowI+k] /= s
		}
		// Drive column i to the identity column.
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			rowJ = j * n
			w = tmp[rowJ+i]
			for k = i; k < n; k++ { // columns left of i are already zero
				tmp[rowJ+k] -= w * tmp[rowI+k]
			}
			for k = 0; k < n; k++ {
				res[rowJ+k] -= w * res[rowI+k]
			}
		}
	}

	for _, sw := range swaps {
		swapCols(res, n, sw.P, sw.Q)
	}

	for idx, v := range res {
		if !isFinite(v) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("entry (%d,%d) is %v: %w", idx/n, idx%n, v, ErrSingular))
		}
	}

	return inv, nil
}

// PivotSwaps reports the row pairs the pre-pivot pass of Inverse would swap
// for m, in the order they are recorded. The input is not mutated.
//
// Errors:
//   - Same validation errors as Inverse (nil, empty, non-square).
func PivotSwaps(m Matrix, opts ...Option) ([]PivotSwap, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf("PivotSwaps", err)
	}
	o := gatherOptions(opts...)
	scratch, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf("PivotSwaps", err)
	}

	return prePivot(scratch.data, scratch.r, o.pivotThreshold), nil
}

// prePivot swaps row k with row k+1 whenever |a[k][k]| < threshold, for
// k = 0..n-2, and returns the swapped pairs in order. a is n×n row-major
// and is modified in place.
func prePivot(a []float64, n int, threshold float64) []PivotSwap {
	var swaps []PivotSwap
	for k := 0; k < n-1; k++ {
		if math.Abs(a[k*n+k]) < threshold {
			swapRows(a, n, k, k+1)
			swaps = append(swaps, PivotSwap{P: k, Q: k + 1})
		}
	}

	return swaps
}

// swapRows exchanges rows p and q of an n-column row-major buffer.
func swapRows(a []float64, n, p, q int) {
	rp, rq := p*n, q*n
	for k := 0; k < n; k++ {
		a[rp+k], a[rq+k] = a[rq+k], a[rp+k]
	}
}

// swapCols exchanges columns p and q of an n×n row-major buffer.
func swapCols(a []float64, n, p, q int) {
	var base int
	for k := 0; k < n; k++ {
		base = k * n
		a[base+p], a[base+q] = a[base+q], a[base+p]
	}
}
