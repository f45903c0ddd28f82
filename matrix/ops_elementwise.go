// SPDX-License-Identifier: MIT
// Package matrix - element-wise numeric comparison.
//
// Purpose:
//   - Centralize tolerance-based comparisons used by tests, the sparse package
//     and the CLI (e.g. checking A·A⁻¹ ≈ I).

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-empty and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Shape mismatches report (false, nil); nil or empty operands return an error.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	return AllClose(a, b, 0, 0)
}

// closeTo is the scalar kernel of AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
