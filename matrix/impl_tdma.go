// SPDX-License-Identifier: MIT

// Package matrix - tridiagonal solver (Thomas algorithm).
//
// The system solved is
//
//	a_i·x_{i-1} + b_i·x_i + c_i·x_{i+1} = d_i,   i = 1..n
//
// with fixed boundary values x_0 = x_{n+1} = 0. All four coefficient slices
// share the same length n+1; slot 0 is the unused boundary slot, so a caller
// indexes coefficients exactly like the unknowns they multiply.

package matrix

import "fmt"

// TDMA solves a tridiagonal system in O(n) with the Thomas algorithm.
// MAIN DESCRIPTION:
//   - Forward sweep computes c*_i and d*_i; back substitution recovers x.
//
// Implementation:
//   - Stage 1: validate equal lengths (≥ 2) and finite coefficients.
//   - Stage 2: forward sweep
//     i = 1: c*_1 = c_1/b_1, d*_1 = d_1/b_1
//     i > 1: den = b_i − a_i·c*_{i−1}; c*_i = c_i/den; d*_i = (d_i − a_i·d*_{i−1})/den
//   - Stage 3: back substitution x_n = d*_n, x_i = d*_i − c*_i·x_{i+1}.
//   - Stage 4: assemble [0, x_1..x_n, 0] as an (n+2)×1 column vector.
//
// Behavior highlights:
//   - Inputs are only read for the duration of the call; they are never retained.
//   - a_1 and c_n multiply the zero boundary values and do not affect the result.
//
// Errors:
//   - ErrDimensionMismatch (length mismatch), ErrInvalidDimensions (length < 2),
//     ErrNaNInf (non-finite coefficient), ErrSingular (zero or non-finite denominator).
//
// Complexity:
//   - Time O(n), Space O(n).
func TDMA(a, b, c, d []float64) (*Dense, error) {
	size := len(b)
	if len(a) != size || len(c) != size || len(d) != size {
		return nil, matrixErrorf(opTDMA, fmt.Errorf("len(a)=%d len(b)=%d len(c)=%d len(d)=%d: %w",
			len(a), len(b), len(c), len(d), ErrDimensionMismatch))
	}
	if size < 2 {
		return nil, matrixErrorf(opTDMA, ErrInvalidDimensions)
	}
	for i := 1; i < size; i++ {
		if !isFinite(a[i]) || !isFinite(b[i]) || !isFinite(c[i]) || !isFinite(d[i]) {
			return nil, matrixErrorf(opTDMA, fmt.Errorf("row %d: %w", i, ErrNaNInf))
		}
	}

	cStar := make([]float64, size) // slot 0 unused
	dStar := make([]float64, size) // slot 0 unused
	var den float64
	for i := 1; i < size; i++ {
		if i == 1 {
			den = b[i]
		} else {
			den = b[i] - a[i]*cStar[i-1]
		}
		if den == ZeroPivot || !isFinite(den) {
			return nil, matrixErrorf(opTDMA, fmt.Errorf("denominator at row %d is %v: %w", i, den, ErrSingular))
		}
		cStar[i] = c[i] / den
		if i == 1 {
			dStar[i] = d[i] / den
		} else {
			dStar[i] = (d[i] - a[i]*dStar[i-1]) / den
		}
	}

	// x has the two synthetic boundary zeros at slots 0 and size.
	x, err := NewVector(size + 1)
	if err != nil {
		return nil, matrixErrorf(opTDMA, err)
	}
	last := size - 1
	x.data[last] = dStar[last]
	for i := last - 1; i >= 1; i-- {
		x.data[i] = dStar[i] - cStar[i]*x.data[i+1]
	}
	for i, v := range x.data {
		if !isFinite(v) {
			return nil, matrixErrorf(opTDMA, fmt.Errorf("x_%d is %v: %w", i, v, ErrSingular))
		}
	}

	return x, nil
}

// TDMAVectors runs TDMA with the coefficient sequences given as row or column
// vectors (any Matrix). Each vector must hold n+1 values, slot 0 included.
func TDMAVectors(a, b, c, d Matrix) (*Dense, error) {
	vals := make([][]float64, 4)
	for idx, v := range []Matrix{a, b, c, d} {
		s, err := vectorValues(v)
		if err != nil {
			return nil, matrixErrorf(opTDMA, fmt.Errorf("operand %d: %w", idx, err))
		}
		vals[idx] = s
	}

	return TDMA(vals[0], vals[1], vals[2], vals[3])
}

// vectorValues copies a row or column vector into a fresh slice.
func vectorValues(v Matrix) ([]float64, error) {
	if err := ValidateVector(v); err != nil {
		return nil, err
	}
	n := v.Rows() * v.Cols()
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if v.Rows() == 1 {
			out[i], err = v.At(0, i)
		} else {
			out[i], err = v.At(i, 0)
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
