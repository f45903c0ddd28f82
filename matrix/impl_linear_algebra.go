// SPDX-License-Identifier: MIT
// Package matrix - allocation-fresh kernels over the Matrix interface:
// element-wise Add/Sub, the matrix product, transpose and scalar scaling.
//
// Notes:
//   - Operands are read through flatView. A *Dense lends its backing slice
//     (no copy); any other Matrix is gathered once through At, so every kernel
//     runs a single loop body and both paths give bit-identical results.
//   - Every kernel returns a new *Dense and never writes to its operands.

package matrix

import "fmt"

// ZeroPivot is the sentinel for detecting an exactly-zero pivot.
const ZeroPivot = 0.0

// Operation tags used by matrixErrorf.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opTDMA      = "TDMA"
	opDiag      = "SetDiag"
	opIdentity  = "SetIdentity"
	opToDense   = "ToDense"
)

// flatView returns the row-major values of m. For *Dense this is the live
// backing slice and must be treated as read-only; for any other Matrix it is
// a fresh copy gathered in i→j order.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func flatView(m Matrix) ([]float64, error) {
	if dm, ok := m.(*Dense); ok {
		return dm.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// addSub computes out = a + sign*b, sign being +1 or -1.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape, then take flat views of both operands.
//   - Stage 2: one pass over the r*c values into a fresh result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, err := flatView(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bv, err := flatView(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = av[idx] + sign*bv[idx]
	}

	return res, nil
}

// Add returns the element-wise sum A + B.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference A − B.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop so the inner loop walks both B and the result row
//     with unit stride; each c_ij accumulates its k terms in ascending order.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := flatView(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := flatView(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, inner, p := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j    int
		aik        float64
		outRow, bk []float64
	)
	for i = 0; i < n; i++ {
		outRow = res.data[i*p : (i+1)*p]
		for k = 0; k < inner; k++ {
			aik = av[i*inner+k]
			bk = bv[k*p : (k+1)*p]
			for j = 0; j < p; j++ {
				outRow[j] += aik * bk[j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix: out(j, i) = m(i, j).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := flatView(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[i*cols+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m. Scalar multiplication commutes, so this covers both
// k·M and M·k.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix; ErrNaNInf when alpha is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if !isFinite(alpha) {
		return nil, matrixErrorf(opScale, fmt.Errorf("alpha=%v: %w", alpha, ErrNaNInf))
	}
	src, err := flatView(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range src {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// ToDense materialises any Matrix as a fresh *Dense, a deep copy when m is
// already *Dense. Used by Inverse, the sparse package and the CLI.
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.clone(), nil
	}
	src, err := flatView(m)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}

	// src is already a private copy for non-Dense inputs.
	return &Dense{r: m.Rows(), c: m.Cols(), data: src}, nil
}
