// SPDX-License-Identifier: MIT

// Package matrix - identity and diagonal placement.
//
// Purpose:
//   - SetIdentity mutates an already-shaped matrix in place and returns nothing.
//   - NewIdentity is the pure constructor; callers pick the semantics explicitly.
//   - SetDiag writes a vector along a chosen diagonal band.

package matrix

import "fmt"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// SetIdentity overwrites the receiver's existing shape with the identity
// pattern: 1.0 where i == j, 0.0 elsewhere. It never resizes, so a
// rectangular receiver gets ones on its leading diagonal only.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (the zero value must be resized first).
//
// Complexity: O(r*c).
func (m *Dense) SetIdentity() error {
	if m == nil {
		return matrixErrorf(opIdentity, ErrNilMatrix)
	}
	if m.IsEmpty() {
		return matrixErrorf(opIdentity, ErrEmptyMatrix)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if i == j {
				m.data[base+j] = 1.0
			} else {
				m.data[base+j] = 0.0
			}
		}
	}

	return nil
}

// SetDiag places the entries of vector v along diagonal offset k.
// MAIN DESCRIPTION:
//   - k == 0: main diagonal, (i, i) = v(i).
//   - k  > 0: super-diagonal, (i, i+k) = v(i).
//   - k  < 0: sub-diagonal, (i+|k|, i) = v(i).
//
// Implementation:
//   - Stage 1: validate receiver and vector (row or column vector accepted).
//   - Stage 2: check the last target coordinate is inside the receiver.
//   - Stage 3: write every element; cells off the band are left untouched.
//
// Behavior highlights:
//   - All-or-nothing: a band that does not fit fails before any write.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNotVector, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(len(v)), Space O(len(v)) for the staged values.
func (m *Dense) SetDiag(v Matrix, k int) error {
	if m == nil {
		return matrixErrorf(opDiag, ErrNilMatrix)
	}
	if m.IsEmpty() {
		return matrixErrorf(opDiag, ErrEmptyMatrix)
	}
	if err := ValidateVector(v); err != nil {
		return matrixErrorf(opDiag, err)
	}

	n := v.Rows() * v.Cols()
	rowOff, colOff := 0, k
	if k < 0 {
		rowOff, colOff = -k, 0
	}
	lastRow, lastCol := rowOff+n-1, colOff+n-1
	if lastRow >= m.r || lastCol >= m.c {
		return matrixErrorf(opDiag, fmt.Errorf("k=%d len=%d into %dx%d: %w", k, n, m.r, m.c, ErrOutOfRange))
	}

	// Stage values first so a bad element aborts without partial writes.
	vals, err := vectorValues(v)
	if err != nil {
		return matrixErrorf(opDiag, err)
	}
	for _, x := range vals {
		if !isFinite(x) {
			return matrixErrorf(opDiag, ErrNaNInf)
		}
	}
	for i := 0; i < n; i++ {
		m.data[(rowOff+i)*m.c+colOff+i] = vals[i]
	}

	return nil
}
