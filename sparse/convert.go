// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
)

// FromDense builds a sparse matrix holding every entry of m that is not
// exactly 0.0 (no tolerance), visited in row-major order. Explicit zeros are
// therefore not representable after a round trip; that is expected.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmptyMatrix.
//
// Complexity: O(r*c).
func FromDense(m matrix.Matrix) (*Matrix, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	res, err := New(m.Rows(), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	// Fast path: the dense visitor avoids a bounds check per element.
	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if v != 0 {
				res.appendEntry(i, j, v)
			}
			return true
		})

		return res, nil
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("FromDense: %w", err)
			}
			if v != 0 {
				res.appendEntry(i, j, v)
			}
		}
	}

	return res, nil
}

// ToDense expands the entry list into a zero-initialised dense grid sized by
// the declared dimensions. Entries are applied in list order with absolute
// assignment.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmptyMatrix (no declared shape).
//
// Complexity: O(r*c + nnz).
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	if err := validate(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	d, err := matrix.NewDense(m.rows, m.cols)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for _, e := range m.entries {
		if err = d.Set(e.Row, e.Col, e.Val); err != nil {
			return nil, fmt.Errorf("ToDense: %w", err)
		}
	}

	return d, nil
}

// appendEntry stores a coordinate known to be absent and in bounds.
func (m *Matrix) appendEntry(row, col int, v float64) {
	m.index[coord{row, col}] = len(m.entries)
	m.entries = append(m.entries, Entry{Val: v, Row: row, Col: col})
}

// validate rejects nil receivers and matrices without a declared shape.
func validate(m *Matrix) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if m.rows == 0 || m.cols == 0 {
		return matrix.ErrEmptyMatrix
	}

	return nil
}
