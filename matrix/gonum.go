// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a gonum *mat.Dense (independent storage).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m.IsEmpty() {
		return nil, matrixErrorf("ToGonum", ErrEmptyMatrix)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a fresh *Dense.
// Non-finite entries are rejected with ErrNaNInf.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if !isFinite(v) {
				return nil, matrixErrorf("FromGonum", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}
