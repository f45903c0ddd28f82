// SPDX-License-Identifier: MIT

// Package sparse - arithmetic over the coordinate list.
//
// Add/Sub/Transpose/Scale work entry by entry and keep exact zeros that
// arise from cancellation. Mul and Inverse delegate to the dense kernels and
// rebuild the result without exact zeros.

package sparse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opInverse   = "Inverse"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// addSub accumulates every entry of a, then sign times every entry of b,
// into a fresh matrix of the same declared shape.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	if err := validate(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opTag, a.rows, a.cols, b.rows, b.cols, matrix.ErrDimensionMismatch)
	}

	res, err := New(a.rows, a.cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	for _, e := range a.entries {
		if err = res.Accumulate(e.Row, e.Col, e.Val); err != nil {
			return nil, fmt.Errorf("%s: %w", opTag, err)
		}
	}
	for _, e := range b.entries {
		if err = res.Accumulate(e.Row, e.Col, sign*e.Val); err != nil {
			return nil, fmt.Errorf("%s: %w", opTag, err)
		}
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmptyMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf (overflow to ±Inf).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Cancelled coordinates stay stored with value 0.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns a × b computed densely; exact-zero products are not stored.
//
// Errors:
//   - matrix.ErrDimensionMismatch when a.Cols() != b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	if err := validate(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%s: %dx%d × %dx%d: %w", opMul, a.rows, a.cols, b.rows, b.cols, matrix.ErrDimensionMismatch)
	}

	da, err := a.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	db, err := b.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	dc, err := matrix.Mul(da, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}

	return FromDense(dc)
}

// Inverse returns a⁻¹ via matrix.Inverse; exact zeros are not stored.
//
// Errors:
//   - matrix.ErrEmptyMatrix when a has no stored entries,
//   - any error of matrix.Inverse (ErrNonSquare, ErrSingular).
func Inverse(a *Matrix, opts ...matrix.Option) (*Matrix, error) {
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	if len(a.entries) == 0 {
		return nil, fmt.Errorf("%s: no stored entries: %w", opInverse, matrix.ErrEmptyMatrix)
	}

	d, err := a.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	inv, err := matrix.Inverse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return FromDense(inv)
}

// Transpose returns aᵀ, keeping the stored entries (and their order).
func Transpose(a *Matrix) (*Matrix, error) {
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	res, err := New(a.cols, a.rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	for _, e := range a.entries {
		res.appendEntry(e.Col, e.Row, e.Val)
	}

	return res, nil
}

// Scale returns alpha·a with the same stored coordinates.
func Scale(a *Matrix, alpha float64) (*Matrix, error) {
	if err := validate(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%s: alpha=%v: %w", opScale, alpha, matrix.ErrNaNInf)
	}
	res := a.clone()
	for i := range res.entries {
		res.entries[i].Val *= alpha
	}

	return res, nil
}
