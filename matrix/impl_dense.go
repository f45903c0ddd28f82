// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Vec return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the finite-only numeric policy on every public write.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Vec: O(1); Clone: O(r*c); Resize: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxVec    = "Vec"    // method tag used in error wrappers
	ctxSetVec = "SetVec" // method tag used in error wrappers
	ctxRow    = "RawRow" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is an empty matrix with zero rows. It answers Rows()==0 and
// refuses arithmetic with ErrEmptyMatrix until Resize gives it a shape.
type Dense struct {
	r, c int       // row and column counts (0 only for the zero value)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewVector creates an n×1 zero column vector.
// A row vector is obtained with Transpose or NewDense(1, n).
func NewVector(n int) (*Dense, error) {
	return NewDense(n, 1)
}

// NewDenseFrom copies a rectangular 2-D literal into a fresh Dense.
// Implementation:
//   - Stage 1: reject empty outer/inner slices (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch) and non-finite values (ErrNaNInf).
//   - Stage 3: copy rows into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, denseErrorf("NewDenseFrom", i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // one row block per iteration
	}

	return m, nil
}

// NewVectorFrom copies vals into a fresh len(vals)×1 column vector.
func NewVectorFrom(vals []float64) (*Dense, error) {
	m, err := NewVector(len(vals))
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if !isFinite(v) {
			return nil, denseErrorf("NewVectorFrom", i, 0, ErrNaNInf)
		}
	}
	copy(m.data, vals)

	return m, nil
}

// Resize reallocates the matrix to rows×cols and zeroes it.
// Old contents are discarded even when the shape is unchanged.
//
// Errors:
//   - ErrNilMatrix on a nil receiver, ErrInvalidDimensions on non-positive sizes.
func (m *Dense) Resize(rows, cols int) error {
	if m == nil {
		return matrixErrorf("Resize", ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return matrixErrorf("Resize", ErrInvalidDimensions)
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)

	return nil
}

// ResizeVector reallocates the matrix to an n×1 zero column vector.
func (m *Dense) ResizeVector(n int) error { return m.Resize(n, 1) }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no elements (zero value or nil).
func (m *Dense) IsEmpty() bool { return m == nil || m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Notes:
//   - Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the zero value reports ErrOutOfRange for any index.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// vecCoords maps a vector index n to (row, col).
// Row vectors win: a 1×N (including 1×1) matrix is indexed as m(0,n);
// otherwise an N×1 matrix is indexed as m(n,0).
func (m *Dense) vecCoords(n int) (int, int, error) {
	switch {
	case m.IsEmpty():
		return 0, 0, ErrEmptyMatrix
	case m.r == 1:
		return 0, n, nil
	case m.c == 1:
		return n, 0, nil
	default:
		return 0, 0, ErrNotVector
	}
}

// Vec reads element n of a row or column vector.
// MAIN DESCRIPTION:
//   - Vector-style access selecting row or column indexing from the singular dimension.
//
// Behavior highlights:
//   - rows == 1 ⇒ m(0,n) (this includes the 1×1 case, so Vec(0) is its only element).
//   - cols == 1 ⇒ m(n,0).
//
// Errors:
//   - ErrEmptyMatrix, ErrNotVector (neither dimension is 1), ErrOutOfRange.
func (m *Dense) Vec(n int) (float64, error) {
	row, col, err := m.vecCoords(n)
	if err != nil {
		return 0, denseErrorf(ctxVec, n, n, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxVec, row, col, err)
	}

	return m.data[off], nil
}

// SetVec writes element n of a row or column vector (same rules as Vec).
func (m *Dense) SetVec(n int, v float64) error {
	row, col, err := m.vecCoords(n)
	if err != nil {
		return denseErrorf(ctxSetVec, n, n, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSetVec, row, col, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSetVec, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Len returns rows*cols, which is the vector length for 1×N and N×1 shapes.
func (m *Dense) Len() int { return m.r * m.c }

// RawRow returns a copy of row i.
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed twin of Clone used by kernels that need *Dense back.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values formatted with %g into a strings.Builder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
