// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the sparse
// package. The Matrix interface is the common surface that lets kernels accept
// either representation while keeping a flat-slice fast path for *Dense.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Implementations:
//   - *Dense (this package): row-major flat buffer.
//   - *sparse.Matrix: coordinate list with lazy entry allocation.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) for both shipped
// implementations; Clone is O(stored elements).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// PivotSwap records one row interchange (P <-> Q) performed by the pre-pivot
// pass of Inverse. The same pair is later undone as a column interchange.
type PivotSwap struct {
	P int // upper row index (k)
	Q int // lower row index (k+1)
}
