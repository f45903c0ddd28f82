// Package matrix is the dense half of the lvlalg kernel.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     vector-style Vec/SetVec access.
//   - Allocation-fresh kernels over the Matrix interface: Add, Sub, Mul,
//     Scale, Transpose (a *Dense operand unlocks a flat-slice fast path).
//   - Inverse: Gauss–Jordan elimination with a one-step pre-pivot pass and
//     column-swap pivot undo.
//   - TDMA: the Thomas algorithm for tridiagonal systems.
//   - Show / ShowGorgeous display routines and gonum interop.
//
// Every failure is reported as an error wrapping one of the sentinels in
// errors.go; nothing in this package panics on bad input or terminates the
// process.
//
//	A, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 1}})
//	inv, err := matrix.Inverse(A)   // [[-1/3, 2/3], [2/3, -1/3]]
//	I, err := matrix.Mul(A, inv)    // ≈ identity
//
// See the sparse package for the coordinate-list representation.
package matrix
