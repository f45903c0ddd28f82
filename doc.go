// Package lvlalg is a small dense and sparse linear-algebra kernel for
// float64 matrices.
//
// 🚀 What is inside?
//
//	• Dense matrices: row-major storage, bounds-checked access, vector views
//	• Kernels: add, subtract, multiply, scale, transpose, identity, diagonals
//	• Inversion: Gauss–Jordan elimination with one-step pre-pivoting
//	• Tridiagonal systems: the Thomas algorithm (TDMA) in O(n)
//	• Sparse matrices: coordinate lists (val, row, col) with lazy entries
//
// ✨ Guarantees
//
//   - Every failure is an error wrapping a matrix.Err* sentinel; nothing panics
//     on bad input and nothing terminates the process.
//   - Kernels never mutate their operands and return fresh results.
//   - Deterministic loop orders; no hidden global state.
//
// Packages:
//
//	matrix/   - Dense, the Matrix interface, kernels, Inverse, TDMA, display
//	sparse/   - coordinate-list Matrix; Mul and Inverse delegate to matrix
//	cmd/lvlalg - command-line front end over matrix documents (YAML/TOML/JSON)
//	examples/ - runnable scenarios (heat conduction, resistor networks)
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 1}})
//	inv, _ := matrix.Inverse(A)
//	_ = matrix.ShowGorgeous(os.Stdout, inv)
//
//	┌ -0.33	0.67 ┐
//	└ 0.67	-0.33 ┘
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
