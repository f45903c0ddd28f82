// Package sparse provides a coordinate-list (COO) sparse matrix built on top
// of the lvlalg/matrix dense kernels.
//
// A *sparse.Matrix keeps declared dimensions and an insertion-ordered list of
// (value, row, col) entries. Writes go through Update (or Set/Accumulate),
// which appends a zero-valued entry for an unseen coordinate before applying
// the write, so entries holding exact zeros can exist. A coordinate index
// guarantees a coordinate is stored at most once.
//
// Multiplication and inversion convert to matrix.Dense, compute there and
// convert back, dropping exact zeros. *sparse.Matrix implements matrix.Matrix,
// so it can also be passed directly to the dense kernels.
//
//	A, _ := sparse.New(3, 3)
//	_ = A.SetIdentity()
//	_ = A.Set(0, 1, 2)
//	_ = A.Set(1, 0, 2)
//	B, err := sparse.Inverse(A)
//	C, err := sparse.Mul(A, B) // identity, exact zeros dropped
package sparse
