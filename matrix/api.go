// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// InverseOf is an alias for Inverse (Gauss–Jordan, one-step pivoting).
func InverseOf(m Matrix, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// SolveTridiagonal is an alias for TDMA.
func SolveTridiagonal(a, b, c, d []float64) (*Dense, error) { return TDMA(a, b, c, d) }

// ---------- Convenience facades (compositions only) ----------

// MulChain multiplies ms left to right: ((m0·m1)·m2)…
// A single operand is returned as a copy.
func MulChain(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("MulChain", ErrEmptyMatrix)
	}
	acc, err := ToDense(ms[0])
	if err != nil {
		return nil, matrixErrorf("MulChain", err)
	}
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, matrixErrorf("MulChain", err)
		}
	}

	return acc, nil
}

// InverseResidual returns max |(m·m⁻¹ − I)_ij|, a quick quality check for an
// inverse computed by Inverse.
func InverseResidual(m, inv Matrix) (float64, error) {
	prod, err := Mul(m, inv)
	if err != nil {
		return 0, matrixErrorf("InverseResidual", err)
	}
	id, err := IdentityLike(prod)
	if err != nil {
		return 0, matrixErrorf("InverseResidual", err)
	}
	diff, err := Sub(prod, id)
	if err != nil {
		return 0, matrixErrorf("InverseResidual", err)
	}

	var worst float64
	diff.Do(func(_, _ int, v float64) bool {
		if v < 0 {
			v = -v
		}
		if v > worst {
			worst = v
		}
		return true
	})

	return worst, nil
}
