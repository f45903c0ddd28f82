// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	sum.Do(func(i, j int, v float64) bool {
		require.Equal(t, 7.0, v, "(%d,%d)", i, j)
		return true
	})
}

func TestAddSub_RoundTrip(t *testing.T) {
	a := MustDense(t, 4, 3)
	b := MustDense(t, 4, 3)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	RequireClose(t, a, back, 1e-12)
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Succeeds(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := MustFrom(t, [][]float64{{58, 64}, {139, 154}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, want, got, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityNeutral(t *testing.T) {
	a := MustDense(t, 3, 3)
	RandomFill(t, a, 7)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	RequireClose(t, a, left, 0)
	RequireClose(t, a, right, 0)
}

func TestTranspose_Involution(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, 6.0, MustAt(t, at, 2, 1))

	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	ok, err := matrix.Equal(a, att)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTranspose_RowVectorBecomesColumn(t *testing.T) {
	row := MustFrom(t, [][]float64{{1, 2, 3}})
	col, err := matrix.T(row)
	require.NoError(t, err)
	v, err := col.Vec(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

func TestScale(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, -2}, {0.5, 4}})
	got, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	RequireClose(t, MustFrom(t, [][]float64{{2, -4}, {1, 8}}), got, 0)

	_, err = matrix.Scale(a, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestKernels_DoNotMutateOperands(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	snap := a.Clone()

	_, err := matrix.Add(a, a)
	require.NoError(t, err)
	_, err = matrix.Mul(a, a)
	require.NoError(t, err)
	_, err = matrix.Transpose(a)
	require.NoError(t, err)
	_, err = matrix.Inverse(a)
	require.NoError(t, err)

	ok, err := matrix.Equal(snap, a)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestKernels_FallbackMatchesFastPath ensures that a wrapper hiding the
// concrete type produces the same results as the bare Dense.
func TestKernels_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 3)
	b := MustDense(t, 3, 3)
	RandomFill(t, a, 11)
	RandomFill(t, b, 12)

	type kernel func(x, y matrix.Matrix) (*matrix.Dense, error)
	for name, k := range map[string]kernel{
		"Add": matrix.Add,
		"Sub": matrix.Sub,
		"Mul": matrix.Mul,
	} {
		fast, err := k(a, b)
		require.NoError(t, err, name)
		slow, err := k(hide{a}, b)
		require.NoError(t, err, name)
		RequireClose(t, fast, slow, 0)
	}

	fastT, err := matrix.Transpose(a)
	require.NoError(t, err)
	slowT, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	RequireClose(t, fastT, slowT, 0)

	fastS, err := matrix.Scale(a, -3)
	require.NoError(t, err)
	slowS, err := matrix.Scale(hide{a}, -3)
	require.NoError(t, err)
	RequireClose(t, fastS, slowS, 0)
}

func TestToDense_Copies(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}})
	d, err := matrix.ToDense(a)
	require.NoError(t, err)
	MustSet(t, d, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	d2, err := matrix.ToDense(hide{a})
	require.NoError(t, err)
	RequireClose(t, a, d2, 0)
}

func TestMulChainAndFacades(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	got, err := matrix.MulChain(a, id, id)
	require.NoError(t, err)
	RequireClose(t, a, got, 0)

	_, err = matrix.MulChain()
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	sum, err := matrix.Sum(a, z)
	require.NoError(t, err)
	RequireClose(t, a, sum, 0)

	diff, err := matrix.Diff(a, a)
	require.NoError(t, err)
	RequireClose(t, z, diff, 0)
}
