// SPDX-License-Identifier: MIT
package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/sparse"
	"github.com/stretchr/testify/require"
)

func TestDenseRoundTrip(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]float64{
		{0, 1.5, 0},
		{2, 0, 0},
		{0, 0, -3},
	})
	require.NoError(t, err)

	s, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len(), "exact zeros are not stored")
	require.Equal(t, []sparse.Entry{
		{Val: 1.5, Row: 0, Col: 1},
		{Val: 2, Row: 1, Col: 0},
		{Val: -3, Row: 2, Col: 2},
	}, s.Entries(), "row-major order")

	back, err := s.ToDense()
	require.NoError(t, err)
	ok, err := matrix.Equal(d, back)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFromDense_AcceptsAnyMatrix(t *testing.T) {
	src := mustSparse(t, 2, 3, [3]float64{1, 2, 4})
	s, err := sparse.FromDense(src)
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{{Val: 4, Row: 1, Col: 2}}, s.Entries())

	_, err = sparse.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestToDense_UsesDeclaredShape(t *testing.T) {
	s := mustSparse(t, 4, 5, [3]float64{0, 0, 1})
	d, err := s.ToDense()
	require.NoError(t, err)
	require.Equal(t, 4, d.Rows())
	require.Equal(t, 5, d.Cols())

	var empty sparse.Matrix
	_, err = empty.ToDense()
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestAddSub(t *testing.T) {
	a := mustSparse(t, 2, 2, [3]float64{0, 0, 1}, [3]float64{1, 1, 2})
	b := mustSparse(t, 2, 2, [3]float64{0, 0, 1}, [3]float64{0, 1, 3})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	d, err := sum.ToDense()
	require.NoError(t, err)
	requireDenseEqual(t, [][]float64{{2, 3}, {0, 2}}, d, 0)

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, diff.Len(), "cancelled (0,0) stays stored")
	v, err := diff.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
	v, err = diff.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, -3.0, v)

	_, err = sparse.Add(a, mustSparse(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = sparse.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_MatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := mustSparse(t, 4, 3)
	b := mustSparse(t, 3, 5)
	for k := 0; k < 6; k++ {
		require.NoError(t, a.Set(rng.Intn(4), rng.Intn(3), float64(rng.Intn(9)+1)))
		require.NoError(t, b.Set(rng.Intn(3), rng.Intn(5), float64(rng.Intn(9)+1)))
	}

	got, err := sparse.Mul(a, b)
	require.NoError(t, err)

	da, err := a.ToDense()
	require.NoError(t, err)
	db, err := b.ToDense()
	require.NoError(t, err)
	want, err := matrix.Mul(da, db)
	require.NoError(t, err)

	gotDense, err := got.ToDense()
	require.NoError(t, err)
	ok, err := matrix.Equal(want, gotDense)
	require.NoError(t, err)
	require.True(t, ok)
	got.Each(func(e sparse.Entry) bool {
		require.NotZero(t, e.Val, "product entries are pruned")
		return true
	})

	_, err = sparse.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse(t *testing.T) {
	a := mustSparse(t, 3, 3)
	require.NoError(t, a.SetIdentity())
	require.NoError(t, a.Set(0, 1, 2))
	require.NoError(t, a.Set(1, 0, 2))

	inv, err := sparse.Inverse(a)
	require.NoError(t, err)

	prod, err := sparse.Mul(a, inv)
	require.NoError(t, err)
	d, err := prod.ToDense()
	require.NoError(t, err)
	requireDenseEqual(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, d, 1e-9)

	// the untouched (2,2) block inverts to exactly 1; (0,2) stays absent
	v, err := inv.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	inv.Each(func(e sparse.Entry) bool {
		require.False(t, e.Row == 0 && e.Col == 2)
		return true
	})
}

func TestInverse_Errors(t *testing.T) {
	empty := mustSparse(t, 3, 3)
	_, err := sparse.Inverse(empty)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	sing := mustSparse(t, 2, 2, [3]float64{0, 0, 1}, [3]float64{0, 1, 2}, [3]float64{1, 0, 2}, [3]float64{1, 1, 4})
	_, err = sparse.Inverse(sing)
	require.ErrorIs(t, err, matrix.ErrSingular)

	rect := mustSparse(t, 2, 3, [3]float64{0, 0, 1})
	_, err = sparse.Inverse(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestTransposeAndScale(t *testing.T) {
	a := mustSparse(t, 2, 3, [3]float64{0, 2, 5}, [3]float64{1, 0, -1})
	at, err := sparse.Transpose(a)
	require.NoError(t, err)
	r, c := at.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	v, err := at.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	scaled, err := sparse.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{{Val: -10, Row: 0, Col: 2}, {Val: 2, Row: 1, Col: 0}}, scaled.Entries())
	v, err = a.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v, "operand untouched")
}

func TestSparse_PlugsIntoDenseKernels(t *testing.T) {
	s := mustSparse(t, 2, 2, [3]float64{0, 0, 2}, [3]float64{1, 1, 4})
	inv, err := matrix.Inverse(s)
	require.NoError(t, err)
	requireDenseEqual(t, [][]float64{{0.5, 0}, {0, 0.25}}, inv, 0)
}
