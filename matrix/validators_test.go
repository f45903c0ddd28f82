// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)
	col := MustDense(t, 3, 1)
	var empty matrix.Dense
	var typedNil *matrix.Dense

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateNonEmpty(&empty), matrix.ErrEmptyMatrix)
	require.NoError(t, matrix.ValidateNonEmpty(rect))

	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(sq, sq))

	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonEmpty(&empty), matrix.ErrEmptyMatrix)
	require.NoError(t, matrix.ValidateSquareNonEmpty(sq))

	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(rect, col))
	require.ErrorIs(t, matrix.ValidateMulCompatible(col, rect), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVector(col))
	require.ErrorIs(t, matrix.ValidateVector(sq), matrix.ErrNotVector)
}

// TestValidators_ErrorPriority checks nil beats empty beats shape.
func TestValidators_ErrorPriority(t *testing.T) {
	var empty matrix.Dense
	rect := MustDense(t, 2, 3)

	err := matrix.ValidateBinarySameShape(nil, &empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.ValidateBinarySameShape(&empty, rect)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}
