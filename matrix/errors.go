// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// and sparse packages. All kernels MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("Op: %w", ErrX) at the
// detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty -> shape/index -> dimension mismatch -> numeric (singular, NaN/Inf).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Vec) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch so both sentinels match via errors.Is.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrNotVector signals that vector-style access was attempted on a matrix
	// with neither a single row nor a single column.
	ErrNotVector = fmt.Errorf("matrix: not a vector: %w", ErrDimensionMismatch)

	// ErrSingular is returned when elimination meets a zero pivot that the
	// one-step pivoting could not repair, or when the result is not finite.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEmptyMatrix signals an operation that needs content ran on an empty
	// matrix (zero-row Dense or a sparse matrix with no stored entries).
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, SetVec, ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
