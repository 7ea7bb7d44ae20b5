// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Constructors, accessors and kernels return these values, possibly wrapped
// with the failing call; match them with errors.Is.

package matrix

import "errors"

// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> singular.

var (
	// ErrInvalidDimensions is returned for a row or column count below one.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At, Set and CopySubMatrix for an element
	// or window outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned by Mul when the left column count
	// differs from the right row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare is returned by Inverse for a rectangular matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix is returned when a *Dense argument is nil.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged is returned by NewDenseFromRows when rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrSingular is returned by Inverse when no reliable inverse exists.
	ErrSingular = errors.New("matrix: singular matrix")
)
