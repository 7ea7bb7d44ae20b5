// SPDX-License-Identifier: MIT

// Package matrix - structural queries on homogeneous matrices.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// IsAffine reports whether the last row is exactly [0,…,0,1].
// No tolerance: a 1e-300 residue in the last row makes the map projective.
func (m *Dense) IsAffine() bool {
	last := m.data[(m.rows-1)*m.cols:]
	for _, v := range last[:m.cols-1] {
		if v != 0 {
			return false
		}
	}

	return last[m.cols-1] == 1
}

// IsIdentity reports whether m is square with exact ones on the diagonal and
// exact zeros elsewhere.
func (m *Dense) IsIdentity() bool { return m.IsIdentityTol(0) }

// IsIdentityTol is IsIdentity with an absolute tolerance per element,
// compared with floats.EqualWithinAbs. A NaN element never matches.
func (m *Dense) IsIdentityTol(eps float64) bool {
	if m.rows != m.cols {
		return false
	}
	var want float64
	for k, v := range m.data {
		want = 0
		if k/m.cols == k%m.cols {
			want = 1
		}
		if !floats.EqualWithinAbs(v, want, eps) {
			return false
		}
	}

	return true
}

// CopySubMatrix writes the numRows×numCols block of m starting at
// (srcRow, srcCol) into dest starting at (dstRow, dstCol). Elements of dest
// outside the block keep their values. Nothing is written on error.
//
// Errors:
//   - ErrNilMatrix when dest is nil.
//   - ErrOutOfRange for a negative size or a block leaving either matrix.
//
// Complexity:
//   - Time O(numRows*numCols), Space O(1).
func (m *Dense) CopySubMatrix(srcRow, srcCol, numRows, numCols, dstRow, dstCol int, dest *Dense) error {
	const op = "CopySubMatrix"
	if dest == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if !fits(srcRow, srcCol, numRows, numCols, m) {
		return matrixErrorf(op, fmt.Errorf("source block (%d,%d)+%d×%d in %d×%d: %w", srcRow, srcCol, numRows, numCols, m.rows, m.cols, ErrOutOfRange))
	}
	if !fits(dstRow, dstCol, numRows, numCols, dest) {
		return matrixErrorf(op, fmt.Errorf("destination block (%d,%d)+%d×%d in %d×%d: %w", dstRow, dstCol, numRows, numCols, dest.rows, dest.cols, ErrOutOfRange))
	}
	var i, s, d int
	for i = 0; i < numRows; i++ {
		s = (srcRow+i)*m.cols + srcCol
		d = (dstRow+i)*dest.cols + dstCol
		copy(dest.data[d:d+numCols], m.data[s:s+numCols])
	}

	return nil
}

// fits reports whether the block (row, col)+numRows×numCols lies inside m.
func fits(row, col, numRows, numCols int, m *Dense) bool {
	return numRows >= 0 && numCols >= 0 && row >= 0 && col >= 0 &&
		row+numRows <= m.rows && col+numCols <= m.cols
}
