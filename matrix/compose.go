// SPDX-License-Identifier: MIT

// Package matrix - composition and inversion of homogeneous matrices.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opMul     = "Mul"
	opInverse = "Inverse"
)

// matrixErrorf tags err with the kernel name. err must be non-nil.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul returns the product a×b. As maps, a×b applies b first, then a.
// Implementation:
//   - Stage 1: reject nil operands and a.Cols != b.Rows.
//   - Stage 2: one dot product per result element, summing k in increasing order.
//
// Behavior highlights:
//   - Every term is evaluated, zeros included, so 0·NaN and 0·Inf poison the
//     result just as evaluating the two maps in sequence would.
//   - gonum's Dgemm is not used: it skips zero coefficients.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for an r×n by n×c product.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul, fmt.Errorf("%d×%d by %d×%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	out := &Dense{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	var (
		i, j, k int
		sum     float64
		row     []float64
	)
	for i = 0; i < a.rows; i++ {
		row = a.data[i*a.cols : (i+1)*a.cols]
		for j = 0; j < b.cols; j++ {
			sum = 0
			for k = 0; k < a.cols; k++ {
				sum += row[k] * b.data[k*b.cols+j]
			}
			out.data[i*b.cols+j] = sum
		}
	}

	return out, nil
}

// Inverse returns m⁻¹ for a square m.
// Implementation:
//   - Stage 1: reject nil and rectangular input.
//   - Stage 2: hand the elements to gonum (mat.Dense.Inverse, LU with partial
//     pivoting), so axis swaps with zero diagonals invert fine.
//   - Stage 3: report any gonum failure, ill-conditioning included, as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%d×%d: %w", m.rows, m.cols, ErrNonSquare))
	}

	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(m.rows, m.cols, m.Data())); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return &Dense{rows: m.rows, cols: m.cols, data: inv.RawMatrix().Data}, nil
}
