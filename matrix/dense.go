// SPDX-License-Identifier: MIT

// Package matrix - homogeneous matrix storage.
//
// Layout:
//   - One flat row-major slice; element (i, j) lives at i*cols + j.
//   - Every float64 is a legal element. NaN constants carried by a constant
//     map keep their exact bit pattern through Set, At, Copy and Data.
//
// Cost: NewDense O(rows*cols); At and Set O(1); Copy and Data O(rows*cols).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const ctxFromRows = "NewDenseFromRows"

// Dense is a rows×cols matrix of float64 stored row-major.
type Dense struct {
	rows, cols int
	data       []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense returns a rows×cols matrix of zeros.
//
// Errors:
//   - ErrInvalidDimensions when either count is below one.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity, the homogeneous matrix of the
// identity map over n-1 ordinates.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var d int
	for d = 0; d < n; d++ {
		m.data[d*(n+1)] = 1
	}

	return m, nil
}

// NewDenseFromRows copies equally long rows into a new matrix.
//
// Errors:
//   - ErrInvalidDimensions for no rows or an empty first row.
//   - ErrRagged when a row length differs from the first.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	m := &Dense{rows: len(rows), cols: len(rows[0])}
	m.data = make([]float64, 0, m.rows*m.cols)
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), m.cols, ErrRagged)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows: target dimension plus one.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns: source dimension plus one.
func (m *Dense) Cols() int { return m.cols }

// Shape returns Rows and Cols together.
func (m *Dense) Shape() (rows, cols int) { return m.rows, m.cols }

// offset maps (row, col) to the flat index, or fails with ErrOutOfRange
// tagged with the accessor name.
func (m *Dense) offset(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Dense.%s(%d,%d) on %d×%d: %w", method, row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At returns element (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set overwrites element (row, col). On error nothing is written.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Copy returns an independent matrix with the same elements.
func (m *Dense) Copy() *Dense {
	return &Dense{rows: m.rows, cols: m.cols, data: m.Data()}
}

// Data returns the elements in row-major order. The slice is a copy.
func (m *Dense) Data() []float64 {
	return append([]float64(nil), m.data...)
}

// Equal reports whether o has the same shape and elements. NaN equals NaN
// here, otherwise a matrix holding a NaN constant would differ from its copy.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, a := range m.data {
		if b := o.data[i]; a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			return false
		}
	}

	return true
}

// String prints one bracketed line per row, e.g. "[2, 0, 1]\n[0, 0, 1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
