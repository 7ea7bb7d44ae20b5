// SPDX-License-Identifier: MIT

// Package ct - matrix-backed transforms and the affine specialization point.
//
// Purpose:
//   - NewAffineTransform decides, once and at construction, which concrete
//     variant represents a matrix: identity, 1-D scale/offset, 1-D constant,
//     2-D affine, or the general (possibly projective) MatrixTransform.
//   - Every variant keeps a private copy of its coefficients.

package ct

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geoct/matrix"
)

// NewAffineTransform wraps a matrix describing a map in homogeneous coordinates.
// Implementation:
//   - Stage 1: reject nil; dimSource = Cols-1, dimTarget = Rows-1.
//   - Stage 2: for affine matrices specialize by shape:
//     identity → LinearTransform1D(1,0) / AffineTransform2D / IdentityTransform,
//     1→1 → ConstantTransform1D when the scale is exactly zero, else LinearTransform1D,
//     2→2 → AffineTransform2D.
//   - Stage 3: anything else becomes a MatrixTransform.
//
// Behavior highlights:
//   - The matrix is copied; later edits by the caller have no effect.
//   - Non-affine matrices are accepted and evaluated projectively (division
//     by the homogeneous ordinate); they never gain the 1-D/2-D capability.
//
// Errors:
//   - ErrIllegalArgument wrapping matrix.ErrNilMatrix for a nil matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewAffineTransform(m *matrix.Dense) (MathTransform, error) {
	if m == nil {
		return nil, ctErrorf(opAffine, fmt.Errorf("%w: %w", ErrIllegalArgument, matrix.ErrNilMatrix))
	}
	rows, cols := m.Shape()
	elt := m.Data()
	dimS, dimT := cols-1, rows-1

	if m.IsAffine() {
		if dimS == dimT && m.IsIdentity() {
			switch dimS {
			case 1:
				return &LinearTransform1D{scale: 1, offset: 0}, nil
			case 2:
				return &AffineTransform2D{m00: 1, m11: 1}, nil
			default:
				return &IdentityTransform{dim: dimS}, nil
			}
		}
		switch {
		case dimS == 1 && dimT == 1:
			if elt[0] == 0 {
				return &ConstantTransform1D{offset: elt[1]}, nil
			}
			return &LinearTransform1D{scale: elt[0], offset: elt[1]}, nil
		case dimS == 2 && dimT == 2:
			return &AffineTransform2D{
				m00: elt[0], m01: elt[1], m02: elt[2],
				m10: elt[3], m11: elt[4], m12: elt[5],
			}, nil
		}
	}

	return &MatrixTransform{numRow: rows, numCol: cols, elt: elt, affine: m.IsAffine()}, nil
}

// NewIdentityTransform returns the identity over dim ordinates, specialized
// like NewAffineTransform (1-D and 2-D identities carry their capabilities).
func NewIdentityTransform(dim int) (MathTransform, error) {
	if dim < 0 {
		return nil, ctErrorf(opAffine, fmt.Errorf("dim=%d: %w", dim, ErrIllegalArgument))
	}
	switch dim {
	case 1:
		return &LinearTransform1D{scale: 1}, nil
	case 2:
		return &AffineTransform2D{m00: 1, m11: 1}, nil
	}

	return &IdentityTransform{dim: dim}, nil
}

// linearEqual compares two transforms through their matrices.
func linearEqual(a LinearTransform, other MathTransform) bool {
	b, ok := other.(LinearTransform)
	if !ok {
		return false
	}
	if a.DimSource() != b.DimSource() || a.DimTarget() != b.DimTarget() {
		return false
	}

	return a.Matrix().Equal(b.Matrix())
}

// linearInverse inverts a square matrix and wraps the result, pointing the
// new transform's inverse back at t.
func linearInverse(t LinearTransform) (MathTransform, error) {
	if t.DimSource() != t.DimTarget() {
		return nil, ctErrorf(opInverse, fmt.Errorf("%d→%d matrix: %w", t.DimSource(), t.DimTarget(), ErrNonInvertible))
	}
	inv, err := matrix.Inverse(t.Matrix())
	if err != nil {
		return nil, ctErrorf(opInverse, fmt.Errorf("%w: %w", ErrNonInvertible, err))
	}
	res, err := NewAffineTransform(inv)
	if err != nil {
		return nil, ctErrorf(opInverse, err)
	}

	return withInverse(res, t), nil
}

// withInverse records inv as the cached inverse of a freshly built transform.
// Only values not yet shared may be passed here.
func withInverse(t MathTransform, inv MathTransform) MathTransform {
	switch v := t.(type) {
	case *MatrixTransform:
		v.inverse = inv
	case *LinearTransform1D:
		v.inverse = inv
	case *AffineTransform2D:
		v.inverse = inv
	case *ExponentialTransform1D:
		v.inverse = inv
	case *LogarithmicTransform1D:
		v.inverse = inv
	case *ConcatenatedTransform:
		v.inverse = inv
	case *ConcatenatedTransform1D:
		v.inverse = inv
	case *ConcatenatedTransform2D:
		v.inverse = inv
	case *PassThroughTransform:
		v.inverse = inv
	case *PassThroughTransform1D:
		v.inverse = inv
	case *PassThroughTransform2D:
		v.inverse = inv
	}

	return t
}

// ---------- IdentityTransform ----------

// IdentityTransform copies every ordinate unchanged. NewAffineTransform uses
// it for dimensions other than 1 and 2.
type IdentityTransform struct {
	dim int
}

var _ LinearTransform = (*IdentityTransform)(nil)

// DimSource returns the dimension.
func (t *IdentityTransform) DimSource() int { return t.dim }

// DimTarget returns the dimension.
func (t *IdentityTransform) DimTarget() int { return t.dim }

// Transform copies ordinates; overlapping regions are handled by copy's memmove semantics.
func (t *IdentityTransform) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(t.dim, t.dim, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	n := numPts * t.dim
	copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])

	return nil
}

// TransformPoint returns a copy of pt.
func (t *IdentityTransform) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse returns the receiver.
func (t *IdentityTransform) Inverse() (MathTransform, error) { return t, nil }

// IsIdentity returns true.
func (t *IdentityTransform) IsIdentity() bool { return true }

// Matrix returns the (dim+1)×(dim+1) identity.
func (t *IdentityTransform) Matrix() *matrix.Dense {
	m, _ := matrix.NewIdentity(t.dim + 1)

	return m
}

// Equal reports whether other is linear with an identity matrix of the same size.
func (t *IdentityTransform) Equal(other MathTransform) bool { return linearEqual(t, other) }

func (t *IdentityTransform) String() string { return fmt.Sprintf("Identity(%d)", t.dim) }

// ---------- MatrixTransform ----------

// MatrixTransform evaluates an arbitrary (numRow × numCol) homogeneous matrix.
// For affine matrices the homogeneous row is ignored; otherwise every output
// ordinate is divided by the homogeneous ordinate w.
type MatrixTransform struct {
	numRow, numCol int
	elt            []float64 // row-major coefficients, len == numRow*numCol
	affine         bool
	inverse        MathTransform
}

var _ LinearTransform = (*MatrixTransform)(nil)

// DimSource returns numCol-1.
func (t *MatrixTransform) DimSource() int { return t.numCol - 1 }

// DimTarget returns numRow-1.
func (t *MatrixTransform) DimTarget() int { return t.numRow - 1 }

// IsAffine reports whether the last matrix row is exactly [0,…,0,1].
func (t *MatrixTransform) IsAffine() bool { return t.affine }

// Transform evaluates the matrix on every point.
// Implementation:
//   - Stage 1: validate ranges; obtain an overlap-safe source region.
//   - Stage 2: per point, accumulate all numRow rows into a scratch tuple
//     (translation term first), then write the target tuple.
//   - Stage 3: divide by w when the matrix is projective.
//
// Complexity:
//   - Time O(numPts*numRow*numCol), Space O(numRow) (+ O(numPts*dimS) on overlap).
func (t *MatrixTransform) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	dimS, dimT := t.numCol-1, t.numRow-1
	if err := checkBulk(dimS, dimT, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, dimS, dimT)
	buf := make([]float64, t.numRow)

	var (
		p, i, j, s, d, row int
		sum, w             float64
	)
	for p = 0; p < numPts; p++ {
		s = p * dimS
		for j = 0; j < t.numRow; j++ {
			row = j * t.numCol
			sum = t.elt[row+dimS]
			for i = 0; i < dimS; i++ {
				sum += t.elt[row+i] * in[s+i]
			}
			buf[j] = sum
		}
		d = dstOff + p*dimT
		if t.affine {
			copy(dst[d:d+dimT], buf[:dimT])
			continue
		}
		w = buf[dimT]
		for j = 0; j < dimT; j++ {
			dst[d+j] = buf[j] / w
		}
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *MatrixTransform) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse inverts square matrices; rectangular ones (dimension changing) and
// singular ones fail with ErrNonInvertible.
func (t *MatrixTransform) Inverse() (MathTransform, error) {
	if t.inverse != nil {
		return t.inverse, nil
	}

	return linearInverse(t)
}

// IsIdentity reports whether the matrix is square and exactly the identity.
func (t *MatrixTransform) IsIdentity() bool {
	return t.numRow == t.numCol && t.Matrix().IsIdentity()
}

// Matrix returns a copy of the coefficients.
func (t *MatrixTransform) Matrix() *matrix.Dense {
	m, _ := matrix.NewDense(t.numRow, t.numCol)
	var i, j int
	for i = 0; i < t.numRow; i++ {
		for j = 0; j < t.numCol; j++ {
			_ = m.Set(i, j, t.elt[i*t.numCol+j])
		}
	}

	return m
}

// Equal reports whether other is linear with the same matrix.
func (t *MatrixTransform) Equal(other MathTransform) bool { return linearEqual(t, other) }

func (t *MatrixTransform) String() string {
	var b strings.Builder
	b.WriteString("Matrix[")
	for i, v := range t.elt {
		if i > 0 {
			if i%t.numCol == 0 {
				b.WriteString("; ")
			} else {
				b.WriteString(", ")
			}
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("]")

	return b.String()
}
