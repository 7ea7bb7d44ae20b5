// SPDX-License-Identifier: MIT

package ct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geoct/matrix"
)

// AffineTransform2D is the 2-D specialization of an affine matrix:
//
//	x' = m00·x + m01·y + m02
//	y' = m10·x + m11·y + m12
type AffineTransform2D struct {
	m00, m01, m02 float64
	m10, m11, m12 float64
	inverse       MathTransform
}

var (
	_ MathTransform2D = (*AffineTransform2D)(nil)
	_ LinearTransform = (*AffineTransform2D)(nil)
)

// NewAffineTransform2D builds a 2-D affine transform from its six coefficients.
func NewAffineTransform2D(m00, m01, m02, m10, m11, m12 float64) *AffineTransform2D {
	return &AffineTransform2D{m00: m00, m01: m01, m02: m02, m10: m10, m11: m11, m12: m12}
}

// DimSource returns 2.
func (t *AffineTransform2D) DimSource() int { return 2 }

// DimTarget returns 2.
func (t *AffineTransform2D) DimTarget() int { return 2 }

// Transform2D applies the affine map to one point.
func (t *AffineTransform2D) Transform2D(x, y float64) (float64, float64, error) {
	return t.m02 + t.m00*x + t.m01*y, t.m12 + t.m10*x + t.m11*y, nil
}

// Transform applies the affine map to every (x, y) pair.
func (t *AffineTransform2D) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(2, 2, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, 2, 2)
	var x, y float64
	var p, d int
	for p = 0; p < numPts; p++ {
		x, y = in[2*p], in[2*p+1]
		d = dstOff + 2*p
		dst[d] = t.m02 + t.m00*x + t.m01*y
		dst[d+1] = t.m12 + t.m10*x + t.m11*y
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *AffineTransform2D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse returns the closed-form inverse, or ErrNonInvertible when the
// determinant is zero or not finite.
func (t *AffineTransform2D) Inverse() (MathTransform, error) {
	if t.inverse != nil {
		return t.inverse, nil
	}
	if t.IsIdentity() {
		return t, nil
	}
	det := t.m00*t.m11 - t.m01*t.m10
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, ctErrorf(opInverse, fmt.Errorf("determinant %g: %w", det, ErrNonInvertible))
	}
	a := t.m11 / det
	b := -t.m01 / det
	d := -t.m10 / det
	e := t.m00 / det

	return &AffineTransform2D{
		m00: a, m01: b, m02: -t.m02*a - t.m12*b,
		m10: d, m11: e, m12: -t.m02*d - t.m12*e,
		inverse: t,
	}, nil
}

// IsIdentity reports whether the coefficients are exactly the identity.
func (t *AffineTransform2D) IsIdentity() bool {
	return t.m00 == 1 && t.m01 == 0 && t.m02 == 0 &&
		t.m10 == 0 && t.m11 == 1 && t.m12 == 0
}

// Matrix returns the 3×3 homogeneous matrix.
func (t *AffineTransform2D) Matrix() *matrix.Dense {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{t.m00, t.m01, t.m02},
		{t.m10, t.m11, t.m12},
		{0, 0, 1},
	})

	return m
}

// Equal reports whether other is linear with the same matrix.
func (t *AffineTransform2D) Equal(other MathTransform) bool { return linearEqual(t, other) }

func (t *AffineTransform2D) String() string {
	return fmt.Sprintf("Affine2D(%g, %g, %g; %g, %g, %g)", t.m00, t.m01, t.m02, t.m10, t.m11, t.m12)
}
