// SPDX-License-Identifier: MIT

package ct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geoct/matrix"
)

// LinearTransform1D computes y = scale·x + offset with a non-zero scale.
type LinearTransform1D struct {
	scale, offset float64
	inverse       MathTransform
}

var (
	_ MathTransform1D = (*LinearTransform1D)(nil)
	_ LinearTransform = (*LinearTransform1D)(nil)
)

// NewLinearTransform1D builds y = scale·x + offset, returning a
// ConstantTransform1D when scale is exactly zero.
func NewLinearTransform1D(scale, offset float64) MathTransform1D {
	if scale == 0 {
		return &ConstantTransform1D{offset: offset}
	}

	return &LinearTransform1D{scale: scale, offset: offset}
}

// Scale returns the multiplicative term.
func (t *LinearTransform1D) Scale() float64 { return t.scale }

// Offset returns the additive term.
func (t *LinearTransform1D) Offset() float64 { return t.offset }

// DimSource returns 1.
func (t *LinearTransform1D) DimSource() int { return 1 }

// DimTarget returns 1.
func (t *LinearTransform1D) DimTarget() int { return 1 }

// Transform1D returns scale·x + offset.
func (t *LinearTransform1D) Transform1D(x float64) (float64, error) {
	return x*t.scale + t.offset, nil
}

// Transform applies Transform1D to each ordinate.
func (t *LinearTransform1D) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(1, 1, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, 1, 1)
	for i, x := range in {
		dst[dstOff+i] = x*t.scale + t.offset
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *LinearTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse returns y = x/scale - offset/scale.
func (t *LinearTransform1D) Inverse() (MathTransform, error) {
	if t.inverse != nil {
		return t.inverse, nil
	}
	if t.scale == 1 && t.offset == 0 {
		return t, nil
	}
	inv := &LinearTransform1D{scale: 1 / t.scale, offset: -t.offset / t.scale, inverse: t}
	if math.IsInf(inv.scale, 0) || math.IsNaN(inv.scale) {
		return nil, ctErrorf(opInverse, fmt.Errorf("scale %g: %w", t.scale, ErrNonInvertible))
	}

	return inv, nil
}

// IsIdentity reports scale == 1 and offset == 0.
func (t *LinearTransform1D) IsIdentity() bool { return t.scale == 1 && t.offset == 0 }

// Matrix returns [[scale, offset], [0, 1]].
func (t *LinearTransform1D) Matrix() *matrix.Dense {
	m, _ := matrix.NewDenseFromRows([][]float64{{t.scale, t.offset}, {0, 1}})

	return m
}

// Equal reports whether other is linear with the same matrix.
func (t *LinearTransform1D) Equal(other MathTransform) bool { return linearEqual(t, other) }

func (t *LinearTransform1D) String() string {
	return fmt.Sprintf("Linear1D(scale=%g, offset=%g)", t.scale, t.offset)
}

// ConstantTransform1D maps every input to the same value.
// The stored value is returned as is, so a NaN constant keeps its exact bit
// pattern (sign and payload); raster "no data" sentinels depend on this.
type ConstantTransform1D struct {
	offset float64
}

var (
	_ MathTransform1D = (*ConstantTransform1D)(nil)
	_ LinearTransform = (*ConstantTransform1D)(nil)
)

// Value returns the constant.
func (t *ConstantTransform1D) Value() float64 { return t.offset }

// DimSource returns 1.
func (t *ConstantTransform1D) DimSource() int { return 1 }

// DimTarget returns 1.
func (t *ConstantTransform1D) DimTarget() int { return 1 }

// Transform1D returns the constant, ignoring x.
func (t *ConstantTransform1D) Transform1D(float64) (float64, error) { return t.offset, nil }

// Transform fills the target region with the constant.
func (t *ConstantTransform1D) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(1, 1, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	out := dst[dstOff : dstOff+numPts]
	for i := range out {
		out[i] = t.offset
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *ConstantTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse always fails: every input collapses onto one value.
func (t *ConstantTransform1D) Inverse() (MathTransform, error) {
	return nil, ctErrorf(opInverse, fmt.Errorf("constant %g: %w", t.offset, ErrNonInvertible))
}

// IsIdentity returns false.
func (t *ConstantTransform1D) IsIdentity() bool { return false }

// Matrix returns [[0, value], [0, 1]].
func (t *ConstantTransform1D) Matrix() *matrix.Dense {
	m, _ := matrix.NewDenseFromRows([][]float64{{0, t.offset}, {0, 1}})

	return m
}

// Equal reports whether other is linear with the same matrix.
func (t *ConstantTransform1D) Equal(other MathTransform) bool { return linearEqual(t, other) }

func (t *ConstantTransform1D) String() string { return fmt.Sprintf("Constant1D(%g)", t.offset) }
