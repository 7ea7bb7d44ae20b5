// SPDX-License-Identifier: MIT

// Package ct - pointwise nonlinear 1-D transforms.
//
// ExponentialTransform1D and LogarithmicTransform1D are one family sharing a
// base: the inverse of each is the other, obtained by swapping the variant and
// keeping the base. They are never merged algebraically with affine steps;
// concatenations that involve them stay two-step evaluations.

package ct

import (
	"fmt"
	"math"
)

// validateBase enforces a finite base > 0 and ≠ 1.
func validateBase(op string, base float64) error {
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 || base == 1 {
		return ctErrorf(op, fmt.Errorf("base %g: %w", base, ErrIllegalArgument))
	}

	return nil
}

// ExponentialTransform1D computes y = scale·base^x.
type ExponentialTransform1D struct {
	base, scale float64
	inverse     MathTransform
}

var _ MathTransform1D = (*ExponentialTransform1D)(nil)

// NewExponentialTransform1D builds y = scale·base^x.
// Errors:
//   - ErrIllegalArgument when base is not finite, ≤ 0 or 1, or scale is not finite.
func NewExponentialTransform1D(base, scale float64) (*ExponentialTransform1D, error) {
	if err := validateBase(opExponential, base); err != nil {
		return nil, err
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ctErrorf(opExponential, fmt.Errorf("scale %g: %w", scale, ErrIllegalArgument))
	}

	return &ExponentialTransform1D{base: base, scale: scale}, nil
}

// Base returns the base.
func (t *ExponentialTransform1D) Base() float64 { return t.base }

// Scale returns the multiplicative factor.
func (t *ExponentialTransform1D) Scale() float64 { return t.scale }

// DimSource returns 1.
func (t *ExponentialTransform1D) DimSource() int { return 1 }

// DimTarget returns 1.
func (t *ExponentialTransform1D) DimTarget() int { return 1 }

// Transform1D returns scale·base^x. Overflow yields ±Inf, underflow yields 0.
func (t *ExponentialTransform1D) Transform1D(x float64) (float64, error) {
	return t.scale * math.Pow(t.base, x), nil
}

// Transform applies Transform1D to each ordinate.
func (t *ExponentialTransform1D) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(1, 1, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, 1, 1)
	for i, x := range in {
		dst[dstOff+i] = t.scale * math.Pow(t.base, x)
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *ExponentialTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse returns the logarithm with the same base and offset -log_base(scale).
// A non-positive scale has no real logarithm: ErrNonInvertible.
func (t *ExponentialTransform1D) Inverse() (MathTransform, error) {
	if t.inverse != nil {
		return t.inverse, nil
	}
	if !(t.scale > 0) {
		return nil, ctErrorf(opInverse, fmt.Errorf("scale %g: %w", t.scale, ErrNonInvertible))
	}

	return &LogarithmicTransform1D{base: t.base, offset: -logBase(t.base, t.scale), inverse: t}, nil
}

// IsIdentity returns false: no base makes scale·base^x the identity.
func (t *ExponentialTransform1D) IsIdentity() bool { return false }

// Equal reports whether other is an exponential with the same base and scale.
func (t *ExponentialTransform1D) Equal(other MathTransform) bool {
	o, ok := other.(*ExponentialTransform1D)

	return ok && o.base == t.base && o.scale == t.scale
}

func (t *ExponentialTransform1D) String() string {
	return fmt.Sprintf("Exponential(base=%g, scale=%g)", t.base, t.scale)
}

// LogarithmicTransform1D computes y = log_base(x) + offset.
type LogarithmicTransform1D struct {
	base, offset float64
	inverse      MathTransform
}

var _ MathTransform1D = (*LogarithmicTransform1D)(nil)

// NewLogarithmicTransform1D builds y = log_base(x) + offset.
// Errors:
//   - ErrIllegalArgument when base is not finite, ≤ 0 or 1, or offset is not finite.
func NewLogarithmicTransform1D(base, offset float64) (*LogarithmicTransform1D, error) {
	if err := validateBase(opLogarithmic, base); err != nil {
		return nil, err
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, ctErrorf(opLogarithmic, fmt.Errorf("offset %g: %w", offset, ErrIllegalArgument))
	}

	return &LogarithmicTransform1D{base: base, offset: offset}, nil
}

// Base returns the base.
func (t *LogarithmicTransform1D) Base() float64 { return t.base }

// Offset returns the additive term.
func (t *LogarithmicTransform1D) Offset() float64 { return t.offset }

// DimSource returns 1.
func (t *LogarithmicTransform1D) DimSource() int { return 1 }

// DimTarget returns 1.
func (t *LogarithmicTransform1D) DimTarget() int { return 1 }

// Transform1D returns log_base(x) + offset. x = 0 yields -Inf, x < 0 yields NaN.
func (t *LogarithmicTransform1D) Transform1D(x float64) (float64, error) {
	return logBase(t.base, x) + t.offset, nil
}

// Transform applies Transform1D to each ordinate.
func (t *LogarithmicTransform1D) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(1, 1, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, 1, 1)
	for i, x := range in {
		dst[dstOff+i] = logBase(t.base, x) + t.offset
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (t *LogarithmicTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(t, pt)
}

// Inverse returns the exponential with the same base and scale base^-offset.
func (t *LogarithmicTransform1D) Inverse() (MathTransform, error) {
	if t.inverse != nil {
		return t.inverse, nil
	}

	return &ExponentialTransform1D{base: t.base, scale: math.Pow(t.base, -t.offset), inverse: t}, nil
}

// IsIdentity returns false.
func (t *LogarithmicTransform1D) IsIdentity() bool { return false }

// Equal reports whether other is a logarithm with the same base and offset.
func (t *LogarithmicTransform1D) Equal(other MathTransform) bool {
	o, ok := other.(*LogarithmicTransform1D)

	return ok && o.base == t.base && o.offset == t.offset
}

func (t *LogarithmicTransform1D) String() string {
	return fmt.Sprintf("Logarithmic(base=%g, offset=%g)", t.base, t.offset)
}

// logBase uses the dedicated kernels for the common bases.
func logBase(base, x float64) float64 {
	switch base {
	case 10:
		return math.Log10(x)
	case 2:
		return math.Log2(x)
	case math.E:
		return math.Log(x)
	}

	return math.Log(x) / math.Log(base)
}
