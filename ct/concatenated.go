// SPDX-License-Identifier: MIT

// Package ct - concatenation of two transforms.
//
// Purpose:
//   - Concatenate is the algebra-aware entry point: two linear steps collapse
//     into one matrix product M2×M1, everything else becomes a two-step
//     ConcatenatedTransform evaluating second(first(x)).
//   - NewConcatenatedTransform always builds the two-step form.
//
// Notes:
//   - The two strategies may legitimately disagree when a step is "creative"
//     (dimension increasing) and the intermediate ordinates overflow: the
//     two-step path can produce NaN or ±Inf where the product cancels the
//     overflowing terms and stays finite. Neither path is adjusted to match
//     the other.

package ct

import (
	"fmt"

	"github.com/katalvlaran/geoct/matrix"
)

// Concatenate returns a transform equivalent to tr2(tr1(x)).
// Implementation:
//   - Stage 1: reject nil inputs; require tr1.DimTarget == tr2.DimSource.
//   - Stage 2: both LinearTransform → NewAffineTransform(M2 × M1).
//   - Stage 3: otherwise NewConcatenatedTransform(tr1, tr2).
//
// Behavior highlights:
//   - Callers must not assume the concrete type of the result.
//   - Exponential/logarithmic steps are never simplified against affine ones.
//
// Errors:
//   - ErrNilTransform, ErrMismatchedDimension.
//
// Complexity:
//   - Linear case O(r*n*c) for the product; otherwise O(1).
func Concatenate(tr1, tr2 MathTransform) (MathTransform, error) {
	if err := checkChain(tr1, tr2); err != nil {
		return nil, ctErrorf(opConcatenate, err)
	}
	l1, ok1 := tr1.(LinearTransform)
	l2, ok2 := tr2.(LinearTransform)
	if ok1 && ok2 {
		prod, err := matrix.Mul(l2.Matrix(), l1.Matrix())
		if err != nil {
			return nil, ctErrorf(opConcatenate, err)
		}
		return NewAffineTransform(prod)
	}

	return newConcatenated(tr1, tr2), nil
}

// NewConcatenatedTransform returns the two-step evaluation of tr2(tr1(x))
// without any algebraic simplification.
//
// Errors:
//   - ErrNilTransform, ErrMismatchedDimension.
func NewConcatenatedTransform(tr1, tr2 MathTransform) (MathTransform, error) {
	if err := checkChain(tr1, tr2); err != nil {
		return nil, ctErrorf(opConcatenate, err)
	}

	return newConcatenated(tr1, tr2), nil
}

// checkChain validates that tr2 can consume the output of tr1.
func checkChain(tr1, tr2 MathTransform) error {
	if tr1 == nil || tr2 == nil {
		return ErrNilTransform
	}
	if tr1.DimTarget() != tr2.DimSource() {
		return fmt.Errorf("%d→%d then %d→%d: %w",
			tr1.DimSource(), tr1.DimTarget(), tr2.DimSource(), tr2.DimTarget(), ErrMismatchedDimension)
	}

	return nil
}

// newConcatenated picks the capability wrapper matching the outer dimensions.
func newConcatenated(tr1, tr2 MathTransform) MathTransform {
	c := &ConcatenatedTransform{first: tr1, second: tr2}

	return c.self()
}

// ConcatenatedTransform evaluates second(first(x)) in two steps.
type ConcatenatedTransform struct {
	first, second MathTransform
	inverse       MathTransform
}

var _ Concatenation = (*ConcatenatedTransform)(nil)

// First returns the step applied first.
func (c *ConcatenatedTransform) First() MathTransform { return c.first }

// Second returns the step applied last.
func (c *ConcatenatedTransform) Second() MathTransform { return c.second }

// DimSource returns first.DimSource().
func (c *ConcatenatedTransform) DimSource() int { return c.first.DimSource() }

// DimTarget returns second.DimTarget().
func (c *ConcatenatedTransform) DimTarget() int { return c.second.DimTarget() }

// Transform runs first into an intermediate buffer, then second into dst.
// Implementation:
//   - Stage 1: validate ranges against the outer dimensions; a 0-dimensional
//     target has nothing to write.
//   - Stage 2: first reads the whole source before second writes any target
//     ordinate, so aliasing between src and dst is harmless.
//
// Complexity:
//   - Time: sum of both steps. Space O(numPts × intermediate dimension).
func (c *ConcatenatedTransform) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := checkBulk(c.DimSource(), c.DimTarget(), src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	if c.DimTarget() == 0 {
		return nil
	}
	tmp := make([]float64, numPts*c.first.DimTarget())
	if err := c.first.Transform(src, srcOff, tmp, 0, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	if err := c.second.Transform(tmp, 0, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (c *ConcatenatedTransform) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(c, pt)
}

// Inverse returns Concatenate(second⁻¹, first⁻¹).
func (c *ConcatenatedTransform) Inverse() (MathTransform, error) {
	if c.inverse != nil {
		return c.inverse, nil
	}
	inv2, err := c.second.Inverse()
	if err != nil {
		return nil, ctErrorf(opInverse, err)
	}
	inv1, err := c.first.Inverse()
	if err != nil {
		return nil, ctErrorf(opInverse, err)
	}
	inv, err := Concatenate(inv2, inv1)
	if err != nil {
		return nil, ctErrorf(opInverse, err)
	}
	if _, ok := inv.(Concatenation); ok {
		return withInverse(inv, c.self()), nil
	}

	return inv, nil
}

// self returns the capability wrapper when one applies, so that the inverse of
// the inverse keeps the 1-D/2-D methods.
func (c *ConcatenatedTransform) self() MathTransform {
	switch {
	case c.DimSource() == 1 && c.DimTarget() == 1:
		return &ConcatenatedTransform1D{c}
	case c.DimSource() == 2 && c.DimTarget() == 2:
		return &ConcatenatedTransform2D{c}
	}

	return c
}

// IsIdentity reports whether both steps are identities.
func (c *ConcatenatedTransform) IsIdentity() bool {
	return c.first.IsIdentity() && c.second.IsIdentity()
}

// Equal reports whether other is a concatenation of equal steps.
func (c *ConcatenatedTransform) Equal(other MathTransform) bool {
	o, ok := other.(Concatenation)

	return ok && c.first.Equal(o.First()) && c.second.Equal(o.Second())
}

func (c *ConcatenatedTransform) String() string {
	return fmt.Sprintf("Concat(%v, %v)", c.first, c.second)
}

// ConcatenatedTransform1D is a concatenation whose outer dimensions are 1→1.
type ConcatenatedTransform1D struct {
	*ConcatenatedTransform
}

var _ MathTransform1D = (*ConcatenatedTransform1D)(nil)

// Transform1D evaluates both steps on one value.
func (c *ConcatenatedTransform1D) Transform1D(x float64) (float64, error) {
	var in, out [1]float64
	in[0] = x
	if err := c.Transform(in[:], 0, out[:], 0, 1); err != nil {
		return 0, err
	}

	return out[0], nil
}

// TransformPoint transforms a single point through the bulk path.
func (c *ConcatenatedTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(c, pt)
}

// ConcatenatedTransform2D is a concatenation whose outer dimensions are 2→2.
type ConcatenatedTransform2D struct {
	*ConcatenatedTransform
}

var _ MathTransform2D = (*ConcatenatedTransform2D)(nil)

// Transform2D evaluates both steps on one (x, y) pair.
func (c *ConcatenatedTransform2D) Transform2D(x, y float64) (float64, float64, error) {
	in := [2]float64{x, y}
	var out [2]float64
	if err := c.Transform(in[:], 0, out[:], 0, 1); err != nil {
		return 0, 0, err
	}

	return out[0], out[1], nil
}

// TransformPoint transforms a single point through the bulk path.
func (c *ConcatenatedTransform2D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(c, pt)
}
