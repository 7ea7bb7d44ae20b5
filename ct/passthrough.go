// SPDX-License-Identifier: MIT

// Package ct - embedding a transform into a slice of a wider coordinate space.
//
// Layout of one source tuple:
//
//	[ 0 … first-1 | first … first+sub.DimSource-1 | trailing ordinates ]
//	  copied        handed to sub                   copied
//
// The target tuple has the same shape with sub.DimTarget in the middle.

package ct

import (
	"fmt"
)

// NewPassThroughTransform applies sub to the ordinates starting at first and
// leaves the first leading and numTrailing trailing ordinates unchanged.
// Implementation:
//   - Stage 1: reject negative counts and a nil sub.
//   - Stage 2: (0, sub, 0) returns sub itself, not a wrapper.
//   - Stage 3: pick the 1-D/2-D capability wrapper matching the outer dimensions.
//
// Errors:
//   - ErrIllegalArgument for negative counts, ErrNilTransform for a nil sub.
func NewPassThroughTransform(first int, sub MathTransform, numTrailing int) (MathTransform, error) {
	if first < 0 || numTrailing < 0 {
		return nil, ctErrorf(opPassThrough, fmt.Errorf("first=%d trailing=%d: %w", first, numTrailing, ErrIllegalArgument))
	}
	if sub == nil {
		return nil, ctErrorf(opPassThrough, ErrNilTransform)
	}
	if first == 0 && numTrailing == 0 {
		return sub, nil
	}

	return newPassThrough(first, sub, numTrailing), nil
}

func newPassThrough(first int, sub MathTransform, numTrailing int) MathTransform {
	p := &PassThroughTransform{first: first, trailing: numTrailing, sub: sub}

	return p.self()
}

// PassThroughTransform applies a sub-transform to a contiguous slice of
// ordinates and copies the others.
type PassThroughTransform struct {
	first, trailing int
	sub             MathTransform
	inverse         MathTransform
}

var _ PassThrough = (*PassThroughTransform)(nil)

// FirstAffectedOrdinate returns the index of the first ordinate handed to the sub-transform.
func (p *PassThroughTransform) FirstAffectedOrdinate() int { return p.first }

// NumTrailingOrdinates returns the number of ordinates after the affected slice.
func (p *PassThroughTransform) NumTrailingOrdinates() int { return p.trailing }

// SubTransform returns the embedded transform.
func (p *PassThroughTransform) SubTransform() MathTransform { return p.sub }

// DimSource returns first + sub.DimSource() + trailing.
func (p *PassThroughTransform) DimSource() int { return p.first + p.sub.DimSource() + p.trailing }

// DimTarget returns first + sub.DimTarget() + trailing.
func (p *PassThroughTransform) DimTarget() int { return p.first + p.sub.DimTarget() + p.trailing }

// Transform runs the sub-transform on the gathered middle ordinates of every
// point, then assembles each target tuple.
// Implementation:
//   - Stage 1: validate ranges; obtain an overlap-safe source region.
//   - Stage 2: gather the affected slices of all points into one buffer and run
//     sub.Transform once over it.
//   - Stage 3: per point, build the target tuple in a scratch row (leading,
//     sub output, trailing) and copy it to dst.
//
// Complexity:
//   - Time O(numPts*dim) plus the sub-transform cost; Space O(numPts*(subS+subT)).
func (p *PassThroughTransform) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	dimS, dimT := p.DimSource(), p.DimTarget()
	if err := checkBulk(dimS, dimT, src, srcOff, dst, dstOff, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}
	in := sourceRegion(src, srcOff, dst, dstOff, numPts, dimS, dimT)
	subS, subT := p.sub.DimSource(), p.sub.DimTarget()

	subIn := make([]float64, numPts*subS)
	subOut := make([]float64, numPts*subT)
	var i, s int
	for i = 0; i < numPts; i++ {
		s = i*dimS + p.first
		copy(subIn[i*subS:(i+1)*subS], in[s:s+subS])
	}
	if err := p.sub.Transform(subIn, 0, subOut, 0, numPts); err != nil {
		return ctErrorf(opTransform, err)
	}

	row := make([]float64, dimT)
	for i = 0; i < numPts; i++ {
		s = i * dimS
		copy(row[:p.first], in[s:s+p.first])
		copy(row[p.first:p.first+subT], subOut[i*subT:(i+1)*subT])
		copy(row[p.first+subT:], in[s+p.first+subS:s+dimS])
		copy(dst[dstOff+i*dimT:dstOff+(i+1)*dimT], row)
	}

	return nil
}

// TransformPoint transforms a single point through the bulk path.
func (p *PassThroughTransform) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(p, pt)
}

// Inverse embeds sub's inverse at the same position.
func (p *PassThroughTransform) Inverse() (MathTransform, error) {
	if p.inverse != nil {
		return p.inverse, nil
	}
	subInv, err := p.sub.Inverse()
	if err != nil {
		return nil, ctErrorf(opInverse, err)
	}

	return withInverse(newPassThrough(p.first, subInv, p.trailing), p.self()), nil
}

// self returns the capability wrapper matching the outer dimensions.
func (p *PassThroughTransform) self() MathTransform {
	switch {
	case p.DimSource() == 1 && p.DimTarget() == 1:
		return &PassThroughTransform1D{p}
	case p.DimSource() == 2 && p.DimTarget() == 2:
		return &PassThroughTransform2D{p}
	}

	return p
}

// IsIdentity reports whether the sub-transform is the identity.
func (p *PassThroughTransform) IsIdentity() bool { return p.sub.IsIdentity() }

// Equal reports whether other embeds an equal sub-transform at the same position.
func (p *PassThroughTransform) Equal(other MathTransform) bool {
	o, ok := other.(PassThrough)

	return ok && o.FirstAffectedOrdinate() == p.first &&
		o.NumTrailingOrdinates() == p.trailing && p.sub.Equal(o.SubTransform())
}

func (p *PassThroughTransform) String() string {
	return fmt.Sprintf("PassThrough(%d, %v, %d)", p.first, p.sub, p.trailing)
}

// PassThroughTransform1D is a pass-through whose outer dimensions are 1→1;
// this only happens around a 0-dimensional sub-transform.
type PassThroughTransform1D struct {
	*PassThroughTransform
}

var _ MathTransform1D = (*PassThroughTransform1D)(nil)

// Transform1D transforms one value.
func (p *PassThroughTransform1D) Transform1D(x float64) (float64, error) {
	var in, out [1]float64
	in[0] = x
	if err := p.Transform(in[:], 0, out[:], 0, 1); err != nil {
		return 0, err
	}

	return out[0], nil
}

// TransformPoint transforms a single point through the bulk path.
func (p *PassThroughTransform1D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(p, pt)
}

// PassThroughTransform2D is a pass-through whose outer dimensions are 2→2,
// e.g. a 1-D transform applied to the y ordinate only.
type PassThroughTransform2D struct {
	*PassThroughTransform
}

var _ MathTransform2D = (*PassThroughTransform2D)(nil)

// Transform2D transforms one (x, y) pair.
func (p *PassThroughTransform2D) Transform2D(x, y float64) (float64, float64, error) {
	in := [2]float64{x, y}
	var out [2]float64
	if err := p.Transform(in[:], 0, out[:], 0, 1); err != nil {
		return 0, 0, err
	}

	return out[0], out[1], nil
}

// TransformPoint transforms a single point through the bulk path.
func (p *PassThroughTransform2D) TransformPoint(pt []float64) ([]float64, error) {
	return transformPoint(p, pt)
}
