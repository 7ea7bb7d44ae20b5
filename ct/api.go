// SPDX-License-Identifier: MIT

package ct

import "github.com/katalvlaran/geoct/matrix"

// MathTransform maps points of DimSource ordinates to points of DimTarget ordinates.
// Implementations are immutable: dimensions, coefficients and sub-transforms
// never change after construction, so a value may be shared across goroutines.
type MathTransform interface {
	// DimSource returns the number of ordinates in an input point.
	DimSource() int

	// DimTarget returns the number of ordinates in an output point.
	DimTarget() int

	// Transform converts numPts consecutive tuples of DimSource ordinates read
	// from src[srcOff:] into numPts tuples of DimTarget ordinates written to
	// dst[dstOff:]. src and dst may share a backing array and may overlap.
	// Returns ErrOutOfRange when either region leaves its array and
	// ErrIllegalArgument for a negative numPts.
	Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error

	// TransformPoint converts a single point. len(pt) must equal DimSource.
	// The result is computed with the same arithmetic as Transform.
	TransformPoint(pt []float64) ([]float64, error)

	// Inverse returns the inverse transform, or ErrNonInvertible.
	// Inverse of the returned value reports a transform equal to the receiver.
	Inverse() (MathTransform, error)

	// IsIdentity reports whether the transform is provably the identity map.
	IsIdentity() bool

	// Equal reports whether other computes the same map with the same parameters.
	Equal(other MathTransform) bool

	// String describes the transform for logs and debugging.
	String() string
}

// MathTransform1D is implemented by transforms whose source and target are 1-D.
type MathTransform1D interface {
	MathTransform

	// Transform1D converts a single value.
	Transform1D(x float64) (float64, error)
}

// MathTransform2D is implemented by transforms whose source and target are 2-D.
type MathTransform2D interface {
	MathTransform

	// Transform2D converts a single (x, y) pair.
	Transform2D(x, y float64) (float64, float64, error)
}

// LinearTransform is implemented by transforms fully described by a matrix in
// homogeneous coordinates. Concatenating two of them yields their product.
type LinearTransform interface {
	MathTransform

	// Matrix returns a fresh copy of the (DimTarget+1)×(DimSource+1) matrix.
	Matrix() *matrix.Dense
}

// Concatenation is implemented by two-step transforms.
type Concatenation interface {
	MathTransform

	// First returns the step applied first.
	First() MathTransform

	// Second returns the step applied to the output of First.
	Second() MathTransform
}

// PassThrough is implemented by transforms that apply a sub-transform to a
// slice of ordinates and copy the others unchanged.
type PassThrough interface {
	MathTransform

	// FirstAffectedOrdinate returns the index of the first ordinate handed to the sub-transform.
	FirstAffectedOrdinate() int

	// NumTrailingOrdinates returns how many ordinates follow the affected slice.
	NumTrailingOrdinates() int

	// SubTransform returns the embedded transform.
	SubTransform() MathTransform
}
