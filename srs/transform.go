// SPDX-License-Identifier: MIT

package srs

import (
	"fmt"
	"sync"

	"github.com/ctessum/geom/proj"

	"github.com/katalvlaran/geoct/ct"
)

// ulpTolerance is the tolerance proj uses to detect equal spatial references.
const ulpTolerance = 3

// projMu serializes every call into proj. Building the projection functions
// writes derived constants into the shared *proj.SR values, and the functions
// rebind captured state on datum shifts.
var projMu sync.Mutex

func project(f proj.Transformer, x, y float64) (float64, float64, error) {
	projMu.Lock()
	defer projMu.Unlock()

	return f(x, y)
}

// Transform converts (x, y) pairs between two spatial references.
// Values are immutable and safe for concurrent use.
type Transform struct {
	source, target string
	src, dst       *proj.SR
	fn             proj.Transformer
	inverse        *Transform
}

var _ ct.MathTransform2D = (*Transform)(nil)

// Source returns the source definition as given.
func (t *Transform) Source() string { return t.source }

// Target returns the target definition as given.
func (t *Transform) Target() string { return t.target }

// DimSource is always 2.
func (t *Transform) DimSource() int { return 2 }

// DimTarget is always 2.
func (t *Transform) DimTarget() int { return 2 }

// Transform2D converts a single pair.
func (t *Transform) Transform2D(x, y float64) (float64, float64, error) {
	u, v, err := project(t.fn, x, y)
	if err != nil {
		return u, v, fmt.Errorf("srs: (%g, %g): %v: %w", x, y, err, ErrProjection)
	}

	return u, v, nil
}

// Transform converts numPts pairs. The first failing point aborts the call
// and dst is left untouched.
func (t *Transform) Transform(src []float64, srcOff int, dst []float64, dstOff int, numPts int) error {
	if err := ct.CheckTransformArgs(t, src, srcOff, dst, dstOff, numPts); err != nil {
		return err
	}
	in := src[srcOff : srcOff+2*numPts]
	out := make([]float64, len(in))
	var (
		k   int
		err error
	)
	for k = 0; k < len(in); k += 2 {
		out[k], out[k+1], err = t.Transform2D(in[k], in[k+1])
		if err != nil {
			return fmt.Errorf("point %d: %w", k/2, err)
		}
	}
	copy(dst[dstOff:], out)

	return nil
}

// TransformPoint converts a single 2-D point.
func (t *Transform) TransformPoint(pt []float64) ([]float64, error) {
	if len(pt) != 2 {
		return nil, fmt.Errorf("srs: point has %d ordinates, want 2: %w", len(pt), ct.ErrMismatchedDimension)
	}
	x, y, err := t.Transform2D(pt[0], pt[1])
	if err != nil {
		return nil, err
	}

	return []float64{x, y}, nil
}

// Inverse returns the transform with source and target swapped.
func (t *Transform) Inverse() (ct.MathTransform, error) { return t.inverse, nil }

// IsIdentity reports whether both references are equal in proj's own sense.
func (t *Transform) IsIdentity() bool {
	projMu.Lock()
	defer projMu.Unlock()

	return t.src.Equal(t.dst, ulpTolerance)
}

// Equal reports whether other converts between equal references in the same direction.
func (t *Transform) Equal(other ct.MathTransform) bool {
	o, ok := other.(*Transform)
	if !ok {
		return false
	}
	if o == t {
		return true
	}

	projMu.Lock()
	defer projMu.Unlock()

	return t.src.Equal(o.src, ulpTolerance) && t.dst.Equal(o.dst, ulpTolerance)
}

// String describes the transform.
func (t *Transform) String() string {
	return fmt.Sprintf("Proj4(%q -> %q)", t.source, t.target)
}
