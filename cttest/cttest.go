// SPDX-License-Identifier: MIT

// Package cttest provides numeric verification helpers for MathTransform
// implementations: random point clouds, tolerance-based point comparison,
// forward/inverse round trips and the 1-D/2-D capability invariant.
//
// Helpers report through testify's assert package and return whether the
// check passed, so callers decide whether to stop (require-style) or go on.
//
//	rng := rand.New(rand.NewSource(1))
//	pts := cttest.RandomPoints(rng, 100, tr.DimSource(), -1e3, 1e3)
//	cttest.AssertRoundTrip(t, tr, pts, cttest.DefaultTolerance)
package cttest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/geoct/ct"
)

// DefaultTolerance is the absolute per-ordinate tolerance used for
// composition and round-trip checks.
const DefaultTolerance = 1e-6

// RandomPoints returns numPts*dim ordinates drawn uniformly from [lo, hi).
func RandomPoints(rng *rand.Rand, numPts, dim int, lo, hi float64) []float64 {
	out := make([]float64, numPts*dim)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}

	return out
}

// AssertPointsClose checks that want and got have the same length and agree
// within tol on every ordinate. NaN matches NaN and equal infinities match.
func AssertPointsClose(t assert.TestingT, want, got []float64, tol float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if math.IsNaN(want[i]) && math.IsNaN(got[i]) {
			continue
		}
		if !floats.EqualWithinAbs(want[i], got[i], tol) {
			return assert.Fail(t,
				fmt.Sprintf("ordinate %d differs: want %v, got %v (tol %g)", i, want[i], got[i], tol), msgAndArgs...)
		}
	}

	return true
}

// AssertRoundTrip transforms pts forward then back and compares with pts.
// A transform without an inverse (ct.ErrNonInvertible) passes trivially.
func AssertRoundTrip(t assert.TestingT, tr ct.MathTransform, pts []float64, tol float64) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	inv, err := tr.Inverse()
	if errors.Is(err, ct.ErrNonInvertible) {
		return true
	}
	if !assert.NoError(t, err, "inverse of %v", tr) {
		return false
	}
	fwd, err := ct.TransformAll(tr, pts)
	if !assert.NoError(t, err, "forward %v", tr) {
		return false
	}
	back, err := ct.TransformAll(inv, fwd)
	if !assert.NoError(t, err, "inverse %v", inv) {
		return false
	}

	return AssertPointsClose(t, pts, back, tol, "round trip through %v", tr)
}

// AssertCapabilities checks that tr implements MathTransform1D exactly when
// it maps 1-D to 1-D, and MathTransform2D exactly when it maps 2-D to 2-D.
// Projective matrix transforms are exempt: they never specialize.
func AssertCapabilities(t assert.TestingT, tr ct.MathTransform) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if m, ok := tr.(*ct.MatrixTransform); ok && !m.IsAffine() {
		return true
	}
	_, is1D := tr.(ct.MathTransform1D)
	_, is2D := tr.(ct.MathTransform2D)
	want1D := tr.DimSource() == 1 && tr.DimTarget() == 1
	want2D := tr.DimSource() == 2 && tr.DimTarget() == 2

	ok := assert.Equal(t, want1D, is1D, "%T (%d→%d) MathTransform1D", tr, tr.DimSource(), tr.DimTarget())

	return assert.Equal(t, want2D, is2D, "%T (%d→%d) MathTransform2D", tr, tr.DimSource(), tr.DimTarget()) && ok
}

// AssertSingleMatchesBulk checks that TransformPoint, Transform1D and
// Transform2D give bit-identical results to the bulk path.
func AssertSingleMatchesBulk(t assert.TestingT, tr ct.MathTransform, pts []float64) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	bulk, err := ct.TransformAll(tr, pts)
	if !assert.NoError(t, err) {
		return false
	}
	dimS, dimT := tr.DimSource(), tr.DimTarget()
	numPts := len(pts) / dimS
	ok := true
	for p := 0; p < numPts; p++ {
		want := bulk[p*dimT : (p+1)*dimT]
		got, err := tr.TransformPoint(pts[p*dimS : (p+1)*dimS])
		if !assert.NoError(t, err) {
			return false
		}
		ok = AssertPointsClose(t, want, got, 0, "TransformPoint #%d", p) && ok

		switch v := tr.(type) {
		case ct.MathTransform1D:
			y, err := v.Transform1D(pts[p])
			ok = assert.NoError(t, err) && AssertPointsClose(t, want, []float64{y}, 0, "Transform1D #%d", p) && ok
		case ct.MathTransform2D:
			x, y, err := v.Transform2D(pts[2*p], pts[2*p+1])
			ok = assert.NoError(t, err) && AssertPointsClose(t, want, []float64{x, y}, 0, "Transform2D #%d", p) && ok
		}
	}

	return ok
}
