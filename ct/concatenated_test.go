// SPDX-License-Identifier: MIT

package ct_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/cttest"
)

// TestConcatenateAffineMatchesSequential compares the matrix product with
// applying both steps one after the other.
func TestConcatenateAffineMatchesSequential(t *testing.T) {
	shapes := [][3]int{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {2, 3, 1}, {3, 2, 4}, {1, 2, 2}}
	rng := rand.New(rand.NewSource(seed))
	for _, sh := range shapes {
		t.Run(fmt.Sprintf("%d-%d-%d", sh[0], sh[1], sh[2]), func(t *testing.T) {
			for iter := 0; iter < 20; iter++ {
				tr1, err := ct.NewAffineTransform(randomAffine(t, rng, sh[0], sh[1]))
				require.NoError(t, err)
				tr2, err := ct.NewAffineTransform(randomAffine(t, rng, sh[1], sh[2]))
				require.NoError(t, err)

				c, err := ct.Concatenate(tr1, tr2)
				require.NoError(t, err)
				require.Implements(t, (*ct.LinearTransform)(nil), c)
				require.Equal(t, sh[0], c.DimSource())
				require.Equal(t, sh[2], c.DimTarget())
				cttest.AssertCapabilities(t, c)

				pts := cttest.RandomPoints(rng, 100, sh[0], -100, 100)
				mid, err := ct.TransformAll(tr1, pts)
				require.NoError(t, err)
				want, err := ct.TransformAll(tr2, mid)
				require.NoError(t, err)
				got, err := ct.TransformAll(c, pts)
				require.NoError(t, err)
				cttest.AssertPointsClose(t, want, got, cttest.DefaultTolerance)

				two, err := ct.NewConcatenatedTransform(tr1, tr2)
				require.NoError(t, err)
				got, err = ct.TransformAll(two, pts)
				require.NoError(t, err)
				cttest.AssertPointsClose(t, want, got, 0, "two-step evaluation is exact")
			}
		})
	}
}

// TestCreativeMatrixDivergence documents that a dimension-increasing first
// step can overflow in the two-step path while the product stays finite.
func TestCreativeMatrixDivergence(t *testing.T) {
	up := mustAffine(t, [][]float64{{1e200, 0}, {1e200, 0}, {0, 1}}) // x → (1e200·x, 1e200·x)
	down := mustAffine(t, [][]float64{{1, -1, 0}, {0, 0, 1}})        // (a, b) → a - b

	product, err := ct.Concatenate(up, down)
	require.NoError(t, err)
	twoStep, err := ct.NewConcatenatedTransform(up, down)
	require.NoError(t, err)

	p, err := product.TransformPoint([]float64{1e200})
	require.NoError(t, err)
	require.Equal(t, []float64{0}, p)

	s, err := twoStep.TransformPoint([]float64{1e200})
	require.NoError(t, err)
	require.True(t, math.IsNaN(s[0]), "two-step path computes Inf - Inf")

	// Away from overflow both paths agree.
	p, _ = product.TransformPoint([]float64{3})
	s, _ = twoStep.TransformPoint([]float64{3})
	require.Equal(t, p, s)
}

func TestConcatenateNonLinear(t *testing.T) {
	lin := mustAffine(t, [][]float64{{3, 1}, {0, 1}})
	exp, err := ct.NewExponentialTransform1D(2, 1)
	require.NoError(t, err)

	c, err := ct.Concatenate(exp, lin)
	require.NoError(t, err)
	require.IsType(t, &ct.ConcatenatedTransform1D{}, c)
	cc := c.(ct.Concatenation)
	require.Same(t, exp, cc.First())
	require.Same(t, lin, cc.Second())

	y, err := c.(ct.MathTransform1D).Transform1D(3)
	require.NoError(t, err)
	require.Equal(t, 25.0, y)

	// identity steps are not folded away around non-linear ones
	id, _ := ct.NewIdentityTransform(1)
	c2, err := ct.Concatenate(id, exp)
	require.NoError(t, err)
	require.Implements(t, (*ct.Concatenation)(nil), c2)
	require.False(t, c2.IsIdentity())
}

func TestConcatenatedInverse(t *testing.T) {
	lin := mustAffine(t, [][]float64{{3, 1}, {0, 1}})
	exp, _ := ct.NewExponentialTransform1D(2, 1)
	c, err := ct.Concatenate(exp, lin)
	require.NoError(t, err)

	inv, err := c.Inverse()
	require.NoError(t, err)
	require.IsType(t, &ct.ConcatenatedTransform1D{}, inv)
	y, err := inv.(ct.MathTransform1D).Transform1D(25)
	require.NoError(t, err)
	require.InDelta(t, 3, y, 1e-12)

	back, err := inv.Inverse()
	require.NoError(t, err)
	require.True(t, back.Equal(c))
	_, is1D := back.(ct.MathTransform1D)
	require.True(t, is1D)

	rng := rand.New(rand.NewSource(seed))
	cttest.AssertRoundTrip(t, c, cttest.RandomPoints(rng, 50, 1, -10, 10), cttest.DefaultTolerance)

	constant := mustAffine(t, [][]float64{{0, 1}, {0, 1}})
	bad, err := ct.Concatenate(exp, constant)
	require.NoError(t, err)
	_, err = bad.Inverse()
	require.ErrorIs(t, err, ct.ErrNonInvertible)
}

func TestConcatenate2DWrapper(t *testing.T) {
	exp, _ := ct.NewExponentialTransform1D(2, 1)
	py, err := ct.NewPassThroughTransform(1, exp, 0)
	require.NoError(t, err)
	rot := mustAffine(t, [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})

	c, err := ct.Concatenate(py, rot)
	require.NoError(t, err)
	c2, ok := c.(ct.MathTransform2D)
	require.True(t, ok)
	x, y, err := c2.Transform2D(5, 3)
	require.NoError(t, err)
	require.Equal(t, -8.0, x)
	require.Equal(t, 5.0, y)

	// 3-D concatenation has no capability wrapper
	id3, _ := ct.NewIdentityTransform(3)
	e3, err := ct.NewPassThroughTransform(0, exp, 2)
	require.NoError(t, err)
	c3, err := ct.Concatenate(e3, id3)
	require.NoError(t, err)
	require.IsType(t, &ct.ConcatenatedTransform{}, c3)
	cttest.AssertCapabilities(t, c3)
}

func TestConcatenateErrors(t *testing.T) {
	one := mustAffine(t, [][]float64{{2, 0}, {0, 1}})
	two := mustAffine(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	_, err := ct.Concatenate(one, two)
	require.ErrorIs(t, err, ct.ErrMismatchedDimension)
	_, err = ct.NewConcatenatedTransform(two, one)
	require.ErrorIs(t, err, ct.ErrMismatchedDimension)
	_, err = ct.Concatenate(nil, one)
	require.ErrorIs(t, err, ct.ErrNilTransform)
	_, err = ct.NewConcatenatedTransform(one, nil)
	require.ErrorIs(t, err, ct.ErrNilTransform)
}
