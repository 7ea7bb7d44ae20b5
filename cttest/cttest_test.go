// SPDX-License-Identifier: MIT

package cttest_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/cttest"
)

// recorder collects failures instead of failing the enclosing test.
type recorder struct{ msgs []string }

func (r *recorder) Errorf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

// liar claims to be 2-D but only implements the general interface.
type liar struct{ ct.MathTransform }

// drift is a 1-D transform whose inverse is slightly off.
type drift struct{ ct.MathTransform1D }

func (d drift) Inverse() (ct.MathTransform, error) { return ct.NewLinearTransform1D(1, 0.5), nil }

func TestRandomPoints(t *testing.T) {
	pts := cttest.RandomPoints(rand.New(rand.NewSource(1)), 100, 3, -2, 5)
	require.Len(t, pts, 300)
	for _, v := range pts {
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 5.0)
	}
}

func TestAssertPointsClose(t *testing.T) {
	r := &recorder{}
	nan, inf := math.NaN(), math.Inf(1)
	require.True(t, cttest.AssertPointsClose(r, []float64{1, nan, inf}, []float64{1 + 1e-9, nan, inf}, 1e-6))
	require.Empty(t, r.msgs)

	require.False(t, cttest.AssertPointsClose(r, []float64{1, 2}, []float64{1, 2.1}, 1e-6))
	require.Len(t, r.msgs, 1)
	require.Contains(t, r.msgs[0], "ordinate 1 differs")

	require.False(t, cttest.AssertPointsClose(r, []float64{1, 2}, []float64{1}, 1e-6))
	require.Len(t, r.msgs, 2)
}

func TestAssertRoundTrip(t *testing.T) {
	r := &recorder{}
	require.True(t, cttest.AssertRoundTrip(r, ct.NewLinearTransform1D(4, -3), []float64{0, 1, 2.5}, cttest.DefaultTolerance))
	require.True(t, cttest.AssertRoundTrip(r, ct.NewLinearTransform1D(0, 7), []float64{1}, 0), "constant has no inverse")
	require.Empty(t, r.msgs)

	require.False(t, cttest.AssertRoundTrip(r, drift{ct.NewLinearTransform1D(1, 0)}, []float64{1}, cttest.DefaultTolerance))
	require.NotEmpty(t, r.msgs)
}

func TestAssertCapabilities(t *testing.T) {
	r := &recorder{}
	require.True(t, cttest.AssertCapabilities(r, ct.NewAffineTransform2D(1, 2, 3, 4, 5, 6)))
	require.Empty(t, r.msgs)

	require.False(t, cttest.AssertCapabilities(r, liar{ct.NewAffineTransform2D(1, 2, 3, 4, 5, 6)}))
	require.Len(t, r.msgs, 1)
}

func TestAssertSingleMatchesBulk(t *testing.T) {
	r := &recorder{}
	pts := cttest.RandomPoints(rand.New(rand.NewSource(2)), 10, 2, -1, 1)
	require.True(t, cttest.AssertSingleMatchesBulk(r, ct.NewAffineTransform2D(1, 2, 3, 4, 5, 6), pts))
	require.Empty(t, r.msgs)
}
