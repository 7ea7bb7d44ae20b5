// SPDX-License-Identifier: MIT
// Package ct_test contains shared fixtures for the transform tests.

package ct_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/matrix"
)

// seed keeps every randomized test reproducible.
const seed = 20240611

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAffine builds a transform from literal matrix rows or fails the test.
func mustAffine(t testing.TB, rows [][]float64) ct.MathTransform {
	t.Helper()
	tr, err := ct.NewAffineTransform(mustRows(t, rows))
	require.NoError(t, err)

	return tr
}

// randomAffine returns a (dimT+1)×(dimS+1) affine matrix with coefficients in [-1, 1).
func randomAffine(t testing.TB, rng *rand.Rand, dimS, dimT int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(dimT+1, dimS+1)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < dimT; i++ {
		for j = 0; j <= dimS; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
	require.NoError(t, m.Set(dimT, dimS, 1))

	return m
}

// opaque hides every optional interface of the wrapped transform.
type opaque struct{ ct.MathTransform }
