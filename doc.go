// SPDX-License-Identifier: MIT

// Package geoct is a coordinate transformation engine: numeric maps between
// coordinate spaces, built from matrices or from named parameterized
// providers, composed, decomposed and applied to bulk ordinate arrays.
//
// What is in the box?
//
//	matrix/      dense homogeneous matrices: element access, sub-matrix copy,
//	             product, pivoted inverse (gonum), affine and identity checks
//	ct/          the MathTransform family: identity, 1-D linear and constant,
//	             2-D affine, general (possibly projective) matrix transforms,
//	             exponential and logarithmic 1-D transforms, concatenation,
//	             pass-through, sub-transform extraction and the provider
//	             registry behind Factory
//	cttest/      verification helpers: round trips, capability invariant,
//	             single point versus bulk agreement
//	srs/         "Proj4" provider backed by github.com/ctessum/geom/proj
//	geomxform/   applies 2-D transforms to github.com/ctessum/geom geometries
//	pipeline/    TOML descriptions of transform chains
//	cmd/geoct    CLI: list providers, stream CSV points through a pipeline
//
// Quick start:
//
//	f, _ := ct.NewFactory()
//	exp, _ := f.CreateParameterizedTransform("Exponential", nil) // 10^x
//	tr, _ := f.CreatePassThroughTransform(1, exp, 0)            // (x, 10^y)
//	out, _ := ct.TransformAll(tr, []float64{3, 2, 4, 1})        // [3 100 4 10]
//
// Transforms are immutable and safe for concurrent use. Numeric outcomes
// (±Inf, NaN) are values; misuse (bad dimensions, out-of-range offsets,
// unknown classifications) is reported through sentinel errors matched with
// errors.Is.
package geoct
