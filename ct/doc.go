// SPDX-License-Identifier: MIT

// Package ct transforms coordinate tuples between N-dimensional spaces.
//
// 🚀 What is ct?
//
//	A closed family of immutable math transforms behind one interface:
//		• Linear: identity, 1-D scale/offset, 1-D constant, 2-D affine, general (projective) matrix
//		• Nonlinear 1-D: exponential and logarithmic, mutual inverses sharing a base
//		• Composition: concatenation (matrix product when both steps are linear)
//		• Embedding: pass-through of a sub-transform over a slice of ordinates
//		• Factory: classification-keyed providers (Affine, Exponential, Logarithmic, …)
//
// ✨ Guarantees:
//
//   - Bulk Transform works on flattened, tuple-major ordinate arrays; source and
//     target may be the same array, even with overlapping regions.
//   - NaN propagates; ConstantTransform1D returns its stored NaN bit pattern exactly.
//   - A transform with DimSource()==DimTarget()==1 implements MathTransform1D, and
//     2→2 implements MathTransform2D, except projective matrix transforms.
//   - Transforms are immutable and safe for concurrent use without locks.
//
// ⚙️ Usage:
//
//	f, _ := ct.NewFactory()
//	exp, _ := f.CreateParameterizedTransform("Exponential", nil) // 10^x
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {0, 1}})
//	aff, _ := f.CreateAffineTransform(m)                         // 2x+1
//	tr, _ := f.CreateConcatenatedTransform(aff, exp)             // 10^(2x+1)
//	out, _ := ct.TransformAll(tr, []float64{0, 1, 2})
//
// Projection equations (Mercator, Lambert, …) are not part of this package;
// they plug in as Providers registered on the Factory.
package ct
