// SPDX-License-Identifier: MIT

// Package matrix provides the small dense matrix used to describe affine and
// projective maps in homogeneous coordinates.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Affine helpers: IsAffine, IsIdentity, CopySubMatrix.
//   - Kernels: Mul (standard product) and Inverse (pivoted LU via gonum).
//
// A matrix with numRow rows and numCol columns describes a map from
// numCol-1 source ordinates to numRow-1 target ordinates. The last row is
// conventionally [0,…,0,1]; IsAffine checks this exactly and never assumes it.
//
// Matrices are mutable while being built. Every transform that wraps a matrix
// copies the matrix, so callers may keep editing their own instance.
package matrix
