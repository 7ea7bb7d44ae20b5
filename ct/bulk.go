// SPDX-License-Identifier: MIT

// Package ct - shared plumbing for bulk ordinate arrays.
//
// Purpose:
//   - Validate offsets and lengths once, with identical semantics for every variant.
//   - Make in-place and overlapping transforms safe: every kernel processes points
//     in forward order and reads a whole source tuple before writing its target
//     tuple, and sourceRegion hands it a private copy whenever forward order could
//     overwrite ordinates not yet read.

package ct

import (
	"fmt"
	"unsafe"
)

// checkBulk validates a bulk Transform call against the transform dimensions.
// Complexity: O(1).
func checkBulk(dimS, dimT int, src []float64, srcOff int, dst []float64, dstOff, numPts int) error {
	if numPts < 0 {
		return fmt.Errorf("numPts=%d: %w", numPts, ErrIllegalArgument)
	}
	if !fitsPoints(len(src), srcOff, numPts, dimS) {
		return fmt.Errorf("source: %d points of %d from offset %d in %d: %w", numPts, dimS, srcOff, len(src), ErrOutOfRange)
	}
	if !fitsPoints(len(dst), dstOff, numPts, dimT) {
		return fmt.Errorf("target: %d points of %d from offset %d in %d: %w", numPts, dimT, dstOff, len(dst), ErrOutOfRange)
	}

	return nil
}

// fitsPoints reports whether numPts tuples of dim ordinates starting at off
// lie within a slice of length n. The count is compared by division so the
// product never overflows.
func fitsPoints(n, off, numPts, dim int) bool {
	if off < 0 || off > n {
		return false
	}
	if dim == 0 {
		return true
	}

	return numPts <= (n-off)/dim
}

// sourceRegion returns the numPts*dimS source ordinates starting at srcOff,
// safe to read while the target region is written point by point in forward order.
// Implementation:
//   - Stage 1: slice both regions.
//   - Stage 2: if they do not overlap, return the source slice as is.
//   - Stage 3: forward order is safe when the target starts at or before the
//     source and never grows faster (dimT ≤ dimS); otherwise copy the source.
//
// Complexity:
//   - Time O(1) without copy, O(numPts*dimS) with copy.
func sourceRegion(src []float64, srcOff int, dst []float64, dstOff, numPts, dimS, dimT int) []float64 {
	in := src[srcOff : srcOff+numPts*dimS]
	out := dst[dstOff : dstOff+numPts*dimT]
	if !overlaps(in, out) {
		return in
	}
	if dimT <= dimS && start(out) <= start(in) {
		return in
	}

	return append([]float64(nil), in...)
}

// overlaps reports whether x and y share any element of memory.
func overlaps(x, y []float64) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}

	return start(x) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		start(y) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// start returns the address of the first element of a non-empty slice.
func start(x []float64) uintptr { return uintptr(unsafe.Pointer(&x[0])) }

// transformPoint is the TransformPoint implementation shared by all variants:
// it routes a single point through the bulk path.
func transformPoint(t MathTransform, pt []float64) ([]float64, error) {
	if len(pt) != t.DimSource() {
		return nil, ctErrorf(opTransformPoint, fmt.Errorf("point has %d ordinates, want %d: %w", len(pt), t.DimSource(), ErrMismatchedDimension))
	}
	out := make([]float64, t.DimTarget())
	if err := t.Transform(pt, 0, out, 0, 1); err != nil {
		return nil, ctErrorf(opTransformPoint, err)
	}

	return out, nil
}

// TransformAll transforms a whole flattened, tuple-major ordinate array and
// returns a new array holding the results.
// Implementation:
//   - Stage 1: len(ordinates) must be a multiple of DimSource.
//   - Stage 2: allocate len/DimSource*DimTarget ordinates and run the bulk path.
//
// Errors:
//   - ErrNilTransform, ErrMismatchedDimension; errors from tr.Transform.
//
// Complexity:
//   - Time O(numPts × cost per point), Space O(numPts*DimTarget).
func TransformAll(tr MathTransform, ordinates []float64) ([]float64, error) {
	if tr == nil {
		return nil, ctErrorf(opTransformAll, ErrNilTransform)
	}
	dimS := tr.DimSource()
	if dimS == 0 {
		if len(ordinates) != 0 {
			return nil, ctErrorf(opTransformAll, ErrMismatchedDimension)
		}

		return []float64{}, nil
	}
	if len(ordinates)%dimS != 0 {
		return nil, ctErrorf(opTransformAll, fmt.Errorf("%d ordinates is not a multiple of %d: %w", len(ordinates), dimS, ErrMismatchedDimension))
	}
	numPts := len(ordinates) / dimS
	out := make([]float64, numPts*tr.DimTarget())
	if err := tr.Transform(ordinates, 0, out, 0, numPts); err != nil {
		return nil, ctErrorf(opTransformAll, err)
	}

	return out, nil
}

// CheckTransformArgs validates a bulk Transform call for implementations
// outside this package. It returns the same errors as the built-in variants.
func CheckTransformArgs(tr MathTransform, src []float64, srcOff int, dst []float64, dstOff, numPts int) error {
	return checkBulk(tr.DimSource(), tr.DimTarget(), src, srcOff, dst, dstOff, numPts)
}
