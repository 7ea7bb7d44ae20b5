// SPDX-License-Identifier: MIT

package ct

import (
	"fmt"

	"github.com/katalvlaran/geoct/matrix"
)

// SubTransform restricts tr to a contiguous run of input dimensions and
// reports which target dimensions the restricted transform produces.
// Implementation:
//   - Stage 1: validate inputDims (non-empty, strictly ascending, contiguous, in range).
//   - Stage 2: the full range returns tr itself; an identity returns an identity.
//   - Stage 3: dispatch on the variant:
//     PassThrough → leading/trailing identities, the exact sub-transform, or a
//     narrower pass-through around a (recursively) restricted sub-transform;
//     LinearTransform → keep the columns asked for and the rows that depend on
//     nothing else;
//     Concatenation → restrict first, then restrict second to first's outputs.
//
// Behavior highlights:
//   - For a pass-through at offset k over S, [0, k-1] and the trailing slice
//     yield identities and [k, k+S.DimSource-1] yields S itself.
//
// Errors:
//   - ErrNilTransform, ErrIllegalArgument for bad dimension sets,
//     ErrNotSeparable when the requested inputs influence outputs that also
//     depend on other inputs (or the variant cannot be decomposed).
func SubTransform(tr MathTransform, inputDims []int) (MathTransform, []int, error) {
	if tr == nil {
		return nil, nil, ctErrorf(opSubTransform, ErrNilTransform)
	}
	if err := checkDims(inputDims, tr.DimSource()); err != nil {
		return nil, nil, ctErrorf(opSubTransform, err)
	}
	res, outs, err := subTransform(tr, inputDims)
	if err != nil {
		return nil, nil, ctErrorf(opSubTransform, err)
	}

	return res, outs, nil
}

// checkDims validates a contiguous ascending run of indices below dim.
func checkDims(dims []int, dim int) error {
	if len(dims) == 0 {
		return fmt.Errorf("empty dimension set: %w", ErrIllegalArgument)
	}
	if dims[0] < 0 || dims[len(dims)-1] >= dim {
		return fmt.Errorf("dimensions %v outside [0,%d): %w", dims, dim, ErrIllegalArgument)
	}
	for i := 1; i < len(dims); i++ {
		if dims[i] != dims[i-1]+1 {
			return fmt.Errorf("dimensions %v are not contiguous: %w", dims, ErrIllegalArgument)
		}
	}

	return nil
}

// dimRange returns lo, lo+1, …, hi-1.
func dimRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}

func subTransform(tr MathTransform, dims []int) (MathTransform, []int, error) {
	lo, n := dims[0], len(dims)
	if lo == 0 && n == tr.DimSource() {
		return tr, dimRange(0, tr.DimTarget()), nil
	}
	if tr.IsIdentity() && tr.DimSource() == tr.DimTarget() {
		id, err := NewIdentityTransform(n)
		if err != nil {
			return nil, nil, err
		}
		return id, append([]int(nil), dims...), nil
	}

	switch v := tr.(type) {
	case PassThrough:
		return subPassThrough(v, lo, lo+n)
	case LinearTransform:
		return subLinear(v, lo, lo+n)
	case Concatenation:
		return subConcatenation(v, dims)
	}

	return nil, nil, fmt.Errorf("%v: %w", tr, ErrNotSeparable)
}

// subPassThrough restricts a pass-through to the source dimensions [lo, hi).
// Implementation:
//   - Stage 1: split [lo, hi) into leading, middle (inside the sub-transform)
//     and trailing parts.
//   - Stage 2: an empty middle yields an identity over the requested ordinates.
//   - Stage 3: restrict the sub-transform to the middle; wrap it with the
//     leading/trailing counts when those are non-zero.
func subPassThrough(p PassThrough, lo, hi int) (MathTransform, []int, error) {
	first := p.FirstAffectedOrdinate()
	sub := p.SubTransform()
	subS, subT := sub.DimSource(), sub.DimTarget()
	subEnd := first + subS

	// target index of a copied source ordinate
	mapOrd := func(i int) int {
		if i < first {
			return i
		}
		return i - subS + subT
	}

	midLo, midHi := max(lo, first), min(hi, subEnd)
	if midLo >= midHi {
		id, err := NewIdentityTransform(hi - lo)
		if err != nil {
			return nil, nil, err
		}
		outs := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			outs = append(outs, mapOrd(i))
		}
		return id, outs, nil
	}

	inner, innerOuts, err := subTransform(sub, dimRange(midLo-first, midHi-first))
	if err != nil {
		return nil, nil, err
	}
	lead, trail := midLo-lo, hi-midHi
	if (lead > 0 || trail > 0) && checkDims(innerOuts, subT) != nil {
		return nil, nil, fmt.Errorf("sub-transform outputs %v are not contiguous: %w", innerOuts, ErrNotSeparable)
	}
	res, err := NewPassThroughTransform(lead, inner, trail)
	if err != nil {
		return nil, nil, err
	}

	outs := make([]int, 0, lead+len(innerOuts)+trail)
	for i := lo; i < midLo; i++ {
		outs = append(outs, mapOrd(i))
	}
	for _, o := range innerOuts {
		outs = append(outs, first+o)
	}
	for i := midHi; i < hi; i++ {
		outs = append(outs, mapOrd(i))
	}

	return res, outs, nil
}

// subLinear keeps the columns [lo, hi) plus the translation column, and the
// output rows whose coefficients outside those columns are all zero.
// Implementation:
//   - Stage 1: scan every non-homogeneous row; keep it when independent of the
//     other inputs (constant rows are kept).
//   - Stage 2: the homogeneous row must be independent too, otherwise the
//     division by w mixes every input.
//   - Stage 3: assemble the (k+1)×(n+1) matrix and specialize it.
//
// Complexity:
//   - Time O(r*c).
func subLinear(l LinearTransform, lo, hi int) (MathTransform, []int, error) {
	m := l.Matrix()
	rows, cols := m.Shape()
	dimS := cols - 1
	n := hi - lo

	independent := func(r int) bool {
		var c int
		var v float64
		for c = 0; c < dimS; c++ {
			if c >= lo && c < hi {
				continue
			}
			v, _ = m.At(r, c)
			if v != 0 {
				return false
			}
		}
		return true
	}

	var kept []int
	var r int
	for r = 0; r < rows-1; r++ {
		if independent(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 || !independent(rows-1) {
		return nil, nil, fmt.Errorf("matrix rows depend on dimensions outside [%d,%d): %w", lo, hi, ErrNotSeparable)
	}

	res, err := matrix.NewDense(len(kept)+1, n+1)
	if err != nil {
		return nil, nil, err
	}
	var v float64
	sel := append(append([]int(nil), kept...), rows-1)
	for i, src := range sel {
		for j := 0; j < n; j++ {
			v, _ = m.At(src, lo+j)
			_ = res.Set(i, j, v)
		}
		v, _ = m.At(src, dimS)
		_ = res.Set(i, n, v)
	}
	t, err := NewAffineTransform(res)
	if err != nil {
		return nil, nil, err
	}

	return t, kept, nil
}

// subConcatenation restricts first, then second to first's output dimensions.
func subConcatenation(c Concatenation, dims []int) (MathTransform, []int, error) {
	t1, outs1, err := subTransform(c.First(), dims)
	if err != nil {
		return nil, nil, err
	}
	if checkDims(outs1, c.First().DimTarget()) != nil {
		return nil, nil, fmt.Errorf("intermediate dimensions %v are not contiguous: %w", outs1, ErrNotSeparable)
	}
	t2, outs2, err := subTransform(c.Second(), outs1)
	if err != nil {
		return nil, nil, err
	}
	res, err := Concatenate(t1, t2)
	if err != nil {
		return nil, nil, err
	}

	return res, outs2, nil
}
