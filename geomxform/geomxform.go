// SPDX-License-Identifier: MIT

// Package geomxform applies 2-D MathTransforms to github.com/ctessum/geom
// geometries.
//
// Two entry points:
//   - Transformer adapts a transform to proj.Transformer, the callback every
//     geom.Geom accepts in its own Transform method.
//   - Transform flattens all vertices of a geometry into one ordinate array,
//     runs a single bulk ct.MathTransform.Transform call over it and rebuilds a
//     geometry of the same shape. Point, MultiPoint, LineString,
//     MultiLineString, Polygon and MultiPolygon take this path;
//     GeometryCollection members are handled one by one; any other geometry
//     falls back to its own Transform method driven by Transformer.
//
// The input geometry is never modified.
package geomxform

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"

	"github.com/katalvlaran/geoct/ct"
)

// ErrNilGeometry indicates a nil geometry argument.
var ErrNilGeometry = errors.New("geomxform: nil geometry")

// check requires a transform from 2-D to 2-D.
func check(tr ct.MathTransform) error {
	if tr == nil {
		return fmt.Errorf("geomxform: %w", ct.ErrNilTransform)
	}
	if tr.DimSource() != 2 || tr.DimTarget() != 2 {
		return fmt.Errorf("geomxform: %v maps %d to %d ordinates, want 2 to 2: %w",
			tr, tr.DimSource(), tr.DimTarget(), ct.ErrMismatchedDimension)
	}

	return nil
}

// Transformer adapts a 2-D transform to proj.Transformer. Transforms with a
// Transform2D method are used directly; others (projective matrices) go
// through TransformPoint.
func Transformer(tr ct.MathTransform) (proj.Transformer, error) {
	if err := check(tr); err != nil {
		return nil, err
	}
	if t2, ok := tr.(ct.MathTransform2D); ok {
		return t2.Transform2D, nil
	}

	return func(x, y float64) (float64, float64, error) {
		p, err := tr.TransformPoint([]float64{x, y})
		if err != nil {
			return math.NaN(), math.NaN(), err
		}

		return p[0], p[1], nil
	}, nil
}

// Transform returns a copy of g with every vertex mapped by tr.
// Implementation:
//   - Stage 1: validate arguments; dispatch collections and foreign types.
//   - Stage 2: gather vertices into a tuple-major array (x0, y0, x1, y1, …).
//   - Stage 3: one ct.TransformAll call.
//   - Stage 4: rebuild the same structure from the transformed array.
//
// Errors:
//   - ErrNilGeometry, ct.ErrNilTransform, ct.ErrMismatchedDimension.
//   - Errors of tr itself, wrapped.
//
// Complexity:
//   - Time O(V × cost per point), Space O(V) for V vertices.
func Transform(g geom.Geom, tr ct.MathTransform) (geom.Geom, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	if err := check(tr); err != nil {
		return nil, err
	}

	switch g := g.(type) {
	case geom.GeometryCollection:
		out := make(geom.GeometryCollection, len(g))
		var (
			i   int
			err error
		)
		for i = range g {
			if out[i], err = Transform(g[i], tr); err != nil {
				return nil, fmt.Errorf("geomxform: member %d: %w", i, err)
			}
		}

		return out, nil
	case geom.Point, geom.MultiPoint, geom.LineString, geom.MultiLineString, geom.Polygon, geom.MultiPolygon:
		coords, err := ct.TransformAll(tr, appendCoords(nil, g))
		if err != nil {
			return nil, fmt.Errorf("geomxform: %T: %w", g, err)
		}
		out, _ := rebuild(g, coords)

		return out, nil
	default:
		fn, err := Transformer(tr)
		if err != nil {
			return nil, err
		}
		out, err := g.Transform(fn)
		if err != nil {
			return nil, fmt.Errorf("geomxform: %T: %w", g, err)
		}

		return out, nil
	}
}

// appendCoords appends the vertices of g, in storage order, to buf.
func appendCoords(buf []float64, g geom.Geom) []float64 {
	switch g := g.(type) {
	case geom.Point:
		buf = append(buf, g.X, g.Y)
	case geom.MultiPoint:
		buf = appendPath(buf, g)
	case geom.LineString:
		buf = appendPath(buf, g)
	case geom.MultiLineString:
		for _, l := range g {
			buf = appendPath(buf, l)
		}
	case geom.Polygon:
		for _, r := range g {
			buf = appendPath(buf, r)
		}
	case geom.MultiPolygon:
		for _, p := range g {
			buf = appendCoords(buf, p)
		}
	}

	return buf
}

func appendPath(buf []float64, path []geom.Point) []float64 {
	for _, p := range path {
		buf = append(buf, p.X, p.Y)
	}

	return buf
}

// rebuild builds a geometry shaped like g from the leading ordinates of
// coords and returns the ordinates it did not consume.
func rebuild(g geom.Geom, coords []float64) (geom.Geom, []float64) {
	switch g := g.(type) {
	case geom.Point:
		return geom.Point{X: coords[0], Y: coords[1]}, coords[2:]
	case geom.MultiPoint:
		path, rest := takePath(len(g), coords)

		return geom.MultiPoint(path), rest
	case geom.LineString:
		path, rest := takePath(len(g), coords)

		return geom.LineString(path), rest
	case geom.MultiLineString:
		out := make(geom.MultiLineString, len(g))
		for i, l := range g {
			out[i], coords = takePath(len(l), coords)
		}

		return out, coords
	case geom.Polygon:
		out := make(geom.Polygon, len(g))
		for i, r := range g {
			out[i], coords = takePath(len(r), coords)
		}

		return out, coords
	case geom.MultiPolygon:
		out := make(geom.MultiPolygon, len(g))
		var p geom.Geom
		for i := range g {
			p, coords = rebuild(g[i], coords)
			out[i] = p.(geom.Polygon)
		}

		return out, coords
	}

	return g, coords
}

func takePath(n int, coords []float64) ([]geom.Point, []float64) {
	path := make([]geom.Point, n)
	for i := range path {
		path[i] = geom.Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	return path, coords[2*n:]
}
