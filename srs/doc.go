// SPDX-License-Identifier: MIT

// Package srs plugs spatial reference systems into the transform factory.
//
// The core ct package deliberately carries no projection catalog: map
// projections are supplied by parameterized transform providers. This package
// is such a provider. It registers the "Proj4" classification, whose two string
// parameters name a source and a target spatial reference in any form accepted
// by github.com/ctessum/geom/proj (proj4 strings, WKT, or the built-in codes).
//
// Usage:
//
//	f, _ := ct.NewFactory(ct.WithProvider(srs.Provider{}))
//	params := srs.Parameters.NewList()
//	_ = params.Set("source", "+proj=longlat")
//	_ = params.Set("target", srs.WebMercator)
//	tr, _ := f.CreateParameterizedTransform(srs.Classification, params)
//
// The resulting transform is 2-D (it implements ct.MathTransform2D) and its
// inverse swaps source and target. Geographic ordinates are in degrees,
// longitude first.
package srs
