// SPDX-License-Identifier: MIT

package srs

import (
	"fmt"

	"github.com/ctessum/geom/proj"

	"github.com/katalvlaran/geoct/ct"
)

// Classification is the registry name of the provider.
const Classification = "Proj4"

// WebMercator is the spherical web mercator definition used by slippy maps.
const WebMercator = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

// Parameters is the schema of the provider: two required definitions.
var Parameters = &ct.ParameterListDescriptor{
	Name: Classification,
	Params: []ct.ParameterDescriptor{
		{Name: "source", Kind: ct.KindString, Required: true},
		{Name: "target", Kind: ct.KindString, Required: true},
	},
}

// Provider implements ct.Provider for the "Proj4" classification.
type Provider struct{}

// Classification returns "Proj4".
func (Provider) Classification() string { return Classification }

// Parameters returns the shared schema.
func (Provider) Parameters() *ct.ParameterListDescriptor { return Parameters }

// Create parses both definitions and builds the forward and reverse functions.
func (Provider) Create(params *ct.ParameterList) (ct.MathTransform, error) {
	source, err := params.Text("source")
	if err != nil {
		return nil, err
	}
	target, err := params.Text("target")
	if err != nil {
		return nil, err
	}
	tr, err := NewTransform(source, target)
	if err != nil {
		return nil, err
	}

	return tr, nil
}

// NewTransform builds the 2-D transform from the source spatial reference to
// the target one.
// Implementation:
//   - Stage 1: parse both definitions with proj.Parse.
//   - Stage 2: build the forward and the reverse proj.Transformer up front, so
//     Inverse never fails.
//
// Errors:
//   - ErrInvalidDefinition wrapping the parser or transformer error.
func NewTransform(source, target string) (*Transform, error) {
	src, err := parse("source", source)
	if err != nil {
		return nil, err
	}
	dst, err := parse("target", target)
	if err != nil {
		return nil, err
	}
	fwd, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("srs: %s to %s: %v: %w", source, target, err, ErrInvalidDefinition)
	}
	rev, err := dst.NewTransform(src)
	if err != nil {
		return nil, fmt.Errorf("srs: %s to %s: %v: %w", target, source, err, ErrInvalidDefinition)
	}

	t := &Transform{source: source, target: target, src: src, dst: dst, fn: fwd}
	t.inverse = &Transform{source: target, target: source, src: dst, dst: src, fn: rev, inverse: t}

	return t, nil
}

func parse(role, def string) (*proj.SR, error) {
	sr, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("srs: %s %q: %v: %w", role, def, err, ErrInvalidDefinition)
	}

	return sr, nil
}
