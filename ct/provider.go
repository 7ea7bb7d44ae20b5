// SPDX-License-Identifier: MIT

// Package ct - parameterized transform providers.
//
// A Provider maps a classification name ("Affine", "Exponential", …) and a
// parameter list to a MathTransform. The core ships the providers it can
// express without an external projection catalog; everything else is injected
// into the Factory by the caller.

package ct

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/geoct/matrix"
)

// Provider builds transforms for one classification.
type Provider interface {
	// Classification returns the registry name, e.g. "Exponential".
	Classification() string

	// Parameters returns the schema accepted by Create. The value is shared
	// and must not be modified.
	Parameters() *ParameterListDescriptor

	// Create builds a transform; params is bound to Parameters().
	Create(params *ParameterList) (MathTransform, error)
}

// Built-in classification names.
const (
	ClassAffine      = "Affine"
	ClassExponential = "Exponential"
	ClassLogarithmic = "Logarithmic"
)

// Affine provider defaults: a 2-D identity (3×3 homogeneous matrix).
// MaxAffineSize bounds num_row and num_col.
const (
	DefaultAffineRows = 3
	DefaultAffineCols = 3
	MaxAffineSize     = 256
)

// DefaultProviders returns the built-in providers: Affine, Exponential, Logarithmic.
func DefaultProviders() []Provider {
	return []Provider{AffineProvider{}, ExponentialProvider{}, LogarithmicProvider{}}
}

// ---------- Affine ----------

// AffineProvider implements the OGC "Affine" parameters: num_row, num_col and
// one elt_<row>_<col> per matrix element, each defaulting to the identity.
type AffineProvider struct{}

var affineParams = &ParameterListDescriptor{
	Name: ClassAffine,
	Params: []ParameterDescriptor{
		{Name: "num_row", Kind: KindFloat, Default: float64(DefaultAffineRows)},
		{Name: "num_col", Kind: KindFloat, Default: float64(DefaultAffineCols)},
	},
	Dynamic: func(name string) (ParameterDescriptor, bool) {
		i, j, ok := parseElementName(name)
		if !ok {
			return ParameterDescriptor{}, false
		}
		def := 0.0
		if i == j {
			def = 1
		}

		return ParameterDescriptor{Name: name, Kind: KindFloat, Default: def}, true
	},
}

// parseElementName recognizes "elt_<row>_<col>" with non-negative indices.
func parseElementName(name string) (row, col int, ok bool) {
	rest, ok := strings.CutPrefix(name, "elt_")
	if !ok {
		return 0, 0, false
	}
	rs, cs, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, 0, false
	}
	var err error
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, false
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, false
	}
	// reject "+1", "01" and negatives
	if row < 0 || col < 0 || strconv.Itoa(row) != rs || strconv.Itoa(col) != cs {
		return 0, 0, false
	}

	return row, col, true
}

// Classification returns "Affine".
func (AffineProvider) Classification() string { return ClassAffine }

// Parameters returns num_row, num_col and the dynamic elt_i_j names.
func (AffineProvider) Parameters() *ParameterListDescriptor { return affineParams }

// Create assembles the matrix and hands it to NewAffineTransform.
// Errors:
//   - ErrIllegalArgument for non-integral sizes, sizes outside
//     [1, MaxAffineSize], or an element set
//     outside the declared size.
func (AffineProvider) Create(params *ParameterList) (MathTransform, error) {
	rows, err := matrixSize(params, "num_row")
	if err != nil {
		return nil, err
	}
	cols, err := matrixSize(params, "num_col")
	if err != nil {
		return nil, err
	}
	for _, name := range params.Names() {
		if i, j, ok := parseElementName(name); ok && (i >= rows || j >= cols) {
			return nil, fmt.Errorf("%s outside %dx%d matrix: %w", name, rows, cols, ErrIllegalArgument)
		}
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = params.Float(fmt.Sprintf("elt_%d_%d", i, j)); err != nil {
				return nil, err
			}
			_ = m.Set(i, j, v)
		}
	}

	return NewAffineTransform(m)
}

func matrixSize(params *ParameterList, name string) (int, error) {
	v, err := params.Float(name)
	if err != nil {
		return 0, err
	}
	if v < 1 || v != math.Trunc(v) || v > MaxAffineSize {
		return 0, fmt.Errorf("%s=%g: %w", name, v, ErrIllegalArgument)
	}

	return int(v), nil
}

// ---------- Exponential / Logarithmic ----------

// ExponentialProvider builds y = scale·base^x (base=10, scale=1 by default).
type ExponentialProvider struct{}

var exponentialParams = &ParameterListDescriptor{
	Name: ClassExponential,
	Params: []ParameterDescriptor{
		{Name: "base", Kind: KindFloat, Default: 10.0},
		{Name: "scale", Kind: KindFloat, Default: 1.0},
	},
}

// Classification returns "Exponential".
func (ExponentialProvider) Classification() string { return ClassExponential }

// Parameters returns base and scale.
func (ExponentialProvider) Parameters() *ParameterListDescriptor { return exponentialParams }

// Create builds an ExponentialTransform1D.
func (ExponentialProvider) Create(params *ParameterList) (MathTransform, error) {
	base, err := params.Float("base")
	if err != nil {
		return nil, err
	}
	scale, err := params.Float("scale")
	if err != nil {
		return nil, err
	}

	tr, err := NewExponentialTransform1D(base, scale)
	if err != nil {
		return nil, err
	}

	return tr, nil
}

// LogarithmicProvider builds y = log_base(x) + offset (base=10, offset=0 by default).
type LogarithmicProvider struct{}

var logarithmicParams = &ParameterListDescriptor{
	Name: ClassLogarithmic,
	Params: []ParameterDescriptor{
		{Name: "base", Kind: KindFloat, Default: 10.0},
		{Name: "offset", Kind: KindFloat, Default: 0.0},
	},
}

// Classification returns "Logarithmic".
func (LogarithmicProvider) Classification() string { return ClassLogarithmic }

// Parameters returns base and offset.
func (LogarithmicProvider) Parameters() *ParameterListDescriptor { return logarithmicParams }

// Create builds a LogarithmicTransform1D.
func (LogarithmicProvider) Create(params *ParameterList) (MathTransform, error) {
	base, err := params.Float("base")
	if err != nil {
		return nil, err
	}
	offset, err := params.Float("offset")
	if err != nil {
		return nil, err
	}

	tr, err := NewLogarithmicTransform1D(base, offset)
	if err != nil {
		return nil, err
	}

	return tr, nil
}
