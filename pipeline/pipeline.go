// SPDX-License-Identifier: MIT

// Package pipeline describes chains of transforms in TOML and resolves them
// through a ct.Factory.
//
// A pipeline is an ordered list of steps. Each step is either a registered
// classification with parameters or an explicit homogeneous matrix, optionally
// inverted and optionally embedded in a pass-through transform:
//
//	name = "log scale then shift"
//
//	[[step]]
//	classification = "Logarithmic"
//	first_affected_ordinate = 1
//	[step.parameters]
//	base = 10.0
//
//	[[step]]
//	matrix = [[1.0, 0.0, 5.0], [0.0, 1.0, 0.0], [0.0, 0.0, 1.0]]
//
// Build concatenates the steps in file order, so adjacent matrix steps fold
// into a single matrix exactly as ct.Concatenate does.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/geoct/ct"
	"github.com/katalvlaran/geoct/matrix"
)

var (
	// ErrEmptyPipeline indicates a configuration without steps.
	ErrEmptyPipeline = errors.New("pipeline: no steps")

	// ErrInvalidStep indicates a step with neither or both of classification and matrix.
	ErrInvalidStep = errors.New("pipeline: step needs exactly one of classification or matrix")

	// ErrUnknownKey indicates a key the configuration format does not define.
	ErrUnknownKey = errors.New("pipeline: unknown key")
)

// Step is one stage of a pipeline.
type Step struct {
	Classification        string         `toml:"classification"`
	Matrix                [][]float64    `toml:"matrix"`
	FirstAffectedOrdinate int            `toml:"first_affected_ordinate"`
	NumTrailingOrdinates  int            `toml:"num_trailing_ordinates"`
	Inverse               bool           `toml:"inverse"`
	Parameters            map[string]any `toml:"parameters"`
}

// Config is a decoded pipeline file.
type Config struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"step"`
}

// Decode reads a pipeline from r. Keys outside the format are rejected so
// that a misspelt option never silently falls back to a default.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decode: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads a pipeline file.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", path, err)
	}

	return &cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%s: %w", strings.Join(names, ", "), ErrUnknownKey)
}

// Build resolves every step through f and concatenates them in order.
// Implementation:
//   - Stage 1: build the step transform (provider or matrix).
//   - Stage 2: invert it when requested.
//   - Stage 3: embed it in a pass-through when leading or trailing ordinates are set.
//   - Stage 4: concatenate onto the transform of the previous steps.
//
// Errors:
//   - ErrEmptyPipeline, ErrInvalidStep; factory errors wrapped with the step index.
func (c *Config) Build(f *ct.Factory) (ct.MathTransform, error) {
	if len(c.Steps) == 0 {
		return nil, ErrEmptyPipeline
	}
	var (
		acc, tr ct.MathTransform
		err     error
	)
	for i := range c.Steps {
		if tr, err = c.Steps[i].build(f); err != nil {
			return nil, fmt.Errorf("pipeline: step %d: %w", i, err)
		}
		if acc == nil {
			acc = tr
			continue
		}
		if acc, err = f.CreateConcatenatedTransform(acc, tr); err != nil {
			return nil, fmt.Errorf("pipeline: step %d: %w", i, err)
		}
	}

	return acc, nil
}

func (s *Step) build(f *ct.Factory) (ct.MathTransform, error) {
	hasClass, hasMatrix := s.Classification != "", len(s.Matrix) > 0
	if hasClass == hasMatrix {
		return nil, ErrInvalidStep
	}

	var (
		tr  ct.MathTransform
		err error
	)
	if hasMatrix {
		if len(s.Parameters) > 0 {
			return nil, fmt.Errorf("parameters given with a matrix: %w", ErrInvalidStep)
		}
		var m *matrix.Dense
		if m, err = matrix.NewDenseFromRows(s.Matrix); err != nil {
			return nil, err
		}
		tr, err = f.CreateAffineTransform(m)
	} else {
		tr, err = s.parameterized(f)
	}
	if err != nil {
		return nil, err
	}

	if s.Inverse {
		if tr, err = tr.Inverse(); err != nil {
			return nil, err
		}
	}

	return f.CreatePassThroughTransform(s.FirstAffectedOrdinate, tr, s.NumTrailingOrdinates)
}

func (s *Step) parameterized(f *ct.Factory) (ct.MathTransform, error) {
	p, err := f.GetMathTransformProvider(s.Classification)
	if err != nil {
		return nil, err
	}
	params := p.Parameters().NewList()
	if err = params.SetAll(s.Parameters); err != nil {
		return nil, err
	}

	return f.CreateParameterizedTransform(p.Classification(), params)
}
