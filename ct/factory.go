// SPDX-License-Identifier: MIT

// Package ct - MathTransformFactory.
//
// Factory is the construction entry point: affine transforms from matrices,
// parameterized transforms from a classification name and parameter list,
// concatenations, pass-through embeddings and sub-transform extraction.
// The provider registry is its only mutable state; it is guarded by an
// RWMutex so lookups may run concurrently with registration.

package ct

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/geoct/matrix"
)

// Factory builds MathTransforms.
type Factory struct {
	mu        sync.RWMutex
	providers map[string]Provider // keyed by lower-cased classification
	log       logrus.FieldLogger
}

// NewFactory returns a factory with the built-in providers registered (unless
// WithoutDefaultProviders is given) followed by any WithProvider values.
//
// Errors:
//   - ErrDuplicateClassification when two providers share a name.
func NewFactory(opts ...Option) (*Factory, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Factory{providers: make(map[string]Provider), log: o.Logger}

	var all []Provider
	if o.DefaultProviders {
		all = append(all, DefaultProviders()...)
	}
	all = append(all, o.Providers...)
	for _, p := range all {
		if err := f.Register(p); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Register adds a provider under its classification (case-insensitive).
// Errors:
//   - ErrIllegalArgument for a nil provider or empty classification.
//   - ErrDuplicateClassification when the name is taken.
func (f *Factory) Register(p Provider) error {
	if p == nil || p.Classification() == "" {
		return ctErrorf(opRegister, fmt.Errorf("nil provider or empty classification: %w", ErrIllegalArgument))
	}
	key := strings.ToLower(p.Classification())

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.providers[key]; dup {
		return ctErrorf(opRegister, fmt.Errorf("%q: %w", p.Classification(), ErrDuplicateClassification))
	}
	f.providers[key] = p
	f.log.WithField("classification", p.Classification()).Debug("registered transform provider")

	return nil
}

// Classifications returns the registered names, sorted.
func (f *Factory) Classifications() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.providers))
	for _, p := range f.providers {
		names = append(names, p.Classification())
	}
	sort.Strings(names)

	return names
}

// GetMathTransformProvider returns the provider registered under classification.
// Errors:
//   - ErrNoSuchClassification.
func (f *Factory) GetMathTransformProvider(classification string) (Provider, error) {
	f.mu.RLock()
	p, ok := f.providers[strings.ToLower(classification)]
	f.mu.RUnlock()
	if !ok {
		return nil, ctErrorf(opProvider, fmt.Errorf("%q: %w", classification, ErrNoSuchClassification))
	}

	return p, nil
}

// CreateParameterizedTransform builds a transform through the named provider.
// A nil params uses every default of the provider's schema.
//
// Errors:
//   - ErrNoSuchClassification; ErrIllegalArgument when params is bound to a
//     different schema; any provider error.
func (f *Factory) CreateParameterizedTransform(classification string, params *ParameterList) (MathTransform, error) {
	p, err := f.GetMathTransformProvider(classification)
	if err != nil {
		return nil, ctErrorf(opParameterized, err)
	}
	if params == nil {
		params = p.Parameters().NewList()
	} else if params.Descriptor() != p.Parameters() {
		return nil, ctErrorf(opParameterized, fmt.Errorf("parameters for %q given to %q: %w",
			params.Descriptor().Name, p.Classification(), ErrIllegalArgument))
	}
	tr, err := p.Create(params)
	if err != nil {
		return nil, ctErrorf(opParameterized, fmt.Errorf("%s: %w", p.Classification(), err))
	}
	f.logCreated(p.Classification(), tr)

	return tr, nil
}

// CreateAffineTransform is NewAffineTransform.
func (f *Factory) CreateAffineTransform(m *matrix.Dense) (MathTransform, error) {
	tr, err := NewAffineTransform(m)
	if err != nil {
		return nil, err
	}
	f.logCreated(ClassAffine, tr)

	return tr, nil
}

// CreateConcatenatedTransform is Concatenate.
func (f *Factory) CreateConcatenatedTransform(tr1, tr2 MathTransform) (MathTransform, error) {
	tr, err := Concatenate(tr1, tr2)
	if err != nil {
		return nil, err
	}
	f.logCreated("Concatenated", tr)

	return tr, nil
}

// CreatePassThroughTransform is NewPassThroughTransform; (0, sub, 0) returns sub.
func (f *Factory) CreatePassThroughTransform(first int, sub MathTransform, numTrailing int) (MathTransform, error) {
	tr, err := NewPassThroughTransform(first, sub, numTrailing)
	if err != nil {
		return nil, err
	}
	f.logCreated("PassThrough", tr)

	return tr, nil
}

// CreateSubTransform is SubTransform.
func (f *Factory) CreateSubTransform(tr MathTransform, inputDims []int) (MathTransform, []int, error) {
	return SubTransform(tr, inputDims)
}

func (f *Factory) logCreated(kind string, tr MathTransform) {
	f.log.WithFields(logrus.Fields{
		"classification": kind,
		"dim_source":     tr.DimSource(),
		"dim_target":     tr.DimTarget(),
	}).Debug("created math transform")
}
