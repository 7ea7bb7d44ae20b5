// SPDX-License-Identifier: MIT

package ct

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// ParameterKind is the value type a parameter accepts.
type ParameterKind int

const (
	// KindFloat parameters hold a float64. Integer and numeric string inputs
	// are converted.
	KindFloat ParameterKind = iota

	// KindString parameters hold a string. Numbers are formatted.
	KindString
)

func (k ParameterKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}

	return fmt.Sprintf("ParameterKind(%d)", int(k))
}

// ParameterDescriptor declares one named parameter.
//
// Name     – lookup key, matched case-insensitively.
// Kind     – accepted value type.
// Default  – value used when none is set; nil means "no default".
// Required – a missing value without a default is an error.
type ParameterDescriptor struct {
	Name     string
	Kind     ParameterKind
	Default  any
	Required bool
}

// ParameterListDescriptor is the schema a provider publishes.
// Dynamic, when set, resolves names outside Params (e.g. OGC "elt_i_j").
type ParameterListDescriptor struct {
	Name    string
	Params  []ParameterDescriptor
	Dynamic func(name string) (ParameterDescriptor, bool)
}

// Lookup returns the descriptor declared for name.
func (d *ParameterListDescriptor) Lookup(name string) (ParameterDescriptor, bool) {
	key := strings.ToLower(name)
	for _, p := range d.Params {
		if strings.ToLower(p.Name) == key {
			return p, true
		}
	}
	if d.Dynamic != nil {
		return d.Dynamic(key)
	}

	return ParameterDescriptor{}, false
}

// NewList returns an empty value list bound to d; every getter falls back to
// the declared defaults.
func (d *ParameterListDescriptor) NewList() *ParameterList {
	return &ParameterList{desc: d, values: make(map[string]any)}
}

// ParameterList holds parameter values for one transform construction.
// It is not safe for concurrent mutation.
type ParameterList struct {
	desc   *ParameterListDescriptor
	values map[string]any
}

// Descriptor returns the schema the list is bound to.
func (l *ParameterList) Descriptor() *ParameterListDescriptor { return l.desc }

// Set stores a value after checking its name and kind.
// Errors:
//   - ErrUnknownParameter, ErrParameterType.
func (l *ParameterList) Set(name string, v any) error {
	pd, ok := l.desc.Lookup(name)
	if !ok {
		return ctErrorf(opParameter, fmt.Errorf("%s has no parameter %q: %w", l.desc.Name, name, ErrUnknownParameter))
	}
	norm, err := normalizeValue(pd, v)
	if err != nil {
		return ctErrorf(opParameter, err)
	}
	l.values[strings.ToLower(name)] = norm

	return nil
}

// SetAll stores every entry of values, in sorted name order, and stops at the
// first error.
func (l *ParameterList) SetAll(values map[string]any) error {
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := l.Set(n, values[n]); err != nil {
			return err
		}
	}

	return nil
}

// Names returns the names of explicitly set values, sorted.
func (l *ParameterList) Names() []string {
	names := make([]string, 0, len(l.values))
	for n := range l.values {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Float returns a float parameter, falling back to its default.
// Errors:
//   - ErrUnknownParameter, ErrParameterType, ErrMissingParameter.
func (l *ParameterList) Float(name string) (float64, error) {
	v, err := l.value(name, KindFloat)
	if err != nil {
		return 0, err
	}

	return v.(float64), nil
}

// Text returns a string parameter, falling back to its default.
// Errors:
//   - ErrUnknownParameter, ErrParameterType, ErrMissingParameter.
func (l *ParameterList) Text(name string) (string, error) {
	v, err := l.value(name, KindString)
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (l *ParameterList) value(name string, kind ParameterKind) (any, error) {
	pd, ok := l.desc.Lookup(name)
	if !ok {
		return nil, ctErrorf(opParameter, fmt.Errorf("%s has no parameter %q: %w", l.desc.Name, name, ErrUnknownParameter))
	}
	if pd.Kind != kind {
		return nil, ctErrorf(opParameter, fmt.Errorf("%q is %v, not %v: %w", name, pd.Kind, kind, ErrParameterType))
	}
	if v, ok := l.values[strings.ToLower(name)]; ok {
		return v, nil
	}
	if pd.Default != nil {
		return normalizeValue(pd, pd.Default)
	}

	return nil, ctErrorf(opParameter, fmt.Errorf("%q: %w", name, ErrMissingParameter))
}

// normalizeValue converts v to the canonical Go type of pd.Kind: any numeric
// type or numeric string for floats, any scalar for strings. Booleans and nil
// are never coerced.
func normalizeValue(pd ParameterDescriptor, v any) (any, error) {
	var (
		out any
		err error
	)
	switch v.(type) {
	case nil, bool:
		err = fmt.Errorf("unsupported type %T", v)
	default:
		switch pd.Kind {
		case KindFloat:
			out, err = cast.ToFloat64E(v)
		case KindString:
			out, err = cast.ToStringE(v)
		default:
			err = fmt.Errorf("unknown kind %d", int(pd.Kind))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%q wants %v: %v: %w", pd.Name, pd.Kind, err, ErrParameterType)
	}

	return out, nil
}
