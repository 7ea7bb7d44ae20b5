// SPDX-License-Identifier: MIT
// Package ct: sentinel error set.
// All constructors and transforms return these sentinels (possibly wrapped
// with an operation tag); callers match them with errors.Is.

package ct

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil -> illegal argument -> dimension mismatch -> array bounds.
// Numeric outcomes (±Inf, NaN, underflow) are values, never errors.

var (
	// ErrNilTransform indicates a nil MathTransform argument.
	ErrNilTransform = errors.New("ct: nil transform")

	// ErrIllegalArgument indicates a nonsensical argument: negative ordinate
	// counts, a non-positive exponential base, a non-contiguous dimension set…
	ErrIllegalArgument = errors.New("ct: illegal argument")

	// ErrMismatchedDimension indicates incompatible dimensionality: a point
	// whose length differs from DimSource, an ordinate array whose length is
	// not a multiple of DimSource, or concatenated steps that do not chain.
	ErrMismatchedDimension = errors.New("ct: mismatched dimension")

	// ErrOutOfRange indicates that a bulk transform would read or write past
	// the end of an ordinate array.
	ErrOutOfRange = errors.New("ct: ordinate range out of bounds")

	// ErrNonInvertible is returned by Inverse when no exact inverse exists.
	ErrNonInvertible = errors.New("ct: transform is not invertible")

	// ErrNotSeparable is returned when a sub-transform cannot be isolated for
	// the requested input dimensions.
	ErrNotSeparable = errors.New("ct: transform is not separable on the requested dimensions")

	// ErrNoSuchClassification indicates that no provider is registered under
	// the requested classification name.
	ErrNoSuchClassification = errors.New("ct: no such classification")

	// ErrDuplicateClassification indicates a second provider for a name that
	// is already registered.
	ErrDuplicateClassification = errors.New("ct: classification already registered")

	// ErrUnknownParameter indicates a parameter name the descriptor does not declare.
	ErrUnknownParameter = errors.New("ct: unknown parameter")

	// ErrParameterType indicates a parameter value of the wrong kind.
	ErrParameterType = errors.New("ct: wrong parameter type")

	// ErrMissingParameter indicates a required parameter without a value.
	ErrMissingParameter = errors.New("ct: missing parameter value")
)

// Operation name constants for unified error wrapping.
const (
	opTransform      = "Transform"
	opTransformPoint = "TransformPoint"
	opTransformAll   = "TransformAll"
	opInverse        = "Inverse"
	opAffine         = "NewAffineTransform"
	opConcatenate    = "Concatenate"
	opPassThrough    = "NewPassThroughTransform"
	opSubTransform   = "SubTransform"
	opExponential    = "NewExponentialTransform1D"
	opLogarithmic    = "NewLogarithmicTransform1D"
	opParameterized  = "CreateParameterizedTransform"
	opProvider       = "GetMathTransformProvider"
	opRegister       = "Register"
	opParameter      = "ParameterList"
)

// ctErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func ctErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
