// SPDX-License-Identifier: MIT

package srs

import "errors"

var (
	// ErrInvalidDefinition indicates a spatial reference the proj parser rejects.
	ErrInvalidDefinition = errors.New("srs: invalid spatial reference definition")

	// ErrProjection indicates a point the projection library could not convert.
	ErrProjection = errors.New("srs: projection failed")
)
