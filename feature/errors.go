// SPDX-License-Identifier: MIT
// Package feature: sentinel error set. All exported operations return these
// sentinels (optionally wrapped with context); tests match via errors.Is.

package feature

import "errors"

var (
	// ErrBadWidth is returned when a matrix is requested with width < 1.
	ErrBadWidth = errors.New("feature: width must be at least 1")

	// ErrNoRows indicates FromRows received an empty row set.
	ErrNoRows = errors.New("feature: at least one row is required")

	// ErrRaggedRows indicates FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("feature: all rows must have the same length")

	// ErrWidthMismatch indicates an ingested row does not match the matrix
	// width fixed at construction.
	ErrWidthMismatch = errors.New("feature: row width does not match matrix width")

	// ErrEmptyMatrix indicates a tail operation on a matrix with no rows.
	ErrEmptyMatrix = errors.New("feature: matrix is empty")

	// ErrIndexOutOfRange indicates a row index outside [0, Len).
	ErrIndexOutOfRange = errors.New("feature: row index out of range")

	// ErrNotOneHot indicates a row expected to be a one-hot indicator
	// (single 1, zeros elsewhere) is not.
	ErrNotOneHot = errors.New("feature: row is not a one-hot indicator")
)
