// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions and no
// operation returns a default-valued result in place of an error.

package matrix

import (
	"errors"

	"github.com/katalvlaran/gmatrix/array"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// the sentinel with their tag (fmt.Errorf("Add: %w", ErrX)); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> zero pivot.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// The check is delegated to package array, so this is the very same sentinel
	// as array.ErrOutOfRange and errors.Is matches either name.
	ErrOutOfRange = array.ErrOutOfRange

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul outside its shape contract.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrZeroPivot is returned when the decomposition would have to divide by a
	// zero pivot. Without row exchange this does not imply the input is
	// singular; see WithRowExchange.
	ErrZeroPivot = errors.New("matrix: zero pivot")
)
