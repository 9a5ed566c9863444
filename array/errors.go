// SPDX-License-Identifier: MIT

// Package array: sentinel error set.
// All Array methods return these sentinels (optionally wrapped with index
// context); callers match them via errors.Is. Nothing here panics on bad input.

package array

import "errors"

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrNegativeSize is returned when a constructor receives size < 0.
	ErrNegativeSize = errors.New("array: negative size")
)
