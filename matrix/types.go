// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraints and the Matrix value type.
// Constructors live in impl_dense.go, errors and options in dedicated files.
package matrix

import "github.com/katalvlaran/gmatrix/array"

// Ring is the set of element types a Matrix can hold.
// Every member supports + - * /, ==, a zero value and the constant 1.
// No ordering is required: complex types are members.
type Ring interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Field is the subset of Ring with exact (non-truncating) division.
// LU, Det and Inverse divide by pivots and accept only Field elements.
type Field interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Matrix is a dense rows×cols matrix stored as an array of rows.
//   - r,c hold dimensions (rows, cols).
//   - data holds r rows; every row holds exactly c elements (row-major).
//
// The zero value is a valid 0×0 matrix. A Matrix exclusively owns its
// storage: Clone is deep, and no two matrices ever share a row.
type Matrix[T Ring] struct {
	r, c int                         // row and column counts (>= 0)
	data array.Array[array.Array[T]] // data.Len() == r; each row Len() == c
}

// Row is a view of one matrix row.
// It aliases the owning matrix: Set through a Row is visible via Matrix.At
// and vice versa. Apply keeps views valid; Transpose replaces the storage
// and invalidates every view taken before it.
type Row[T Ring] struct {
	cells *array.Array[T] // row storage inside the owning matrix
	index int             // row number, for error context only
}

// one returns the multiplicative identity of T.
func one[T Ring]() T { return T(1) }
