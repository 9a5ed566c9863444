// SPDX-License-Identifier: MIT

// Package matrix - array-of-rows storage & safe accessors.
//
// Purpose:
//   - Provide a row-major Matrix built from array.Array rows.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//     Bounds checks are delegated to package array; this file adds only context.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/Identity/Square/FromRows: O(r*c); At/Set/Row: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gmatrix/array"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag
	ctxFromRows = "FromRows" // ctor tag
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxDump     = "Dump"     // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_dumpSep     = ' '
	_dumpEOL     = '\n'
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// newStorage allocates rows independent copies of a cols-wide row filled with value.
// Inputs must be non-negative (validated by callers).
func newStorage[T Ring](rows, cols int, value T) (array.Array[array.Array[T]], error) {
	proto, err := array.New(cols, value)
	if err != nil {
		return array.Array[array.Array[T]]{}, err
	}
	data, err := array.New(rows, array.Array[T]{})
	if err != nil {
		return array.Array[array.Array[T]]{}, err
	}
	// Each row gets its own buffer; sharing proto would alias every row.
	var i int
	for i = 0; i < rows; i++ {
		_ = data.Set(i, proto.Clone()) // i < rows by loop bound
	}

	return data, nil
}

// NewFilled creates a rows×cols matrix with every cell set to value.
// MAIN DESCRIPTION:
//   - General constructor; New and Square are thin wrappers.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate rows independent rows of cols copies of value.
//
// Behavior highlights:
//   - Zero dimensions are legal (0×0, 0×k, k×0).
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Ring](rows, cols int, value T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrBadShape)
	}
	data, err := newStorage(rows, cols, value)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return &Matrix[T]{r: rows, c: cols, data: data}, nil
}

// New creates a rows×cols matrix of zero values.
// Errors: ErrBadShape on negative dimensions.
func New[T Ring](rows, cols int) (*Matrix[T], error) {
	var zero T
	return NewFilled(rows, cols, zero)
}

// Square creates an n×n matrix with every cell set to value.
// Errors: ErrBadShape when n < 0.
func Square[T Ring](n int, value T) (*Matrix[T], error) {
	return NewFilled(n, n, value)
}

// Identity builds a rows×cols matrix of zeros with ones on the main diagonal
// up to min(rows, cols). For rows != cols the result is identity-like:
// a rectangle with a diagonal of ones along the shorter dimension.
// Errors: ErrBadShape on negative dimensions.
// Complexity: O(r*c).
func Identity[T Ring](rows, cols int) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.set(i, i, one[T]())
	}

	return m, nil
}

// FromRows builds a matrix by copying a nested slice.
// All rows must share one length; an empty input yields 0×0.
// Errors: ErrBadShape on ragged input.
// Complexity: O(r*c).
func FromRows[T Ring](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var data array.Array[array.Array[T]]
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		data.Append(array.Of(row...))
	}

	return &Matrix[T]{r: r, c: c, data: data}, nil
}

// Rows returns the row count. No side effects.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// rowRef returns the storage of row i. Callers guarantee 0 <= i < r.
func (m *Matrix[T]) rowRef(i int) *array.Array[T] {
	row, _ := m.data.Ref(i)
	return row
}

// at reads (i,j) without context wrapping. Callers guarantee bounds.
func (m *Matrix[T]) at(i, j int) T {
	v, _ := m.rowRef(i).At(j)
	return v
}

// set writes (i,j) without context wrapping. Callers guarantee bounds.
func (m *Matrix[T]) set(i, j int, v T) {
	_ = m.rowRef(i).Set(j, v)
}

// At returns the value at (row, col) or an error wrapping ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; the row lookup and the column lookup are both
//     bounds-checked by package array.
//
// Errors:
//   - ErrOutOfRange when out of bounds (same sentinel as array.ErrOutOfRange).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	r, err := m.data.Ref(row)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}
	v, err := r.At(col)
	if err != nil {
		return v, denseErrorf(ctxAt, row, col, err)
	}

	return v, nil
}

// Set stores v at (row, col) or returns an error wrapping ErrOutOfRange.
// Nothing is written on error.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	r, err := m.data.Ref(row)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = r.Set(col, v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}

	return nil
}

// Row returns a view of row i that aliases the matrix storage.
// This is the two-step m[i][j] access: m.Row(i) then Row.At(j) / Row.Set(j, v).
// Errors: ErrOutOfRange for an invalid row.
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	r, err := m.data.Ref(i)
	if err != nil {
		return Row[T]{}, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}

	return Row[T]{cells: r, index: i}, nil
}

// Len returns the number of cells in the row (the matrix column count).
func (r Row[T]) Len() int {
	if r.cells == nil {
		return 0
	}
	return r.cells.Len()
}

// At reads cell col of the row.
// Errors: ErrOutOfRange.
func (r Row[T]) At(col int) (T, error) {
	if r.cells == nil {
		var zero T
		return zero, denseErrorf(ctxAt, r.index, col, ErrOutOfRange)
	}
	v, err := r.cells.At(col)
	if err != nil {
		return v, denseErrorf(ctxAt, r.index, col, err)
	}

	return v, nil
}

// Set writes cell col of the row; the write is visible through the matrix.
// Errors: ErrOutOfRange.
func (r Row[T]) Set(col int, v T) error {
	if r.cells == nil {
		return denseErrorf(ctxSet, r.index, col, ErrOutOfRange)
	}
	if err := r.cells.Set(col, v); err != nil {
		return denseErrorf(ctxSet, r.index, col, err)
	}

	return nil
}

// Clone returns a deep copy: every row gets new backing storage.
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		r:    m.r,
		c:    m.c,
		data: m.data.CloneFunc(func(row array.Array[T]) array.Array[T] { return row.Clone() }),
	}
}

// Equal reports whether m and other have the same shape and identical cells.
// A nil other is never equal.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.at(i, j) != other.at(i, j) {
				return false
			}
		}
	}

	return true
}

// ToRows copies the matrix into a fresh nested slice.
// Complexity: O(r*c).
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		for j = 0; j < m.c; j++ {
			out[i][j] = m.at(i, j)
		}
	}

	return out
}

// Dump writes the matrix to w: one line per row, cells formatted with %v and
// separated by a single space, every row terminated by a newline.
// A diagnostic rendering, not a parseable serialization.
// Errors: the first write error from w, wrapped.
// Complexity: O(r*c).
func (m *Matrix[T]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				_ = bw.WriteByte(_dumpSep)
			}
			fmt.Fprint(bw, m.at(i, j))
		}
		_ = bw.WriteByte(_dumpEOL)
	}
	// bufio errors are sticky; Flush reports the first one.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxDump, err)
	}

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics, e.g. "[1, 2]\n[3, 4]\n".
// Not for hot paths; intended for logs and debugging.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.at(i, j))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.rowRef(i)
		for j = 0; j < m.c; j++ {
			v, _ := row.At(j)
			if !f(i, j, v) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Writes go into the existing row storage, so Row views stay valid.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	var v T
	for i = 0; i < m.r; i++ {
		row := m.rowRef(i)
		for j = 0; j < m.c; j++ {
			v, _ = row.At(j)
			_ = row.Set(j, f(i, j, v))
		}
	}
}

// commit replaces the state of m with the state of next in one step.
// next receives the old storage and must not be used afterwards.
func (m *Matrix[T]) commit(next *Matrix[T]) {
	m.r, next.r = next.r, m.r
	m.c, next.c = next.c, m.c
	m.data.Swap(&next.data)
}
