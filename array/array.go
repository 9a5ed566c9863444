// SPDX-License-Identifier: MIT

// Package array provides Array, a generic resizable sequence with
// bounds-checked indexed access and value semantics.
//
// Purpose:
//   - Serve as the storage building block for matrix.Matrix (one Array per row,
//     plus one Array of rows).
//   - Report invalid indices as ErrOutOfRange instead of panicking.
//
// Copy semantics:
//   - Assigning an Array value copies only the slice header; use Clone (or
//     CloneFunc for nested arrays) to obtain independent storage.
//   - Swap exchanges storage between two arrays without copying elements.
//
// Complexity quicksheet:
//   - New/Clone: O(n); At/Set/Ref/Len: O(1); Append: amortized O(1) per element.
package array

import "fmt"

// Array is a bounds-checked sequence of T.
// The zero value is an empty, ready-to-use Array.
type Array[T any] struct {
	items []T // backing storage, len == Len()
}

// New returns an Array of size copies of fill.
// Returns ErrNegativeSize when size < 0.
// Complexity: O(size).
func New[T any](size int, fill T) (Array[T], error) {
	if size < 0 {
		return Array[T]{}, fmt.Errorf("array.New(%d): %w", size, ErrNegativeSize)
	}
	items := make([]T, size)
	var i int
	for i = 0; i < size; i++ {
		items[i] = fill
	}

	return Array[T]{items: items}, nil
}

// Of builds an Array holding a copy of items.
func Of[T any](items ...T) Array[T] {
	cp := make([]T, len(items))
	copy(cp, items)

	return Array[T]{items: cp}
}

// Len reports the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// At returns the element at index i or ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}

	return a.items[i], nil
}

// Set stores v at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.items[i] = v

	return nil
}

// Ref returns a pointer to the element at index i or ErrOutOfRange.
// The pointer aliases the backing storage: writes through it are visible to
// every later At, and it is invalidated by Append (which may reallocate) and Swap.
// Complexity: O(1).
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}

	return &a.items[i], nil
}

// Append adds vs at the end, growing the backing storage as needed.
func (a *Array[T]) Append(vs ...T) {
	a.items = append(a.items, vs...)
}

// Clone returns an Array with independent backing storage.
// Elements are copied by assignment.
// Complexity: O(n).
func (a *Array[T]) Clone() Array[T] {
	return Of(a.items...)
}

// CloneFunc returns an Array whose elements are produced by f(a[i]).
// Use it to deep-copy nested arrays: rows.CloneFunc(func(r Array[E]) Array[E] { return r.Clone() }).
// Complexity: O(n) calls to f.
func (a *Array[T]) CloneFunc(f func(T) T) Array[T] {
	cp := make([]T, len(a.items))
	for i, v := range a.items {
		cp[i] = f(v)
	}

	return Array[T]{items: cp}
}

// Swap exchanges the contents of a and other without copying elements.
func (a *Array[T]) Swap(other *Array[T]) {
	a.items, other.items = other.items, a.items
}

// check validates 0 <= i < Len().
func (a *Array[T]) check(i int) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("array[%d] (len %d): %w", i, len(a.items), ErrOutOfRange)
	}

	return nil
}
