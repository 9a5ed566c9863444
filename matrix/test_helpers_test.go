// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data exact (small integers) so float64 comparisons can be strict.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows BUILDS a matrix from a nested slice or fails the test.
func MustFromRows[T matrix.Ring](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustNew ALLOCATES an r×c zero matrix or fails the test.
func MustNew[T matrix.Ring](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustIdentity RETURNS an r×c identity-like matrix or fails the test.
func MustIdentity[T matrix.Ring](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Identity[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Ring](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomInts FILLS an r×c float64 matrix with small integers in [-9, 9].
// Integer-valued floats keep add/sub/mul exact, so results compare with ==.
func RandomInts(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew[float64](tb, r, c)
	m.Apply(func(_, _ int, _ float64) float64 { return float64(rng.Intn(19) - 9) })

	return m
}

// CompareExact ASSERTS m equals want cell by cell, with shape check.
func CompareExact[T matrix.Ring](tb testing.TB, want [][]T, m *matrix.Matrix[T]) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	require.Equal(tb, want, m.ToRows())
}

// shapes is the set of shapes used by property-style tests.
var shapes = []struct{ r, c int }{
	{0, 0}, {1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 2}, {5, 5},
}
