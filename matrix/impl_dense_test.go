// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction, access and
// formatting of Matrix.
package matrix_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/gmatrix/array"
	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures that constructors reject negative dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFilled(5, -1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Identity[int](-2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Square(-3, 1.5)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewFillsValue verifies that every cell holds the fill value.
func TestNewFillsValue(t *testing.T) {
	for _, tc := range []struct {
		rows, cols int
		value      int
	}{
		{0, 0, 1},
		{0, 3, 1},
		{3, 0, 1},
		{2, 3, 0},
		{4, 4, 7},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d=%d", tc.rows, tc.cols, tc.value), func(t *testing.T) {
			m, err := matrix.NewFilled(tc.rows, tc.cols, tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			m.Do(func(i, j int, v int) bool {
				require.Equalf(t, tc.value, v, "cell [%d,%d]", i, j)
				return true
			})
		})
	}
}

// TestZeroValueMatrix checks that the zero Matrix is a valid 0×0 matrix.
func TestZeroValueMatrix(t *testing.T) {
	var m matrix.Matrix[float64]
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.True(t, m.IsSquare())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIdentityShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r, c int
		want [][]int
	}{
		{"square", 3, 3, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"wide", 2, 4, [][]int{{1, 0, 0, 0}, {0, 1, 0, 0}}},
		{"tall", 3, 2, [][]int{{1, 0}, {0, 1}, {0, 0}}},
		{"empty", 0, 0, [][]int{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			CompareExact(t, tc.want, MustIdentity[int](t, tc.r, tc.c))
		})
	}
}

func TestSquare(t *testing.T) {
	m, err := matrix.Square(2, 0.5)
	require.NoError(t, err)
	require.True(t, m.IsSquare())
	CompareExact(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, m)
}

func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRowsCopies ensures the input slice is not aliased.
func TestFromRowsCopies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

func TestShapeQueries(t *testing.T) {
	m := MustNew[int](t, 3, 4)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access,
// and that the sentinel is the one owned by package array.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustNew[float64](t, 2, 2)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"row too big", 2, 0},
		{"negative col", 0, -1},
		{"col too big", 0, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.At(tc.row, tc.col)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, err, array.ErrOutOfRange)

			err = m.Set(tc.row, tc.col, 1.23)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}

	// Nothing was written by the failed Set calls.
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, m)
}

func TestSetGet(t *testing.T) {
	m := MustNew[float64](t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestRowViewAliases verifies the m[i][j] = v pattern through Row.
func TestRowViewAliases(t *testing.T) {
	m := MustNew[int](t, 2, 3)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 3, row.Len())
	require.NoError(t, row.Set(2, 42))
	require.Equal(t, 42, MustAt(t, m, 1, 2))

	// Two views of the same row observe each other.
	again, err := m.Row(1)
	require.NoError(t, err)
	v, err := again.At(2)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	require.NoError(t, m.Set(1, 0, 5))
	v, err = row.At(0)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestRowViewOutOfBounds(t *testing.T) {
	m := MustNew[int](t, 2, 2)

	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(0)
	require.NoError(t, err)
	_, err = row.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, row.Set(-1, 1), matrix.ErrOutOfRange)

	var zero matrix.Row[int]
	require.Equal(t, 0, zero.Len())
	_, err = zero.At(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 100))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 100.0, MustAt(t, clone, 0, 0))
	require.False(t, m.Equal(clone))
}

func TestEqual(t *testing.T) {
	a := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, a.Equal(MustFromRows(t, [][]int{{1, 2}, {3, 4}})))
	require.False(t, a.Equal(MustFromRows(t, [][]int{{1, 2, 0}, {3, 4, 0}})))
	require.False(t, a.Equal(nil))
}

// TestDump checks the space-separated, newline-terminated rendering.
func TestDump(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want string
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, "1 2\n3 4\n"},
		{"fractions", [][]float64{{0.5, -1.25}}, "0.5 -1.25\n"},
		{"column", [][]float64{{1}, {2}}, "1\n2\n"},
		{"empty", [][]float64{}, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, MustFromRows(t, tc.rows).Dump(&buf))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDumpWriteError(t *testing.T) {
	err := MustFromRows(t, [][]int{{1}}).Dump(failWriter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDoStopsEarly(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []int{1, 2}, seen)
}

func TestApplyRowMajor(t *testing.T) {
	m := MustNew[int](t, 2, 3)
	m.Apply(func(i, j int, _ int) int { return i*10 + j })
	CompareExact(t, [][]int{{0, 1, 2}, {10, 11, 12}}, m)
}

// TestComplexElements exercises a non-ordered element type.
func TestComplexElements(t *testing.T) {
	m := MustIdentity[complex128](t, 2, 2)
	require.NoError(t, m.Set(0, 1, 2i))
	require.Equal(t, complex(0, 2), MustAt(t, m, 0, 1))
	require.Equal(t, complex(1, 0), MustAt(t, m, 1, 1))
}

// TestApplyKeepsRowViews ensures Apply writes into the existing storage, so a
// Row taken before the call still aliases the matrix afterwards.
func TestApplyKeepsRowViews(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	row, err := m.Row(0)
	require.NoError(t, err)

	m.Apply(func(_, _ int, v int) int { return v * 10 })
	v, err := row.At(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)

	require.NoError(t, row.Set(0, 99))
	require.Equal(t, 99, MustAt(t, m, 0, 0))
	CompareExact(t, [][]int{{99, 20}, {30, 40}}, m)
}
