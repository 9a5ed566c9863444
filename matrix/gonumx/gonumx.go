// SPDX-License-Identifier: MIT

package gonumx

import (
	"fmt"

	"github.com/katalvlaran/gmatrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// op tags used in error wrappers.
const (
	opToDense    = "ToDense"
	opFromMatrix = "FromMatrix"
	opDet        = "Det"
	opProduct    = "Product"
	opInverse    = "Inverse"
)

// gonumxErrorf wraps err with a uniform "gonumx.<Op>: ..." prefix.
func gonumxErrorf(tag string, err error) error {
	return fmt.Errorf("gonumx.%s: %w", tag, err)
}

// ToDense copies m into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix; matrix.ErrBadShape when a dimension is zero.
// Complexity: O(r*c).
func ToDense(m *matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gonumxErrorf(opToDense, err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, gonumxErrorf(opToDense, fmt.Errorf("%dx%d: %w", r, c, matrix.ErrBadShape))
	}

	// mat.NewDense takes row-major backing data.
	data := make([]float64, 0, r*c)
	m.Do(func(_, _ int, v float64) bool {
		data = append(data, v)
		return true
	})

	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies any gonum matrix into a new matrix.Matrix[float64].
// Errors: matrix.ErrNilMatrix for a nil src.
// Complexity: O(r*c).
func FromMatrix(src mat.Matrix) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, gonumxErrorf(opFromMatrix, matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := matrix.New[float64](r, c)
	if err != nil {
		return nil, gonumxErrorf(opFromMatrix, err)
	}
	m.Apply(func(i, j int, _ float64) float64 { return src.At(i, j) })

	return m, nil
}

// Det returns the determinant computed by gonum (LU with partial pivoting).
// Unlike matrix.Det it never fails on a zero leading pivot.
// Errors: matrix.ErrNilMatrix, matrix.ErrNotSquare.
func Det(m *matrix.Matrix[float64]) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, gonumxErrorf(opDet, err)
	}
	if m.Rows() == 0 {
		return 1, nil
	}
	d, err := ToDense(m)
	if err != nil {
		return 0, gonumxErrorf(opDet, err)
	}

	return mat.Det(d), nil
}

// Product returns a·b computed by gonum, under the conventional
// inner-dimension rule (a.Cols == b.Rows).
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrBadShape.
func Product(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateProductCompatible(a, b); err != nil {
		return nil, gonumxErrorf(opProduct, err)
	}
	da, err := ToDense(a)
	if err != nil {
		return nil, gonumxErrorf(opProduct, err)
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, gonumxErrorf(opProduct, err)
	}

	var out mat.Dense
	out.Mul(da, db)

	return FromMatrix(&out)
}

// Inverse returns m⁻¹ computed by gonum.
// gonum reports a singular or near-singular input through a condition error;
// that error is returned wrapped and also matches matrix.ErrZeroPivot.
// Errors: matrix.ErrNilMatrix, matrix.ErrNotSquare, matrix.ErrBadShape, matrix.ErrZeroPivot.
func Inverse(m *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, gonumxErrorf(opInverse, err)
	}
	d, err := ToDense(m)
	if err != nil {
		return nil, gonumxErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err = inv.Inverse(d); err != nil {
		return nil, gonumxErrorf(opInverse, fmt.Errorf("%w: %w", matrix.ErrZeroPivot, err))
	}

	return FromMatrix(&inv)
}

// EqualApprox reports whether m and d have the same shape and every pair of
// cells is within tol, absolute or relative (mat.EqualApprox semantics).
// A nil m or d is never equal. Empty shapes compare by shape only.
func EqualApprox(m *matrix.Matrix[float64], d mat.Matrix, tol float64) bool {
	if m == nil || d == nil {
		return false
	}
	r, c := m.Shape()
	dr, dc := d.Dims()
	if r != dr || c != dc {
		return false
	}
	if r == 0 || c == 0 {
		return true
	}
	dm, err := ToDense(m)
	if err != nil {
		return false
	}

	return mat.EqualApprox(dm, d, tol)
}
