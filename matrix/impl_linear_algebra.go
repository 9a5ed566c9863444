// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Matrix:
// element-wise addition and subtraction, multiplication, transpose, scaling,
// Hadamard product and trace. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel either returns a complete fresh result or an error; operands
//     are never mutated (except the receiver of the in-place Transpose method).
//   - LU, Det and Inverse live in impl_lu.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opProduct   = "Product"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTrace     = "Trace"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith builds out[i][j] = f(a[i][j], b[i][j]) for same-shape a, b.
// Internal helper for Add/Sub/Hadamard to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result.
//   - Stage 2: fixed i→j loop, one row lookup per operand per row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith[T Ring](a, b *Matrix[T], opTag string, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := New[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var i, j int
	var x, y T
	for i = 0; i < a.r; i++ {
		ra, rb, rr := a.rowRef(i), b.rowRef(i), res.rowRef(i)
		for j = 0; j < a.c; j++ {
			x, _ = ra.At(j)
			y, _ = rb.At(j)
			_ = rr.Set(j, f(x, y))
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Inputs:
//   - a, b: non-nil matrices of identical shape.
//
// Returns:
//   - *Matrix: C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//     On error no result is produced; there is no empty-matrix fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
func Scale[T Ring](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	res.Apply(func(_, _ int, v T) T { return alpha * v })

	return res, nil
}

// Mul multiplies a by b under the restricted shape contract
// a.Rows == b.Cols && a.Cols == b.Rows (b has the transposed shape of a).
// The result is a.Rows × a.Rows.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: transpose a copy of b, then C[i][j] = Σ_k A[i][k]·Bᵀ[j][k].
//
// Behavior highlights:
//   - Both operands are walked row by row; no column-strided reads.
//   - Whenever Mul accepts its operands, the result equals Product(a, b).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (any shape outside the contract, including
//     conventionally compatible pairs such as 2×3 * 3×4; use Product for those).
//
// Complexity:
//   - Time O(r*r*c), Space O(r*r + r*c) for the result and the transposed copy.
func Mul[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulTransposed(a, b)
}

// Product computes the conventional matrix product C = A × B.
// Requires a.Cols == b.Rows; the result is a.Rows × b.Cols.
// Same transpose-then-dot kernel as Mul.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c).
func Product[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateProductCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return mulTransposed(a, b)
}

// mulTransposed is the shared product kernel. Shapes are validated by callers.
func mulTransposed[T Ring](a, b *Matrix[T]) (*Matrix[T], error) {
	bt := b.transposed() // b.Cols × b.Rows
	res, err := New[T](a.r, bt.r)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var sum, x, y T
	for i = 0; i < a.r; i++ {
		ra, rr := a.rowRef(i), res.rowRef(i)
		for j = 0; j < bt.r; j++ {
			rb := bt.rowRef(j)
			var zero T
			sum = zero
			for k = 0; k < a.c; k++ {
				x, _ = ra.At(k)
				y, _ = rb.At(k)
				sum += x * y
			}
			_ = rr.Set(j, sum)
		}
	}

	return res, nil
}

// Transpose turns m into its own transpose and returns m.
//
// Implementation:
//   - Stage 1: build a fresh cols×rows matrix with t[j][i] = m[i][j].
//   - Stage 2: commit by swapping dimensions and storage into m in one step.
//
// Behavior highlights:
//   - No partially transposed state is ever observable; the swap is the single
//     commit point. Row views taken before the call keep referring to the old
//     storage and must not be used afterwards.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) transient.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	next := m.transposed()
	m.commit(next)

	return m
}

// transposed builds mᵀ as a new matrix; m is not mutated.
func (m *Matrix[T]) transposed() *Matrix[T] {
	var zero T
	data, _ := newStorage(m.c, m.r, zero) // non-negative by invariant
	t := &Matrix[T]{r: m.c, c: m.r, data: data}

	var i, j int
	var v T
	for i = 0; i < m.r; i++ {
		row := m.rowRef(i)
		for j = 0; j < m.c; j++ {
			v, _ = row.At(j)
			t.set(j, i, v)
		}
	}

	return t
}

// Transposed returns mᵀ as a new matrix; m is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transposed[T Ring](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transposed(), nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n).
func Trace[T Ring](m *Matrix[T]) (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		sum += m.at(i, i)
	}

	return sum, nil
}
