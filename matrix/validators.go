// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors with a validator tag; call sites add their own op tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with shape context.
func validatorErrorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// ValidateNotNil ensures every given matrix is non-nil.
// Returns ErrNilMatrix naming the first nil argument position.
func ValidateNotNil[T Ring](ms ...*Matrix[T]) error {
	for i, m := range ms {
		if m == nil {
			return validatorErrorf("argument %d: %w", i, ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Use for Add/Sub/Hadamard.
func ValidateSameShape[T Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNotSquare.
func ValidateSquare[T Ring](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("%dx%d: %w", m.r, m.c, ErrNotSquare)
	}

	return nil
}

// ValidateMulCompatible enforces the Mul contract:
// a.Rows == b.Cols && a.Cols == b.Rows, i.e. b has the transposed shape of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.c || a.c != b.r {
		return validatorErrorf("%dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateProductCompatible enforces the conventional inner-dimension rule
// a.Cols == b.Rows used by Product.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateProductCompatible[T Ring](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("%dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}
