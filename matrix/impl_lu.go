// SPDX-License-Identifier: MIT
// Package matrix: Doolittle LU factorization and the routines built on it
// (LU, Det, Inverse).
//
// Purpose:
//   - Factor a square A into unit-lower-triangular L and upper-triangular U
//     with A = L·U, filling both row by row in a fixed order.
//   - Report the determinant as the running product of U's diagonal.
//
// Notes:
//   - Elements are bound by Field: integer division would truncate and yield
//     wrong factors with a nil error.
//   - No pivoting by default. A zero (or tiny) pivot is a numerical limitation,
//     not something this file hides: a zero pivot that must be divided by
//     returns ErrZeroPivot, and tiny pivots are used as is.
//   - WithRowExchange opts into exchanging rows on an exact zero pivot.

package matrix

// factorization holds the outcome of doolittle.
type factorization[T Field] struct {
	l, u     *Matrix[T] // A' = L·U where A' is A with rows exchanged per swaps
	det      T          // running product of U's diagonal, sign-adjusted for swaps
	swaps    int        // number of row exchanges performed
	singular bool       // row exchange found an all-zero pivot column
}

// reduceRow computes the L coefficients of source row src of w against the
// first i pivot rows of u:
//
//	l[j] = (w[src][j] − Σ_{k<j} l[k]·u[k][j]) / u[j][j]   for j < i
//
// and returns them with the reduced candidate pivot
//
//	w[src][i] − Σ_{k<i} l[k]·u[k][i]   (zero when i == n).
//
// Errors: ErrZeroPivot when some u[j][j], j < i, is zero.
func reduceRow[T Field](w, u *Matrix[T], src, i int) ([]T, T, error) {
	var zero T
	l := make([]T, i)
	row := w.rowRef(src)

	var j, k int
	var sum, a, piv T
	for j = 0; j < i; j++ {
		sum = zero
		for k = 0; k < j; k++ {
			sum += l[k] * u.at(k, j)
		}
		piv = u.at(j, j)
		if piv == zero {
			return nil, zero, denseErrorf("U", j, j, ErrZeroPivot)
		}
		a, _ = row.At(j)
		l[j] = (a - sum) / piv
	}
	if i >= w.c {
		return l, zero, nil
	}
	sum = zero
	for k = 0; k < i; k++ {
		sum += l[k] * u.at(k, i)
	}
	a, _ = row.At(i)

	return l, a - sum, nil
}

// doolittle runs the row-wise Doolittle scheme on a square m.
//
// Implementation:
//   - Stage 1: L = I(n), U = 0(n); w = copy of m (rows may be exchanged).
//   - Stage 2: for each row i:
//     for j < i:  L[i][j] = (w[i][j] − Σ_{k<j} L[i][k]·U[k][j]) / U[j][j]
//     for j ≥ i:  U[i][j] =  w[i][j] − Σ_{k<i} L[i][k]·U[k][j]
//     and det *= U[i][i].
//   - Stage 3 (opt-in): if U[i][i] == 0 and row exchange is enabled, swap in
//     the first lower row with a non-zero reduced pivot, flip det, redo row i.
//     If none exists the matrix is singular: stop with det = 0.
//
// Errors:
//   - ErrZeroPivot when a zero pivot must be divided by (row exchange off).
//
// Complexity:
//   - Time O(n^3), Space O(n^2). Each exchange adds O(n^2) for the probe.
func doolittle[T Field](m *Matrix[T], o Options) (factorization[T], error) {
	var zero T
	n := m.r
	l, _ := Identity[T](n, n)
	u, _ := New[T](n, n)
	w := m.Clone()
	f := factorization[T]{l: l, u: u, det: one[T]()}

	var i, j, k, p int
	var sum, a T
	for i = 0; i < n; i++ {
		lrow, piv, err := reduceRow(w, u, i, i)
		if err != nil {
			return f, err
		}

		if piv == zero && o.rowExchange {
			found := false
			for p = i + 1; p < n; p++ {
				lp, cand, err := reduceRow(w, u, p, i)
				if err != nil {
					return f, err
				}
				if cand != zero {
					w.rowRef(i).Swap(w.rowRef(p))
					lrow, piv = lp, cand
					f.swaps++
					f.det = zero - f.det
					found = true
					break
				}
			}
			if !found {
				f.det = zero
				f.singular = true
				return f, nil
			}
		}

		// Commit row i: strict lower part of L, then U[i][i..n-1].
		for j = 0; j < i; j++ {
			l.set(i, j, lrow[j])
		}
		u.set(i, i, piv)
		for j = i + 1; j < n; j++ {
			sum = zero
			for k = 0; k < i; k++ {
				sum += lrow[k] * u.at(k, j)
			}
			a = w.at(i, j)
			u.set(i, j, a-sum)
		}
		f.det *= piv
	}

	return f, nil
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: row-wise Doolittle (see doolittle).
//
// Behavior highlights:
//   - Deterministic loops; no hidden pivoting; m is not mutated.
//   - A zero last pivot is legal (U is simply singular).
//
// Returns:
//   - L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrZeroPivot (a zero U[j][j] with rows below it).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Numerical stability requires pivoting upstream; Det offers WithRowExchange
//     for exact zero pivots only.
func LU[T Field](m *Matrix[T]) (*Matrix[T], *Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	f, err := doolittle(m, NewOptions())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return f.l, f.u, nil
}

// Det returns the determinant of a square matrix as the product of the
// diagonal of U from the Doolittle factorization.
//
// Behavior highlights:
//   - det(0×0) is 1 (empty product).
//   - Default: no pivoting. A matrix such as [[0,1],[1,0]] fails with
//     ErrZeroPivot even though it is not singular; pass WithRowExchange()
//     to handle it.
//   - With WithRowExchange a singular matrix yields (0, nil).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrZeroPivot.
//     On error the returned value is the zero T and must be ignored.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det[T Field](m *Matrix[T], opts ...Option) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	f, err := doolittle(m, NewOptions(opts...))
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	return f.det, nil
}

// Inverse computes A⁻¹ from the no-pivot LU factorization.
//
// Implementation:
//   - Stage 1: LU(m).
//   - Stage 2: for each unit vector e_j solve L·y = e_j (forward), U·x = y (backward);
//     x is column j of the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrZeroPivot (any zero pivot, including the last:
//     the back substitution divides by every U[i][i]).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse[T Field](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	f, err := doolittle(m, NewOptions())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var zero T
	n := m.r
	inv, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	y := make([]T, n)
	x := make([]T, n)

	var i, j, k int
	var sum, piv T
	for j = 0; j < n; j++ {
		// Forward: L·y = e_j, unit diagonal.
		for i = 0; i < n; i++ {
			sum = zero
			if i == j {
				sum = one[T]()
			}
			for k = 0; k < i; k++ {
				sum -= f.l.at(i, k) * y[k]
			}
			y[i] = sum
		}
		// Backward: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= f.u.at(i, k) * x[k]
			}
			piv = f.u.at(i, i)
			if piv == zero {
				return nil, matrixErrorf(opInverse, denseErrorf("U", i, i, ErrZeroPivot))
			}
			x[i] = sum / piv
		}
		for i = 0; i < n; i++ {
			inv.set(i, j, x[i])
		}
	}

	return inv, nil
}
