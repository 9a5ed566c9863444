// SPDX-License-Identifier: MIT

// Package gonumx bridges matrix.Matrix[float64] and gonum's mat package.
//
// The native matrix package factors without pivoting; gonum's LU uses partial
// pivoting. The helpers here give callers (the matcalc -verify flag, tests) a
// pivoted reference to compare native results against:
//
//   - ToDense / FromMatrix copy between the two representations.
//   - Det, Product and Inverse compute the same quantities with gonum.
//   - EqualApprox compares a native matrix with any mat.Matrix.
//
// gonum rejects zero-length dimensions, so ToDense fails on empty shapes with
// matrix.ErrBadShape. Det keeps the native convention det(0×0) = 1.
package gonumx
