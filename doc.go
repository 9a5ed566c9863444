// Package gmatrix is a small generic dense-matrix library: one value type,
// Matrix[T], over any Go numeric element type (integers, floats, complex).
//
// 🚀 What is in the box?
//
//   - Construction: New, NewFilled, Square, Identity, FromRows
//   - Safe access: At/Set with errors instead of panics, Row views
//   - Arithmetic: Add, Sub, Hadamard, Scale, Mul, Product, Trace
//   - Structure: in-place Transpose, copying Transposed
//   - Factorization: Doolittle LU, Det, Inverse over float and complex
//     elements (no pivoting by default, opt-in row exchange for exact zero
//     pivots)
//   - Output: Dump, a plain space-separated text rendering
//
// ✨ Why gmatrix?
//
//   - Generic: one implementation for int, float64, complex128 and friends
//   - Explicit errors: every failure is a sentinel matched with errors.Is
//   - Transparent numerics: fixed loop orders, no hidden pivoting
//
// Layout:
//
//	array/                    bounds-checked dynamic array, the row storage
//	matrix/                   Matrix[T] and all operations
//	matrix/gonumx/            float64 interop with gonum.org/v1/gonum/mat
//	cmd/matcalc/              command-line calculator over text matrices
//	internal/tools/matcalc/   matcalc config, parsing and dispatch
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	det, _ := matrix.Det(a) // -6
//
//	go get github.com/katalvlaran/gmatrix/matrix
package gmatrix
