// Package matrix offers a generic dense matrix value type.
//
// The matrix package provides:
//
//   - Matrix[T], a rows×cols matrix over any Ring element type (Go integer,
//     float and complex kinds), stored as an array of rows (package array).
//   - Factories New, NewFilled, Square, Identity (rectangular identity-like
//     for rows != cols) and FromRows.
//   - Bounds-checked access At/Set and aliasing row views via Row.
//   - Add, Sub, Hadamard, Scale, Mul (restricted shape contract), Product
//     (conventional contract), in-place Transpose and copying Transposed.
//   - LU, Det and Inverse built on a row-wise Doolittle factorization with no
//     pivoting; WithRowExchange opts into exchanging rows on zero pivots.
//   - Dump, a space-separated textual rendering.
//
// Every fallible operation returns an error wrapping one of the sentinels in
// errors.go; no operation returns a placeholder value on failure. LU, Det and
// Inverse divide, so they accept only Field element types (floats, complex);
// integer matrices are rejected at compile time.
//
// Everything is synchronous and single-threaded; a Matrix is not safe for
// concurrent mutation.
package matrix
