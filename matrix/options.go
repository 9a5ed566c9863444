// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the LU-based routines
// (LU, Det, Inverse).
//
// Design goals:
//   - Deterministic behavior: no global state, no hidden pivoting.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The default decomposition is plain Doolittle with no row exchange.
//     A zero pivot that must be divided by surfaces as ErrZeroPivot.
//   - WithRowExchange opts into exchanging rows on a zero pivot. Only
//     equality with zero is used, so it works for every Ring type, but it is
//     NOT partial pivoting by magnitude and gives no stability guarantee.
package matrix

// DefaultRowExchange controls whether decompositions exchange rows on a zero pivot.
const DefaultRowExchange = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved decomposition policy.
type Options struct {
	rowExchange bool
}

// WithRowExchange enables row exchange on zero pivots.
// When the pivot in column i is zero, the first lower row whose reduced entry
// in column i is non-zero is swapped in and the determinant sign flips. When no
// such row exists the matrix is singular and Det returns 0.
func WithRowExchange() Option {
	return func(o *Options) { o.rowExchange = true }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{rowExchange: DefaultRowExchange}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// RowExchange reports whether row exchange is enabled.
func (o Options) RowExchange() bool { return o.rowExchange }
