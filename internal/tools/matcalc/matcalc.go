// SPDX-License-Identifier: MIT

// Package matcalc implements the matcalc command: it reads float64 matrices
// from text, applies one matrix operation and dumps the result.
package matcalc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/gmatrix/matrix"
	"github.com/katalvlaran/gmatrix/matrix/gonumx"
)

// ErrVerify is returned when -verify finds a disagreement with gonum.
var ErrVerify = errors.New("verification against gonum failed")

// Run executes the matcalc command.
// Operands come from cfg.Paths in order, or from in when no path is given.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	logger := log.New(io.Discard, "matcalc: ", 0)
	if cfg.Verbose {
		logger.SetOutput(errOut)
	}

	operands, err := readOperands(ctx, cfg.Paths, in, logger)
	if err != nil {
		return err
	}
	want := arity[cfg.Op]
	if len(operands) != want {
		return fmt.Errorf("-op %s needs %d matrices, got %d", cfg.Op, want, len(operands))
	}
	for i, m := range operands {
		logger.Printf("operand %d: %dx%d", i, m.Rows(), m.Cols())
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	if cfg.Op == OpDet {
		return runDet(cfg, operands[0], out, logger)
	}

	res, err := apply(cfg.Op, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Op, err)
	}
	logger.Printf("result: %dx%d", res.Rows(), res.Cols())
	if cfg.Verify {
		if err = verify(cfg, operands, res, logger); err != nil {
			return err
		}
	}

	return res.Dump(out)
}

// readOperands parses every path in order, or in when paths is empty.
func readOperands(ctx context.Context, paths []string, in io.Reader, logger *log.Logger) ([]*matrix.Matrix[float64], error) {
	if len(paths) == 0 {
		if in == nil {
			return nil, errors.New("input is required")
		}
		logger.Printf("reading stdin")
		return ParseMatrices(in)
	}

	var all []*matrix.Matrix[float64]
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ms, err := parseFile(p)
		if err != nil {
			return nil, err
		}
		logger.Printf("read %d matrices from %s", len(ms), p)
		all = append(all, ms...)
	}

	return all, nil
}

func parseFile(path string) ([]*matrix.Matrix[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ms, err := ParseMatrices(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ms, nil
}

// apply dispatches a matrix-valued operation.
func apply(op string, ms []*matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	switch op {
	case OpAdd:
		return matrix.Add(ms[0], ms[1])
	case OpSub:
		return matrix.Sub(ms[0], ms[1])
	case OpMul:
		return matrix.Mul(ms[0], ms[1])
	case OpProduct:
		return matrix.Product(ms[0], ms[1])
	case OpTranspose:
		return ms[0].Clone().Transpose(), nil
	case OpInverse:
		return matrix.Inverse(ms[0])
	case OpDump:
		return ms[0], nil
	default:
		return nil, fmt.Errorf("unknown -op %q", op)
	}
}

func runDet(cfg Config, m *matrix.Matrix[float64], out io.Writer, logger *log.Logger) error {
	var opts []matrix.Option
	if cfg.RowExchange {
		opts = append(opts, matrix.WithRowExchange())
	}
	det, err := matrix.Det(m, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", OpDet, err)
	}
	if cfg.Verify {
		ref, err := gonumx.Det(m)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		logger.Printf("verify det: native=%g gonum=%g", det, ref)
		if !withinTol(det, ref, cfg.Tolerance) {
			return fmt.Errorf("det %g vs %g: %w", det, ref, ErrVerify)
		}
	}
	_, err = fmt.Fprintln(out, det)

	return err
}

// verify recomputes res with gonum where a reference exists.
// Elementwise and structural operations are exact and are not re-checked.
func verify(cfg Config, ms []*matrix.Matrix[float64], res *matrix.Matrix[float64], logger *log.Logger) error {
	var (
		ref *matrix.Matrix[float64]
		err error
	)
	switch cfg.Op {
	case OpMul, OpProduct:
		ref, err = gonumx.Product(ms[0], ms[1])
	case OpInverse:
		ref, err = gonumx.Inverse(ms[0])
	default:
		logger.Printf("verify: nothing to check for %s", cfg.Op)
		return nil
	}
	if errors.Is(err, matrix.ErrBadShape) {
		// gonum has no empty matrices.
		logger.Printf("verify: skipped for empty operand")
		return nil
	}
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	d, err := gonumx.ToDense(ref)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !gonumx.EqualApprox(res, d, cfg.Tolerance) {
		return fmt.Errorf("%s: %w", cfg.Op, ErrVerify)
	}
	logger.Printf("verify %s: ok", cfg.Op)

	return nil
}

// withinTol reports |a-b| <= tol or |a-b| <= tol*max(|a|,|b|).
func withinTol(a, b, tol float64) bool {
	diff := abs(a - b)
	if diff <= tol {
		return true
	}

	return diff <= tol*max(abs(a), abs(b))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
