// SPDX-License-Identifier: MIT

package matcalc

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Operation names accepted by -op.
const (
	OpDet       = "det"
	OpAdd       = "add"
	OpSub       = "sub"
	OpMul       = "mul"
	OpProduct   = "product"
	OpTranspose = "transpose"
	OpInverse   = "inverse"
	OpDump      = "dump"
)

// arity is the number of input matrices each operation consumes.
var arity = map[string]int{
	OpDet:       1,
	OpAdd:       2,
	OpSub:       2,
	OpMul:       2,
	OpProduct:   2,
	OpTranspose: 1,
	OpInverse:   1,
	OpDump:      1,
}

// Config holds matcalc command configuration.
type Config struct {
	Op          string
	Verify      bool
	Tolerance   float64
	RowExchange bool
	Verbose     bool
	Paths       []string
}

type envConfig struct {
	Op        string  `env:"GMATRIX_OP" envDefault:"dump"`
	Verify    bool    `env:"GMATRIX_VERIFY"`
	Tolerance float64 `env:"GMATRIX_PRECISION" envDefault:"1e-9"`
}

// ParseConfig parses flags into a Config. Environment variables provide the
// defaults; flags override them. Remaining arguments are input file paths.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		Op:        envCfg.Op,
		Verify:    envCfg.Verify,
		Tolerance: envCfg.Tolerance,
	}
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: det|add|sub|mul|product|transpose|inverse|dump (default: GMATRIX_OP or dump)")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check the result against gonum (float64 only)")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "tolerance for -verify (default: GMATRIX_PRECISION or 1e-9)")
	fs.BoolVar(&cfg.RowExchange, "row-exchange", false, "exchange rows on zero pivots when computing det")
	fs.BoolVar(&cfg.Verbose, "v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Paths = fs.Args()

	return cfg, nil
}

// validate checks the operation name and tolerance.
func (c Config) validate() error {
	if _, ok := arity[c.Op]; !ok {
		return fmt.Errorf("unknown -op %q", c.Op)
	}
	if c.Verify && c.Tolerance <= 0 {
		return fmt.Errorf("-tol must be > 0, got %g", c.Tolerance)
	}

	return nil
}
