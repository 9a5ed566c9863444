package matcalc

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets the matcalc variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GMATRIX_OP", "GMATRIX_VERIFY", "GMATRIX_PRECISION"} {
		t.Setenv(k, "") // restores the previous value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)

	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)
	require.Equal(t, OpDump, cfg.Op)
	require.False(t, cfg.Verify)
	require.Equal(t, 1e-9, cfg.Tolerance)
	require.False(t, cfg.RowExchange)
	require.Empty(t, cfg.Paths)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("GMATRIX_OP", "det")
	t.Setenv("GMATRIX_VERIFY", "true")
	t.Setenv("GMATRIX_PRECISION", "1e-6")

	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)
	require.Equal(t, OpDet, cfg.Op)
	require.True(t, cfg.Verify)
	require.Equal(t, 1e-6, cfg.Tolerance)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GMATRIX_OP", "det")

	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-op", "add", "-row-exchange", "-v", "a.txt", "b.txt"})
	require.NoError(t, err)
	require.Equal(t, OpAdd, cfg.Op)
	require.True(t, cfg.RowExchange)
	require.True(t, cfg.Verbose)
	require.Equal(t, []string{"a.txt", "b.txt"}, cfg.Paths)
}

func TestParseConfigBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GMATRIX_PRECISION", "tiny")

	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	_, err := ParseConfig(fs, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{Op: OpDet}.validate())
	require.Error(t, Config{Op: "pow"}.validate())
	require.Error(t, Config{Op: OpMul, Verify: true, Tolerance: 0}.validate())
}
