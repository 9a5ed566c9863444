// Package main provides the matcalc matrix calculator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gmatrix/internal/tools/matcalc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes matcalc and returns the process exit code. The signal context
// is released before run returns, so main can exit without skipping it.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("matcalc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	cfg, err := matcalc.ParseConfig(fs, args)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := matcalc.Run(ctx, cfg, in, out, errOut); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	return 0
}
