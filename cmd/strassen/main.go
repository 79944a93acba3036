// SPDX-License-Identifier: MIT

// Command strassen multiplies two square integer matrices with Strassen's
// algorithm and the classical product and prints both results.
//
// Usage:
//
//	strassen -f -n 4            # read a.txt and b.txt
//	strassen -r -n 8 --seed 42  # random operands
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/strassen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
