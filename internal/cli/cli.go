// SPDX-License-Identifier: MIT

// Package cli implements the strassen command: it loads or generates two
// square matrices, multiplies them with Strassen's recursion and with the
// classical product, and prints inputs and both results.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
	"github.com/katalvlaran/strassen/strassen"
)

// Element is the matrix element type of the command (a 32-bit signed int).
type Element = int32

const longHelp = `This program uses strassen's algorithm to multiply two matrices.

Exactly one of -f (read a.txt and b.txt) or -r (generate randomly) must be
given together with -n. Matrix files hold whitespace-separated non-negative
integers, one row per line.`

// Run executes the command with args and returns the process exit code:
// 0 on success or when usage was printed, 1 on any failure.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	if len(args) == 0 {
		_ = cmd.Usage()
		return 0
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		_ = cmd.Usage()
		return 0
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// newRootCommand wires flags, configuration and the run function.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "strassen -f|-r -n <num_row_col>",
		Short:         "Multiply two square matrices with Strassen's algorithm",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			log, err := newLogger(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cfg, cmd.OutOrStdout(), log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	registerFlags(cmd.Flags())

	return cmd
}

// execute performs one run for a validated configuration.
func execute(ctx context.Context, cfg Config, out io.Writer, log *logrus.Entry) error {
	n := cfg.Size
	if !matrix.IsPowerOfTwo(n) || n > cfg.MaxDim {
		return fmt.Errorf("%w: -n %d (want a power of two in [1, %d])", strassen.ErrInvalidDimension, n, cfg.MaxDim)
	}
	log = log.WithField("n", n)

	a, b, err := loadOperands(cfg)
	if err != nil {
		return err
	}
	if err = printMatrix(out, "Elements for matrix A", a); err != nil {
		return err
	}
	if err = printMatrix(out, "Elements for matrix B", b); err != nil {
		return err
	}

	opts := []strassen.Option{strassen.WithMaxDimension(cfg.MaxDim), strassen.WithLogger(log)}
	if cfg.Parallel {
		opts = append(opts, strassen.WithParallel())
	}

	start := time.Now()
	c, err := strassen.MultiplyContext[Element](ctx, a, b, n, opts...)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Info("strassen product done")
	if err = printMatrix(out, "Result with strassen algo:", c); err != nil {
		return err
	}

	start = time.Now()
	naive, err := strassen.MultiplyNaive[Element](a, b, n, opts...)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Info("standard product done")
	if !naive.Equal(c) {
		log.Warn("strassen and standard products differ")
	}

	return printMatrix(out, "Result with standard multiplication:", naive)
}

// loadOperands reads A and B from their files or draws them from one
// random stream.
func loadOperands(cfg Config) (*matrix.Dense[Element], *matrix.Dense[Element], error) {
	if cfg.File {
		a, err := matrixio.ReadFile[Element](cfg.PathA, cfg.Size)
		if err != nil {
			return nil, nil, err
		}
		b, err := matrixio.ReadFile[Element](cfg.PathB, cfg.Size)
		if err != nil {
			return nil, nil, err
		}

		return a, b, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := matrixio.NewGenerator(matrixio.WithSeed(seed))
	a, err := matrixio.Fill[Element](g, cfg.Size)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrixio.Fill[Element](g, cfg.Size)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func printMatrix(w io.Writer, title string, m *matrix.Dense[Element]) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	return matrixio.Write[Element](w, m)
}
