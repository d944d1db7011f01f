// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
	"github.com/katalvlaran/untou3/reduction"
)

type pathsReport struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Count   uint64 `json:"count" yaml:"count"`
}

type lowerReport struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Lower   []string `json:"lower" yaml:"lower"`
}

func patternArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != gelfand.Size {
		return fmt.Errorf("expected 0 or %d arguments, got %d", gelfand.Size, len(args))
	}

	return nil
}

func newPathsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths [r4 r3 r2 r1 r0]",
		Short: "Count the descent paths of a pattern",
		Long: `Count every sequence of one-particle lowering steps from the pattern
down to the empty row. The count equals the dimension of the U(N) irrep.`,
		Args: patternArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.paths(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) paths(in io.Reader, out io.Writer, args []string) error {
	p, err := readPattern(args, in)
	if err != nil {
		return err
	}

	start := time.Now()
	count := reduction.CountPaths(diffs.New(diffs.WithLogger(a.log)), p)
	a.log.Info("descent paths counted",
		zap.Stringer("pattern", p),
		zap.Uint64("count", count),
		zap.Duration("elapsed", time.Since(start)))

	if a.output() != outputText {
		return encode(out, a.output(), pathsReport{Pattern: p.String(), Count: count})
	}
	_, err = fmt.Fprintf(out, "Input: %s\nCount: %d\n", p, count)

	return err
}

func newLowerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lower [r4 r3 r2 r1 r0]",
		Short: "List the rows one particle below a pattern",
		Args:  patternArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.lower(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) lower(in io.Reader, out io.Writer, args []string) error {
	p, err := readPattern(args, in)
	if err != nil {
		return err
	}
	rows := reduction.Lower(diffs.New(diffs.WithLogger(a.log)), p)

	if a.output() != outputText {
		report := lowerReport{Pattern: p.String(), Lower: make([]string, 0, len(rows))}
		for _, r := range rows {
			report.Lower = append(report.Lower, r.String())
		}

		return encode(out, a.output(), report)
	}

	if _, err = fmt.Fprintf(out, "Input: %s\n", p); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err = fmt.Fprintf(out, "   %s\n", r); err != nil {
			return err
		}
	}

	return nil
}
