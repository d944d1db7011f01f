// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
	"github.com/katalvlaran/untou3/irrepdim"
	"github.com/katalvlaran/untou3/oscillator"
	"github.com/katalvlaran/untou3/reduction"
)

const listFlag = "list"

type irrepReport struct {
	Weight       [3]int `json:"weight" yaml:"weight"`
	Multiplicity int64  `json:"multiplicity" yaml:"multiplicity"`
	Dimension    uint64 `json:"dimension" yaml:"dimension"`
}

type reduceReport struct {
	Pattern          string        `json:"pattern" yaml:"pattern"`
	Labels           []int         `json:"labels" yaml:"labels"`
	Shell            int           `json:"shell" yaml:"shell"`
	Particles        int           `json:"particles" yaml:"particles"`
	Weights          int           `json:"weights" yaml:"weights"`
	Paths            uint64        `json:"paths" yaml:"paths"`
	UNDimension      string        `json:"un_dimension" yaml:"un_dimension"`
	U3TotalDimension int64         `json:"u3_total_dimension" yaml:"u3_total_dimension"`
	Fingerprint      string        `json:"fingerprint" yaml:"fingerprint"`
	Irreps           []irrepReport `json:"irreps,omitempty" yaml:"irreps,omitempty"`
}

func newReduceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce [n r4 r3 r2 r1 r0]",
		Short: "Reduce a U(N) irrep into U(3) irreps",
		Long: `Reduce a U(N) irrep into U(3) irreps for the oscillator shell n.

The six numbers are read from the arguments or, if none are given, from
standard input. For [f] = [4,2,2,2,2,0] on shell 2 pass: 2 1 0 4 0 1.
The command prints the analytical dimension of the U(N) irrep and the sum
of U(3) irrep dimensions weighted by their level dimensionalities; both
must agree.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != gelfand.Size+1 {
				return fmt.Errorf("expected 0 or %d arguments, got %d", gelfand.Size+1, len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool(listFlag)

			return a.reduce(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, list)
		},
	}
	cmd.Flags().BoolP(listFlag, "l", false, "list every U(3) irrep with its level dimensionality")

	return cmd
}

func (a *app) reduce(ctx context.Context, in io.Reader, out io.Writer, args []string, list bool) error {
	n, p, err := readShellAndPattern(args, in)
	if err != nil {
		return err
	}
	count := oscillator.Degeneracy(n)
	if gelfand.Sum(p) != count {
		return fmt.Errorf("arguments mismatch: pattern %v holds %d labels, shell %d needs %d: %w",
			p, gelfand.Sum(p), n, count, reduction.ErrParticleMismatch)
	}

	unDim, err := irrepdim.UN(p.Labels())
	if err != nil {
		return fmt.Errorf("U(N) dimension: %w", err)
	}

	r := reduction.New(
		reduction.WithTable(diffs.New(diffs.WithLogger(a.log))),
		reduction.WithWorkers(a.workers()),
		reduction.WithLogger(a.log),
	)
	r.GenerateXYZ(n)

	start := time.Now()
	var mult *reduction.Multiplicities
	if a.workers() > 1 {
		mult, err = r.ReduceParallel(ctx, p, count)
	} else {
		mult, err = r.Reduce(p, count)
	}
	if err != nil {
		return fmt.Errorf("reduce %v: %w", p, err)
	}
	a.log.Info("U3 weights generated",
		zap.Stringer("pattern", p),
		zap.Int("shell", n),
		zap.Int("weights", mult.Len()),
		zap.Duration("elapsed", time.Since(start)))

	report := reduceReport{
		Pattern:          p.String(),
		Labels:           p.Labels(),
		Shell:            n,
		Particles:        count,
		Weights:          mult.Len(),
		Paths:            mult.Total(),
		UNDimension:      unDim.String(),
		U3TotalDimension: mult.TotalDimension(),
		Fingerprint:      strconv.FormatUint(mult.Fingerprint(), 16),
	}
	if list {
		for _, irrep := range mult.Irreps() {
			report.Irreps = append(report.Irreps, irrepReport{
				Weight:       irrep.Weight,
				Multiplicity: irrep.Multiplicity,
				Dimension:    irrep.Dimension,
			})
		}
	}

	if a.output() == outputText {
		err = writeReduceText(out, report, list)
	} else {
		err = encode(out, a.output(), report)
	}
	if err != nil {
		return err
	}

	if report.UNDimension != strconv.FormatInt(report.U3TotalDimension, 10) {
		a.log.Error("dimension check failed",
			zap.String("un_dimension", report.UNDimension),
			zap.Int64("u3_total_dimension", report.U3TotalDimension))

		return fmt.Errorf("dimension check failed: U(N) %s != U(3) total %d", report.UNDimension, report.U3TotalDimension)
	}

	return nil
}

func writeReduceText(w io.Writer, report reduceReport, list bool) error {
	if _, err := fmt.Fprintf(w, "Input: %s\n", report.Pattern); err != nil {
		return err
	}
	if list {
		rows := make([][]string, 0, len(report.Irreps))
		for _, irrep := range report.Irreps {
			f := irrep.Weight
			rows = append(rows, []string{
				fmt.Sprintf("[%d,%d,%d]", f[0], f[1], f[2]),
				":",
				strconv.FormatInt(irrep.Multiplicity, 10),
			})
		}
		if err := writeColumns(w, rows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "U(N) irrep dim = %s\nU(3) irreps total dim = %d\n", report.UNDimension, report.U3TotalDimension)

	return err
}
