// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
)

type stepReport struct {
	Delta string `json:"delta" yaml:"delta"`
	Index int    `json:"index" yaml:"index"`
}

type maskReport struct {
	Mask    uint32       `json:"mask" yaml:"mask"`
	Pattern string       `json:"pattern" yaml:"pattern"`
	Steps   []stepReport `json:"steps" yaml:"steps"`
}

func newDiffsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diffs",
		Short: "Dump the lowering-step table for every mask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.dumpDiffs(cmd.OutOrStdout())
		},
	}
}

func (a *app) dumpDiffs(out io.Writer) error {
	tbl := diffs.New(diffs.WithWorkers(a.workers()), diffs.WithLogger(a.log))

	if a.output() != outputText {
		reports := make([]maskReport, 0, gelfand.MaskCount)
		for m := gelfand.Mask(0); m < gelfand.MaskCount; m++ {
			r := maskReport{Mask: uint32(m), Pattern: gelfand.Decode(m).String(), Steps: []stepReport{}}
			for _, s := range tbl.ByMask(m) {
				r.Steps = append(r.Steps, stepReport{Delta: s.Delta.String(), Index: s.Index})
			}
			reports = append(reports, r)
		}

		return encode(out, a.output(), reports)
	}

	for m := gelfand.Mask(0); m < gelfand.MaskCount; m++ {
		steps := tbl.ByMask(m)
		if _, err := fmt.Fprintf(out, "Pattern: %s:\nDiffs:\n   count = %d\n", gelfand.Decode(m), len(steps)); err != nil {
			return err
		}
		for _, s := range steps {
			if _, err := fmt.Fprintf(out, "   %s (weight = %d)\n", s.Delta, s.Index); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	return nil
}
