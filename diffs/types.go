// SPDX-License-Identifier: MIT

package diffs

import "github.com/katalvlaran/untou3/gelfand"

// Step is one lowering delta together with its derived quantum index.
//
// Delta entries sum to −1. Index lies in [0, gelfand.MaxLabel] and equals
// the sum of the labels removed, i.e. Σ_k −Delta[k]·(MaxLabel−k).
type Step struct {
	Delta gelfand.Pattern
	Index int
}

// Table is the complete lowering-step cache.
// steps holds all masks back to back; first/count locate each mask's run.
type Table struct {
	steps []Step
	first [gelfand.MaskCount]int
	count [gelfand.MaskCount]int
}
