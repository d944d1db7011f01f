package gelfand_test

import (
	"fmt"

	"github.com/katalvlaran/untou3/gelfand"
)

// ExampleFromLabels converts the U(6) irrep [4,2,2,2,2,0] into multiplicity
// form and shows its cache mask.
func ExampleFromLabels() {
	p, err := gelfand.FromLabels([]int{4, 2, 2, 2, 2, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p, gelfand.Sum(p))
	fmt.Printf("%05b\n", gelfand.Encode(p))
	// Output:
	// [1, 0, 4, 0, 1] 6
	// 10101
}
