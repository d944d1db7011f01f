package reduction_test

import (
	"fmt"

	"github.com/katalvlaran/untou3/gelfand"
	"github.com/katalvlaran/untou3/reduction"
)

// ExampleReducer_Reduce reduces the U(6) irrep [4,2,2,2,2,0] on shell n=2
// and prints the U(3) irreps with their level dimensionalities.
func ExampleReducer_Reduce() {
	r := reduction.New()
	// n=2 gives N = (n+1)(n+2)/2 = 6 single-particle states.
	r.GenerateXYZ(2)

	mult, err := r.Reduce(gelfand.Pattern{1, 0, 4, 0, 1}, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, irrep := range mult.Irreps() {
		fmt.Printf("%v : %d\n", irrep.Weight, irrep.Multiplicity)
	}
	fmt.Println("total dim =", mult.TotalDimension())
	// Output:
	// [12 8 4] : 1
	// [12 6 6] : 1
	// [11 8 5] : 1
	// [11 7 6] : 1
	// [10 10 4] : 1
	// [10 9 5] : 1
	// [10 8 6] : 3
	// [9 8 7] : 1
	// [8 8 8] : 1
	// total dim = 405
}
