package combinatorics_test

import (
	"fmt"
	"strings"

	"github.com/Brazilian-Institute-of-Robotics/base-numeric/combinatorics"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCombination
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A stock of two A parts, one B and one C. Build every bundle of at
//	most two parts: the three singles first, then the four pairs.
//
// Mode: MaxSize (draw length 1..2)
//
// Complexity: O(d) per advance, d = distinct part kinds.
func ExampleCombination() {
	stock := []string{"A", "A", "B", "C"}
	c, err := combinatorics.NewCombination(stock, 2, combinatorics.MaxSize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		fmt.Println(strings.Join(c.Current(), " "))
		if !c.Next() {
			break
		}
	}
	// Output:
	// A
	// B
	// C
	// A A
	// A B
	// A C
	// B C
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCombination_exactSize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same stock, but draws of exactly two parts. The duplicate A
//	contributes the A A pair once; availability caps it there.
//
// Mode: ExactSize (draw length == 2)
func ExampleCombination_exactSize() {
	c, err := combinatorics.NewCombination([]string{"A", "A", "B", "C"}, 2, combinatorics.ExactSize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		fmt.Println(strings.Join(c.Current(), " "))
		if !c.Next() {
			break
		}
	}
	// Output:
	// A A
	// A B
	// A C
	// B C
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePermutation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Orderings of the letters S, E, E. The repeated E collapses what
//	would be six permutations into three distinct ones.
func ExamplePermutation() {
	p, err := combinatorics.NewPermutation([]string{"S", "E", "E"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		fmt.Println(strings.Join(p.Current(), ""))
		if !p.Next() {
			break
		}
	}
	// Output:
	// EES
	// ESE
	// SEE
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCountCombinations
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Predict the size of an enumeration before running it: the bundle
//	example above must emit seven draws.
func ExampleCountCombinations() {
	total := combinatorics.CountCombinations([]int{2, 1, 1}, 2, combinatorics.MaxSize)
	fmt.Println(total)
	// Output:
	// 7
}
