package segment_test

import (
	"fmt"

	"github.com/katalvlaran/dnahmm/segment"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleFromStates
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A decoder produced the state mask 0110100111. The three runs of 1s
//	become three inclusive intervals, in left-to-right order.
func ExampleFromStates() {
	states := []int{0, 1, 1, 0, 1, 0, 0, 1, 1, 1}

	for _, s := range segment.FromStates(states) {
		fmt.Printf("[%d, %d]\n", s.Start, s.End)
	}
	// Output:
	// [1, 2]
	// [4, 4]
	// [7, 9]
}
