// Package segment collapses 0/1 state paths into contiguous labeled
// intervals.
//
// 🚀 What is segment?
//
//	The last step of a decoding pipeline: once a decoder has assigned a
//	state (0 = low, 1 = high) to every sequence position, FromStates
//	reports each maximal run of 1s as an inclusive (Start, End) pair —
//	the "coding regions" of the biological framing.
//
// ✨ Key features:
//   - pure single-pass scan: O(n) time, no dependencies, no allocation
//     beyond the result
//   - inclusive 0-based intervals, deterministic left-to-right order
//   - Expand inverts FromStates, reconstituting the 0/1 mask exactly
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dnahmm/segment"
//
//	segs := segment.FromStates([]int{0, 1, 1, 0, 1, 0, 0, 1, 1, 1})
//	// segs = [{1 2} {4 4} {7 9}]
//
// The package is deliberately decoupled from hmm: any 0/1 int slice is a
// valid input, whichever decoder (or hand-written mask) produced it.
package segment
