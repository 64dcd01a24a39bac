package segment

// Segment is a maximal run of state-1 positions, as an inclusive 0-based
// index range: Start is the first position of the run, End the last.
type Segment struct {
	Start int
	End   int
}

// FromStates scans a 0/1 state path left to right and returns every
// maximal run of 1s, in order. Positions holding any value other than 1
// never belong to a segment. An empty or all-zero input yields nil.
func FromStates(states []int) []Segment {
	var segs []Segment
	n := len(states)
	for i := 0; i < n; i++ {
		if states[i] != 1 {
			continue
		}
		start := i
		for i+1 < n && states[i+1] == 1 {
			i++
		}
		segs = append(segs, Segment{Start: start, End: i})
	}
	return segs
}

// Expand is the inverse of FromStates: it rebuilds a 0/1 path of length n
// with a 1 at every position covered by some segment. Segments must lie
// within [0, n) and be non-overlapping, as FromStates produces them.
func Expand(segs []Segment, n int) []int {
	states := make([]int, n)
	for _, s := range segs {
		for i := s.Start; i <= s.End; i++ {
			states[i] = 1
		}
	}
	return states
}
