package hmm

import (
	"math"
	"strings"
)

// Viterbi computes the single most probable state path for seq under m,
// and that path's joint log2-probability.
//
// The recursion runs in the log2 domain: only a max is taken across
// paths (never a sum), so logs alone prevent cumulative underflow and no
// scaling is needed. Zero-probability parameters enter as -Inf and are
// never selected while a finite candidate exists.
//
//	v[0][i]    = log2 π(i) + log2 B(i, seq[0])
//	v[t][j]    = max_i { v[t-1][i] + log2 A(i,j) } + log2 B(j, seq[t])
//	back[t][j] = the i achieving that max
//
// Tie-break: on an exactly equal score the lower-numbered state wins —
// both inside the recursion and when choosing the final state. One
// policy, applied everywhere, so decoded paths are fully deterministic.
//
// An empty sequence yields a nil path and a math.Inf(-1) score. The only
// error is ErrUnknownSymbol.
func Viterbi(m *Model, seq string) (path []int, log2Score float64, err error) {
	obs, err := encode(seq)
	if err != nil {
		return nil, 0, err
	}
	n := len(obs)
	if n == 0 {
		return nil, math.Inf(-1), nil
	}

	v := make([][numStates]float64, n)
	back := make([][numStates]int, n)

	for i := 0; i < numStates; i++ {
		v[0][i] = m.log2Initial[i] + m.log2Emission[i][obs[0]]
	}
	for t := 1; t < n; t++ {
		for j := 0; j < numStates; j++ {
			best := v[t-1][0] + m.log2Transition[0][j]
			argmax := 0
			for i := 1; i < numStates; i++ {
				if cand := v[t-1][i] + m.log2Transition[i][j]; cand > best {
					best = cand
					argmax = i
				}
			}
			v[t][j] = best + m.log2Emission[j][obs[t]]
			back[t][j] = argmax
		}
	}

	// Termination: same strict-> comparison as the recursion, so state 0
	// keeps exact ties here too.
	final := 0
	for i := 1; i < numStates; i++ {
		if v[n-1][i] > v[n-1][final] {
			final = i
		}
	}

	path = make([]int, n)
	path[n-1] = final
	for t := n - 1; t >= 1; t-- {
		path[t-1] = back[t][path[t]]
	}
	return path, v[n-1][final], nil
}

// Labels renders a state path as a string of 'H' (StateHigh) and 'L'
// (StateLow) bytes, one per position.
func Labels(path []int) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, s := range path {
		if s == StateHigh {
			b.WriteByte('H')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}
