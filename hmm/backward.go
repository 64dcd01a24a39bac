package hmm

import "fmt"

// backwardScaled computes the backward trace on the same normalized
// footing as forwardScaled: beta[n-1] = [1, 1], and each earlier position
// divides by the NEXT position's forward scale. That division is what
// makes alpha[t][i] * beta[t][i] proportional to the true joint
// probability of being in state i at position t, which is all the
// posterior decoder needs.
//
// scales must be the trace produced by forwardScaled for the same
// sequence; a length mismatch is a contract violation and fails with
// ErrInconsistentTrace rather than silently truncating.
func backwardScaled(m *Model, obs []int, scales []float64) ([][numStates]float64, error) {
	n := len(obs)
	if len(scales) != n {
		return nil, fmt.Errorf("%d scales for %d observations: %w", len(scales), n, ErrInconsistentTrace)
	}
	beta := make([][numStates]float64, n)
	if n == 0 {
		return beta, nil
	}

	for i := 0; i < numStates; i++ {
		beta[n-1][i] = 1
	}
	for t := n - 2; t >= 0; t-- {
		for i := 0; i < numStates; i++ {
			var sum float64
			for j := 0; j < numStates; j++ {
				sum += m.transition[i][j] * m.emission[j][obs[t+1]] * beta[t+1][j]
			}
			beta[t][i] = sum / scales[t+1]
		}
	}
	return beta, nil
}
