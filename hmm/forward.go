package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogLikelihood computes log P(seq | m) with the scaled forward recursion,
// in natural-log units.
//
// Raw forward probabilities underflow to zero beyond a few dozen symbols;
// the recursion therefore renormalizes the forward vector at every
// position and accumulates the discarded scales, whose log-sum is exactly
// the sequence log-likelihood. All intermediates stay in [0, 1], so the
// result is finite for any length.
//
// An empty sequence — or a position where the model assigns zero
// probability to both states — yields math.Inf(-1) with a nil error:
// no information was observed. The only error is ErrUnknownSymbol.
func LogLikelihood(m *Model, seq string) (float64, error) {
	return logLikelihood(m, seq, math.Log)
}

// Log2Likelihood is LogLikelihood in base-2 units. A single call uses one
// base throughout; convert between the two results with math.Ln2, never by
// mixing bases inside a recursion.
func Log2Likelihood(m *Model, seq string) (float64, error) {
	return logLikelihood(m, seq, math.Log2)
}

// Probability returns 2^Log2Likelihood(m, seq): the plain probability of
// the sequence, for human-readable presentation. It underflows to 0 for
// long sequences; any further computation should use the log forms.
func Probability(m *Model, seq string) (float64, error) {
	l2, err := Log2Likelihood(m, seq)
	if err != nil {
		return 0, err
	}
	return math.Exp2(l2), nil
}

// logLikelihood runs the rolling-vector forward recursion, parametric in
// the log base. Only the current forward vector is kept; evaluation needs
// the scales, not the trace.
func logLikelihood(m *Model, seq string, logFn func(float64) float64) (float64, error) {
	obs, err := encode(seq)
	if err != nil {
		return 0, err
	}
	n := len(obs)
	if n == 0 {
		return math.Inf(-1), nil
	}

	var prev [numStates]float64
	for i := 0; i < numStates; i++ {
		prev[i] = m.initial[i] * m.emission[i][obs[0]]
	}
	s := floats.Sum(prev[:])
	if s == 0 {
		return math.Inf(-1), nil
	}
	floats.Scale(1/s, prev[:])
	logp := logFn(s)

	for t := 1; t < n; t++ {
		var cur [numStates]float64
		for j := 0; j < numStates; j++ {
			var sum float64
			for i := 0; i < numStates; i++ {
				sum += prev[i] * m.transition[i][j]
			}
			cur[j] = sum * m.emission[j][obs[t]]
		}
		s = floats.Sum(cur[:])
		if s == 0 {
			return math.Inf(-1), nil
		}
		floats.Scale(1/s, cur[:])
		logp += logFn(s)
		prev = cur
	}
	return logp, nil
}

// forwardScaled runs the forward recursion keeping the full normalized
// trace and its scales, for composition with the backward pass. Each
// alpha[t] sums to 1. ok is false when some position's raw sum was zero
// (unrecoverable underflow: the model assigns the observed prefix zero
// probability), in which case the partial trace must not be used.
func forwardScaled(m *Model, obs []int) (alpha [][numStates]float64, scales []float64, ok bool) {
	n := len(obs)
	alpha = make([][numStates]float64, n)
	scales = make([]float64, n)
	if n == 0 {
		return alpha, scales, true
	}

	for i := 0; i < numStates; i++ {
		alpha[0][i] = m.initial[i] * m.emission[i][obs[0]]
	}
	s := floats.Sum(alpha[0][:])
	if s == 0 {
		return nil, nil, false
	}
	floats.Scale(1/s, alpha[0][:])
	scales[0] = s

	for t := 1; t < n; t++ {
		for j := 0; j < numStates; j++ {
			var sum float64
			for i := 0; i < numStates; i++ {
				sum += alpha[t-1][i] * m.transition[i][j]
			}
			alpha[t][j] = sum * m.emission[j][obs[t]]
		}
		s = floats.Sum(alpha[t][:])
		if s == 0 {
			return nil, nil, false
		}
		floats.Scale(1/s, alpha[t][:])
		scales[t] = s
	}
	return alpha, scales, true
}
