package hmm

// PosteriorProbs computes, for every position t, the marginal posterior
// P(state = StateHigh | full sequence) — marginalizing over all paths,
// past and future context included. This is the forward-backward gamma:
//
//	γ1(t) = α(t,1)·β(t,1) / (α(t,0)·β(t,0) + α(t,1)·β(t,1))
//
// where alpha and beta share the forward scaling, so the scales cancel in
// the ratio. A position whose denominator is zero reports 0 (underflow
// degenerate case: no evidence for either state). If the forward pass
// itself underflows, every position reports 0 for the same reason.
//
// An empty sequence yields an empty slice. The only error is
// ErrUnknownSymbol.
func PosteriorProbs(m *Model, seq string) ([]float64, error) {
	obs, err := encode(seq)
	if err != nil {
		return nil, err
	}
	n := len(obs)
	probs := make([]float64, n)
	if n == 0 {
		return probs, nil
	}

	alpha, scales, ok := forwardScaled(m, obs)
	if !ok {
		return probs, nil
	}
	beta, err := backwardScaled(m, obs, scales)
	if err != nil {
		return nil, err
	}

	for t := 0; t < n; t++ {
		g0 := alpha[t][0] * beta[t][0]
		g1 := alpha[t][1] * beta[t][1]
		if s := g0 + g1; s > 0 {
			probs[t] = g1 / s
		}
	}
	return probs, nil
}

// PosteriorDecode thresholds the per-position marginals into a state
// path: position t is StateHigh iff P(StateHigh) >= opts.PosteriorThreshold.
// A nil opts uses DefaultOptions (threshold 0.5, the per-position argmax).
//
// This is NOT the Viterbi path: each position is called by its own
// marginal, not by membership in the single best joint path, and the two
// decoders can legitimately disagree at individual positions.
func PosteriorDecode(m *Model, seq string, opts *Options) ([]int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	probs, err := PosteriorProbs(m, seq)
	if err != nil {
		return nil, err
	}
	path := make([]int, len(probs))
	for t, p := range probs {
		if p >= o.PosteriorThreshold {
			path[t] = StateHigh
		}
	}
	return path, nil
}
