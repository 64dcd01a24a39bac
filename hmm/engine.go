package hmm

import "math"

// Engine is the abstract evaluate/decode capability over one Model: any
// implementation scores a sequence and recovers its most probable state
// path. Independently built realizations are interchangeable behind this
// contract, which is what lets tests (and ports) cross-validate one
// implementation against another.
type Engine interface {
	// LogLikelihood returns ln P(seq | model), math.Inf(-1) for no
	// information (empty sequence or zero support).
	LogLikelihood(seq string) (float64, error)

	// Log2Likelihood is LogLikelihood in base-2 units.
	Log2Likelihood(seq string) (float64, error)

	// Decode returns the most probable state path and its joint
	// log2-probability, under the package tie-break (lower state wins).
	Decode(seq string) ([]int, float64, error)
}

// Compile-time interchangeability.
var (
	_ Engine = (*ScaledEngine)(nil)
	_ Engine = (*DirectEngine)(nil)
)

// ScaledEngine is the production implementation: scaled forward recursion
// for likelihoods, log2 Viterbi for decoding. Valid for any sequence
// length.
type ScaledEngine struct {
	m *Model
}

// NewScaledEngine binds the scaled implementation to m.
func NewScaledEngine(m *Model) *ScaledEngine {
	return &ScaledEngine{m: m}
}

func (e *ScaledEngine) LogLikelihood(seq string) (float64, error) {
	return LogLikelihood(e.m, seq)
}

func (e *ScaledEngine) Log2Likelihood(seq string) (float64, error) {
	return Log2Likelihood(e.m, seq)
}

func (e *ScaledEngine) Decode(seq string) ([]int, float64, error) {
	return Viterbi(e.m, seq)
}

// DirectEngine is the naive probability-domain implementation: straight
// products, no scaling, no log recursion. Forward probabilities decay
// geometrically, so it is numerically trustworthy only for short
// sequences (a few dozen symbols); its role is cross-validating
// ScaledEngine, which must agree with it wherever DirectEngine does not
// underflow.
type DirectEngine struct {
	m *Model
}

// NewDirectEngine binds the unscaled reference implementation to m.
func NewDirectEngine(m *Model) *DirectEngine {
	return &DirectEngine{m: m}
}

func (e *DirectEngine) LogLikelihood(seq string) (float64, error) {
	p, err := e.probability(seq)
	if err != nil {
		return 0, err
	}
	return math.Log(p), nil // ln 0 = -Inf: the no-information sentinel
}

func (e *DirectEngine) Log2Likelihood(seq string) (float64, error) {
	p, err := e.probability(seq)
	if err != nil {
		return 0, err
	}
	return math.Log2(p), nil
}

// probability sums the unscaled forward recursion: P(seq | model) exactly,
// as long as the products stay above the float64 underflow threshold.
func (e *DirectEngine) probability(seq string) (float64, error) {
	obs, err := encode(seq)
	if err != nil {
		return 0, err
	}
	n := len(obs)
	if n == 0 {
		return 0, nil
	}

	m := e.m
	var prev [numStates]float64
	for i := 0; i < numStates; i++ {
		prev[i] = m.initial[i] * m.emission[i][obs[0]]
	}
	for t := 1; t < n; t++ {
		var cur [numStates]float64
		for j := 0; j < numStates; j++ {
			var sum float64
			for i := 0; i < numStates; i++ {
				sum += prev[i] * m.transition[i][j]
			}
			cur[j] = sum * m.emission[j][obs[t]]
		}
		prev = cur
	}
	return prev[0] + prev[1], nil
}

// Decode is max-product Viterbi in the probability domain, with the same
// lower-state tie-break as the log2 recursion. The returned score is the
// log2 of the best path probability, so both engines report in the same
// units.
func (e *DirectEngine) Decode(seq string) ([]int, float64, error) {
	obs, err := encode(seq)
	if err != nil {
		return nil, 0, err
	}
	n := len(obs)
	if n == 0 {
		return nil, math.Inf(-1), nil
	}

	m := e.m
	v := make([][numStates]float64, n)
	back := make([][numStates]int, n)
	for i := 0; i < numStates; i++ {
		v[0][i] = m.initial[i] * m.emission[i][obs[0]]
	}
	for t := 1; t < n; t++ {
		for j := 0; j < numStates; j++ {
			best := v[t-1][0] * m.transition[0][j]
			argmax := 0
			for i := 1; i < numStates; i++ {
				if cand := v[t-1][i] * m.transition[i][j]; cand > best {
					best = cand
					argmax = i
				}
			}
			v[t][j] = best * m.emission[j][obs[t]]
			back[t][j] = argmax
		}
	}

	final := 0
	for i := 1; i < numStates; i++ {
		if v[n-1][i] > v[n-1][final] {
			final = i
		}
	}

	path := make([]int, n)
	path[n-1] = final
	for t := n - 1; t >= 1; t-- {
		path[t-1] = back[t][path[t]]
	}
	return path, math.Log2(v[n-1][final]), nil
}
