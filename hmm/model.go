package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// numStates is fixed by the model family: 0 = StateLow, 1 = StateHigh.
	numStates = 2

	// numSymbols is the size of the nucleotide alphabet.
	numSymbols = 4

	// rowTol is the tolerance for a probability row to sum to 1.
	rowTol = 1e-6
)

// Model is an immutable two-state HMM parameter bundle:
// initial distribution π, transition matrix A (A[i][j] = P(state j | state i))
// and emission matrix B over the fixed alphabet A=0, C=1, G=2, T=3.
//
// Construction validates every row; a *Model that exists is valid.
// All fields are unexported and never mutated, so a single Model may be
// queried concurrently without locking.
type Model struct {
	initial    [numStates]float64
	transition [numStates][numStates]float64
	emission   [numStates][numSymbols]float64

	// log2 views of the same parameters, precomputed once so the Viterbi
	// recursion never re-takes logarithms in its inner loop. Zero
	// probabilities map to -Inf, which propagates correctly through max.
	log2Initial    [numStates]float64
	log2Transition [numStates][numStates]float64
	log2Emission   [numStates][numSymbols]float64
}

// NewModel constructs a validated Model from explicit parameters.
//
// Each of initial, the rows of transition and the rows of emission must
// sum to 1 within 1e-6 and contain only entries in [0, 1]; any violation
// returns an error wrapping ErrInvalidModel naming the offending row.
func NewModel(initial [numStates]float64, transition [numStates][numStates]float64, emission [numStates][numSymbols]float64) (*Model, error) {
	if err := checkRow("initial", initial[:]); err != nil {
		return nil, err
	}
	for i := range transition {
		if err := checkRow(fmt.Sprintf("transition[%d]", i), transition[i][:]); err != nil {
			return nil, err
		}
	}
	for i := range emission {
		if err := checkRow(fmt.Sprintf("emission[%d]", i), emission[i][:]); err != nil {
			return nil, err
		}
	}

	m := &Model{initial: initial, transition: transition, emission: emission}
	for i := 0; i < numStates; i++ {
		m.log2Initial[i] = math.Log2(initial[i])
		for j := 0; j < numStates; j++ {
			m.log2Transition[i][j] = math.Log2(transition[i][j])
		}
		for k := 0; k < numSymbols; k++ {
			m.log2Emission[i][k] = math.Log2(emission[i][k])
		}
	}
	return m, nil
}

// DefaultModel returns THE documented default parameter set, the classic
// GC-content example:
//
//	π          = [0.5, 0.5]
//	A          = [[0.6, 0.4], [0.5, 0.5]]
//	B(L = low) = [A:0.3, C:0.2, G:0.2, T:0.3]
//	B(H = high)= [A:0.2, C:0.3, G:0.3, T:0.2]
//
// This is the only default in the module; call sites wanting different
// parameters must pass them to NewModel explicitly.
func DefaultModel() *Model {
	m, err := NewModel(
		[numStates]float64{0.5, 0.5},
		[numStates][numStates]float64{{0.6, 0.4}, {0.5, 0.5}},
		[numStates][numSymbols]float64{
			{0.3, 0.2, 0.2, 0.3}, // L
			{0.2, 0.3, 0.3, 0.2}, // H
		},
	)
	if err != nil {
		// The parameters above are constants that satisfy the row
		// invariants; reaching this is a defect in the constants.
		panic(err)
	}
	return m
}

// checkRow rejects rows that contain out-of-range entries or fail to sum
// to 1 within rowTol.
func checkRow(name string, row []float64) error {
	for k, p := range row {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s[%d] = %v out of [0,1]: %w", name, k, p, ErrInvalidModel)
		}
	}
	if s := floats.Sum(row); math.Abs(s-1) > rowTol {
		return fmt.Errorf("%s sums to %v, want 1: %w", name, s, ErrInvalidModel)
	}
	return nil
}

// EmissionProb returns P(symbol | state). It fails with ErrUnknownSymbol
// for bytes outside ACGT and with ErrInvalidModel for a state index other
// than StateLow or StateHigh.
func (m *Model) EmissionProb(state int, sym byte) (float64, error) {
	if state < 0 || state >= numStates {
		return 0, fmt.Errorf("state %d: %w", state, ErrInvalidModel)
	}
	k := symbolIndex(sym)
	if k < 0 {
		return 0, fmt.Errorf("symbol %q: %w", sym, ErrUnknownSymbol)
	}
	return m.emission[state][k], nil
}

// symbolIndex maps a nucleotide byte to its emission column, or -1 when
// the byte is outside the alphabet. Lowercase is not accepted: callers
// own input normalization.
func symbolIndex(sym byte) int {
	switch sym {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// encode maps a sequence to emission column indices, failing with
// ErrUnknownSymbol (and the offending position) on the first byte outside
// the alphabet. The engine never skips or substitutes symbols.
func encode(seq string) ([]int, error) {
	obs := make([]int, len(seq))
	for t := 0; t < len(seq); t++ {
		k := symbolIndex(seq[t])
		if k < 0 {
			return nil, fmt.Errorf("position %d, symbol %q: %w", t, seq[t], ErrUnknownSymbol)
		}
		obs[t] = k
	}
	return obs, nil
}
