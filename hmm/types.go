// Package hmm: state constants, decoding options and sentinel errors.
package hmm

import "errors"

// The two hidden states. The numeric values are part of the contract:
// decoders return paths of these ints, and segment extraction treats
// StateHigh runs as reportable intervals.
const (
	// StateLow is the low-GC / non-coding state, rendered as 'L'.
	StateLow = 0

	// StateHigh is the high-GC / coding state, rendered as 'H'.
	StateHigh = 1
)

// Sentinel errors for model construction and decoding.
var (
	// ErrInvalidModel indicates a parameter row does not sum to 1 within
	// tolerance, or contains an entry outside [0, 1].
	ErrInvalidModel = errors.New("hmm: invalid model parameters")

	// ErrUnknownSymbol indicates a sequence byte outside the ACGT alphabet.
	ErrUnknownSymbol = errors.New("hmm: symbol outside ACGT alphabet")

	// ErrInconsistentTrace indicates a backward pass received a scale trace
	// whose length does not match the sequence. Unreachable through the
	// exported API; it guards internal composition.
	ErrInconsistentTrace = errors.New("hmm: scale trace length does not match sequence")
)

// Options configures posterior decoding.
//
// Fields:
//   - PosteriorThreshold — minimum marginal P(StateHigh) for a position to
//     be called StateHigh. 0.5 calls the per-position argmax. Values
//     outside [0, 1] are permitted and behave monotonically: 0 calls every
//     position StateHigh, anything above 1 calls every position StateLow.
type Options struct {
	PosteriorThreshold float64
}

// DefaultOptions returns the documented defaults: threshold 0.5.
func DefaultOptions() Options {
	return Options{PosteriorThreshold: 0.5}
}
