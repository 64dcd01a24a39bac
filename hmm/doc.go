// Package hmm implements evaluation and decoding for a two-state
// Hidden Markov Model over the nucleotide alphabet {A, C, G, T}.
//
// 🚀 What is hmm?
//
//	The probabilistic core of dnahmm: given an immutable Model (initial
//	distribution π, 2×2 transition matrix A, 2×4 emission matrix B) and a
//	DNA sequence, it answers two questions:
//	  • How probable is the sequence?  → LogLikelihood / Log2Likelihood
//	  • Which states generated it?     → Viterbi / PosteriorDecode
//
// ✨ Key features:
//   - scaled forward recursion: per-position renormalization with the
//     discarded scale tracked separately, so likelihoods never underflow
//     even for sequences of millions of symbols
//   - log2-domain Viterbi with explicit backpointers and a single
//     documented tie-break (lower-numbered state wins exact ties)
//   - forward-backward posterior marginals with a configurable threshold
//   - two interchangeable Engine implementations behind one interface:
//     ScaledEngine (any length) and DirectEngine (unscaled reference,
//     short sequences only)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dnahmm/hmm"
//
//	m := hmm.DefaultModel()
//	path, score, err := hmm.Viterbi(m, "GGCACTGAA")
//	// path  = [1 1 1 0 0 0 0 0 0]
//	// hmm.Labels(path) = "HHHLLLLLL"
//
// Errors:
//   - ErrInvalidModel      — a parameter row fails to sum to 1, or an
//     entry lies outside [0, 1].
//   - ErrUnknownSymbol     — the sequence contains a byte outside ACGT.
//   - ErrInconsistentTrace — a backward pass was handed a scale trace of
//     the wrong length (programming-contract violation).
//
// An empty sequence, or a position where the model assigns zero
// probability to both states, is NOT an error: the likelihood is the
// negative-infinity sentinel (math.Inf(-1)) — no information observed.
//
// Performance:
//
//   - Time:   O(n) per query (fixed 2-state inner loops)
//   - Memory: O(1) for LogLikelihood, O(n) for decoding traces
//
// All queries are pure: a Model may be shared read-only across any number
// of concurrent goroutines with no locking.
package hmm
