// Package dnahmm infers hidden structure along DNA sequences with a
// two-state Hidden Markov Model — from raw likelihoods to labeled
// coding/non-coding segments.
//
// 🚀 What is dnahmm?
//
//	A small, pure-Go inference library for the classic 2-state nucleotide
//	HMM (states L = low GC / non-coding, H = high GC / coding):
//		• Evaluation: scaled forward recursion → sequence log-likelihood
//		• Decoding: log2 Viterbi with backtrace → most probable state path
//		• Posterior: forward-backward marginals with thresholded calls
//		• Segments: collapse any 0/1 state path into inclusive runs
//
// ✨ Why choose dnahmm?
//
//   - Underflow-proof – per-position scaling keeps every intermediate in [0,1]
//   - Deterministic – one documented default model, one documented tie-break
//   - Concurrency-friendly – models are immutable; every query owns its trace
//   - Pure Go – no cgo, no hidden state, no I/O
//
// Everything is organized under two subpackages:
//
//	hmm/     — Model, forward/backward engines, Viterbi, posterior decoder
//	segment/ — contiguous-run extraction over 0/1 state paths
//
// Quick ASCII example:
//
//	seq    G G C A C T G A A
//	states H H H L L L L L L   ← Viterbi
//	segs   [0,2]               ← segment.FromStates
//
// See examples/ for a full walkthrough and each package's doc.go for the
// recursion details and error contracts.
//
//	go get github.com/katalvlaran/dnahmm
package dnahmm
