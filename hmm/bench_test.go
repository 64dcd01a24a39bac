package hmm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dnahmm/hmm"
)

// benchSequence builds a reproducible random sequence of length n.
func benchSequence(n int) string {
	return hmm.RandomSequence(n, rand.New(rand.NewSource(42)))
}

// benchmarkLogLikelihood times the scaled forward evaluation at length n.
func benchmarkLogLikelihood(b *testing.B, n int) {
	m := hmm.DefaultModel()
	seq := benchSequence(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := hmm.LogLikelihood(m, seq); err != nil {
			b.Fatalf("LogLikelihood failed: %v", err)
		}
	}
}

// benchmarkViterbi times decoding with full backtrace at length n.
func benchmarkViterbi(b *testing.B, n int) {
	m := hmm.DefaultModel()
	seq := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := hmm.Viterbi(m, seq); err != nil {
			b.Fatalf("Viterbi failed: %v", err)
		}
	}
}

// benchmarkPosterior times the full forward-backward decode at length n.
func benchmarkPosterior(b *testing.B, n int) {
	m := hmm.DefaultModel()
	seq := benchSequence(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hmm.PosteriorDecode(m, seq, nil); err != nil {
			b.Fatalf("PosteriorDecode failed: %v", err)
		}
	}
}

func BenchmarkLogLikelihood_100(b *testing.B)  { benchmarkLogLikelihood(b, 100) }
func BenchmarkLogLikelihood_10K(b *testing.B)  { benchmarkLogLikelihood(b, 10_000) }
func BenchmarkLogLikelihood_1M(b *testing.B)   { benchmarkLogLikelihood(b, 1_000_000) }
func BenchmarkViterbi_100(b *testing.B)        { benchmarkViterbi(b, 100) }
func BenchmarkViterbi_10K(b *testing.B)        { benchmarkViterbi(b, 10_000) }
func BenchmarkPosteriorDecode_100(b *testing.B) { benchmarkPosterior(b, 100) }
func BenchmarkPosteriorDecode_10K(b *testing.B) { benchmarkPosterior(b, 10_000) }
