package hmm

import "math/rand"

// alphabet in emission-column order.
const alphabet = "ACGT"

// RandomSequence returns a uniformly random ACGT sequence of length n,
// drawn from r. Callers own the generator, so results are reproducible
// from a seeded *rand.Rand; benchmarks and cross-validation tests use
// exactly that.
func RandomSequence(n int, r *rand.Rand) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}
