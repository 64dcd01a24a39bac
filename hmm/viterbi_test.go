package hmm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dnahmm/hmm"
	"github.com/katalvlaran/dnahmm/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestViterbi_EmptySequence verifies the empty path and -Inf score
// sentinel.
func TestViterbi_EmptySequence(t *testing.T) {
	m := hmm.DefaultModel()

	path, score, err := hmm.Viterbi(m, "")
	assert.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, math.IsInf(score, -1), "empty sequence must score -Inf")
}

// TestViterbi_Golden pins the default-model decoding of GGCACTGAA:
// the GC-rich prefix decodes High, the AT-rich tail Low.
func TestViterbi_Golden(t *testing.T) {
	m := hmm.DefaultModel()

	path, score, err := hmm.Viterbi(m, "GGCACTGAA")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0}, path)
	assert.InDelta(t, -24.487443319769202, score, 1e-6, "joint log2 path score")
	assert.Equal(t, "HHHLLLLLL", hmm.Labels(path))
}

// TestViterbi_UnknownSymbol verifies decoding is all-or-nothing on a bad
// byte.
func TestViterbi_UnknownSymbol(t *testing.T) {
	m := hmm.DefaultModel()

	path, _, err := hmm.Viterbi(m, "ACGU")
	assert.ErrorIs(t, err, hmm.ErrUnknownSymbol)
	assert.Nil(t, path, "no partial path on failure")
}

// TestViterbi_TieBreakLowState pins the tie-break policy with a fully
// symmetric model: every candidate score is exactly equal at every
// position, so the decoded path must be all StateLow — the lower state
// wins ties in the recursion AND at termination.
func TestViterbi_TieBreakLowState(t *testing.T) {
	m, err := hmm.NewModel(
		[2]float64{0.5, 0.5},
		[2][2]float64{{0.5, 0.5}, {0.5, 0.5}},
		[2][4]float64{
			{0.25, 0.25, 0.25, 0.25},
			{0.25, 0.25, 0.25, 0.25},
		},
	)
	require.NoError(t, err)

	path, score, err := hmm.Viterbi(m, "ACGT")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, path, "ties must resolve to StateLow everywhere")
	// Every step costs log2(0.5 * 0.25) = -3; four steps: -12.
	assert.InDelta(t, -12.0, score, 1e-12)
}

// TestViterbi_SegmentRoundTrip checks that extracting segments from a
// decoded path and re-expanding them reconstructs the path exactly.
func TestViterbi_SegmentRoundTrip(t *testing.T) {
	m := hmm.DefaultModel()
	seqs := []string{"GGCACTGAA", "A", "GCGCGC", "ATATATAT", "GGCACTGAAGGCGGCACT"}

	for _, seq := range seqs {
		path, _, err := hmm.Viterbi(m, seq)
		require.NoError(t, err, "seq %q", seq)

		segs := segment.FromStates(path)
		assert.Equal(t, path, segment.Expand(segs, len(path)), "round-trip for %q", seq)
	}
}

// TestLabels_Rendering checks the fixed state→label mapping.
func TestLabels_Rendering(t *testing.T) {
	assert.Equal(t, "", hmm.Labels(nil))
	assert.Equal(t, "LHHL", hmm.Labels([]int{0, 1, 1, 0}))
}
