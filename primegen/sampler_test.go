package primegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ek4m/seedrsa/prng"
)

func TestSampleCandidateShapeInvariants(t *testing.T) {
	setUp("info")
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	for _, bits := range []int{96, 128, 256} {
		state := prng.NewState(seed)
		cand, err := SampleCandidate(state, bits)
		require.NoError(t, err, "bits=%d", bits)
		assert.Equal(t, bits, cand.BitLen(), "bits=%d", bits)
		assert.EqualValues(t, 1, cand.Bit(0), "bits=%d: candidate is even", bits)
		assert.EqualValues(t, 1, cand.Bit(bits-1), "bits=%d: top bit not set", bits)
		assert.EqualValues(t, 1, cand.Bit(bits-2), "bits=%d: second-from-top bit not set", bits)
	}
}

func TestSampleCandidateRejectsBadBits(t *testing.T) {
	setUp("info")
	seed := make([]byte, prng.SeedLen)

	cases := []int{0, 32, 64, 95, 97, 100}
	for _, bits := range cases {
		state := prng.NewState(seed)
		_, err := SampleCandidate(state, bits)
		assert.Error(t, err, "bits=%d: expected InvalidBits error", bits)
	}
}

func TestSampleCandidateIsDeterministic(t *testing.T) {
	setUp("info")
	seed := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1, 2, 3, 4, 5, 6}

	a, err := SampleCandidate(prng.NewState(seed), 128)
	require.NoError(t, err)
	b, err := SampleCandidate(prng.NewState(seed), 128)
	require.NoError(t, err)
	assert.Zero(t, a.Cmp(b), "same seed produced different candidates: %s != %s", a, b)
}
