package primegen

import (
	"math/big"

	"github.com/Ek4m/seedrsa/common"
	"github.com/Ek4m/seedrsa/prng"
)

// minCandidateBits is the smallest bit length the sampler accepts.
const minCandidateBits = 96

// SampleCandidate draws ceil(bits/32) words from state, most-significant
// word first, assembling them into a big integer of exactly bits bits. The
// top two bits and the least-significant bit are forced to 1 afterward,
// guaranteeing the result is odd and that multiplying two such candidates
// together never falls one bit short of the target modulus size.
//
// This mirrors the usual byte-assembly-and-bit-forcing approach to
// candidate generation, adapted to draw fixed-width words from a
// deterministic PRNG instead of raw bytes from crypto/rand.
func SampleCandidate(state *prng.State, bits int) (*big.Int, error) {
	if bits < minCandidateBits || bits%32 != 0 {
		return nil, common.NewKeyGenError(common.InvalidBits,
			"candidate bit length must be a multiple of 32 and >= %d, got %d", minCandidateBits, bits)
	}

	words := bits / 32
	cand := new(big.Int)
	word := new(big.Int)
	for i := 0; i < words; i++ {
		w := state.Next()
		cand.Lsh(cand, 32)
		word.SetUint64(uint64(w))
		cand.Or(cand, word)
	}

	cand.SetBit(cand, bits-1, 1)
	cand.SetBit(cand, bits-2, 1)
	cand.SetBit(cand, 0, 1)

	return cand, nil
}
