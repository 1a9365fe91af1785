package primegen

import (
	"context"
	"math/big"

	"github.com/Ek4m/seedrsa/prng"
)

// Search drives the sampler/oracle pair to produce a probable prime of
// exactly bits bits from a 16-byte seed half. On rejection it does not
// resample: it draws one more PRNG word and flips a single interior bit of
// the current candidate, preserving the forced MSB pair and LSB, then
// retries. This is deliberately cheaper than a full resample and, together
// with the PRNG being seeded only from seedHalf, is what makes the choice
// of prime for a given seed fully deterministic.
//
// Structurally this is the usual outer `for { select { ... } }` retry loop:
// ctx is checked once per rejection, so an abandoned Generate call can
// unwind a running search cleanly even though nothing bounds how long the
// search itself may run.
func Search(ctx context.Context, bits int, seedHalf []byte, e *big.Int) (*big.Int, error) {
	state := prng.NewState(seedHalf)

	cand, err := SampleCandidate(state, bits)
	if err != nil {
		return nil, err // Generate checks only the modulus size; a half that is not a multiple of 32 (bits=224 gives 112) fails here
	}

	for !IsProbablePrime(cand, state, e) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		word := state.Next()
		shift := uint(word%uint32(bits-3)) + 1
		cand.SetBit(cand, int(shift), 1-cand.Bit(int(shift)))
	}

	return cand, nil
}
