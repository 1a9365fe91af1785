// Package seedrsa is the top-level Driver: it validates arguments, splits
// the caller's seed into two independent halves, runs two parallel prime
// searches, and assembles the result. This is the module's single exported
// operation.
package seedrsa

import (
	"context"
	"math/big"
	"sync"

	"github.com/Ek4m/seedrsa/common"
	"github.com/Ek4m/seedrsa/prng"
	"github.com/Ek4m/seedrsa/primegen"
	"github.com/Ek4m/seedrsa/rsakey"
)

// MinBits is the smallest modulus size Generate accepts: each half must be
// at least 96 bits (primegen.minCandidateBits), so the modulus itself must
// be at least 192.
const MinBits = 192

// DefaultExponent is used when Generate is called with a nil exponent.
var DefaultExponent = big.NewInt(65537)

// Result bundles the public and private fields a caller needs, plus the
// parameters actually used, so a JWK/DER encoder (out of scope here) never
// has to re-derive bits from n.
type Result struct {
	Bits    int
	Public  *rsakey.PublicFields
	Private *rsakey.PrivateFields
}

// Generate deterministically derives an RSA key pair from seed. Same
// (bits, seed, e) always yields the same result.
func Generate(ctx context.Context, bits int, seed []byte, e *big.Int) (*Result, error) {
	if e == nil {
		e = DefaultExponent
	}

	if err := validateArgs(bits, seed, e); err != nil {
		return nil, err
	}

	pSeed, qSeed := seed[:prng.SeedLen], seed[prng.SeedLen:2*prng.SeedLen]
	pBits := bits / 2
	qBits := bits - pBits

	p, q, err := searchBoth(ctx, pBits, pSeed, qBits, qSeed, e)
	if err != nil {
		return nil, err
	}

	public, private, err := rsakey.Assemble(ctx, p, q, e, bits)
	if err != nil {
		return nil, err
	}

	return &Result{Bits: bits, Public: public, Private: private}, nil
}

// searchBoth runs the two halves' prime searches as parallel goroutines
// joined on a WaitGroup, the usual context + WaitGroup shape over a fixed
// set of producer goroutines, here exactly the two fixed producers this
// Driver needs.
func searchBoth(ctx context.Context, pBits int, pSeed []byte, qBits int, qSeed []byte, e *big.Int) (p, q *big.Int, err error) {
	var wg sync.WaitGroup
	var pErr, qErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		p, pErr = primegen.Search(ctx, pBits, pSeed, e)
	}()
	go func() {
		defer wg.Done()
		q, qErr = primegen.Search(ctx, qBits, qSeed, e)
	}()
	wg.Wait()

	if aggErr := common.AggregateErrors(pErr, qErr); aggErr != nil {
		return nil, nil, aggErr
	}
	return p, q, nil
}

func validateArgs(bits int, seed []byte, e *big.Int) error {
	var bitsErr, seedErr error

	if bits <= 0 || bits%32 != 0 || bits < MinBits {
		bitsErr = common.NewKeyGenError(common.InvalidBits,
			"bits must be a positive multiple of 32 and >= %d, got %d", MinBits, bits)
	}
	if len(seed) < 2*prng.SeedLen {
		seedErr = common.NewKeyGenError(common.InvalidSeed,
			"seed must be at least %d bytes, got %d", 2*prng.SeedLen, len(seed))
	}

	return common.AggregateErrors(bitsErr, seedErr)
}
