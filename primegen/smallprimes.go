package primegen

import (
	"math/big"

	"github.com/otiai10/primes"
)

// smallPrimeCeiling is the upper bound of the fixed trial-division table:
// every odd prime <= 997 (167 primes total).
const smallPrimeCeiling = 997

var smallPrimes []*big.Int

func init() {
	// Cache the small-prime table once at package load time instead of
	// recomputing it per call.
	table := primes.Globally.Until(smallPrimeCeiling)
	for _, p := range table.List() {
		if p < 3 {
			continue // the table excludes 2: candidates are always odd by construction
		}
		smallPrimes = append(smallPrimes, big.NewInt(p))
	}
}

// SmallPrimes returns the cached table of the 167 odd primes <= 997 used by
// the PrimalityOracle's trial-division stage.
func SmallPrimes() []*big.Int {
	return smallPrimes
}
