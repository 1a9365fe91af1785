package primegen

import (
	"math/big"

	"github.com/Ek4m/seedrsa/common"
	"github.com/Ek4m/seedrsa/prng"
)

// roundSchedule maps a candidate's bit length to the number of Miller-Rabin
// rounds needed for a target error rate of 2^-80.
var roundSchedule = []struct {
	maxBits int
	rounds  int
}{
	{100, 27},
	{150, 18},
	{200, 15},
	{250, 12},
	{300, 9},
	{350, 8},
	{400, 7},
	{500, 6},
	{600, 5},
	{800, 4},
	{1250, 3},
}

func millerRabinRounds(bits int) int {
	for _, step := range roundSchedule {
		if bits <= step.maxBits {
			return step.rounds
		}
	}
	return 2
}

// passesTrialDivision reports whether c is not divisible by any prime in
// the fixed small-prime table. This is the cheap pre-filter applied before
// any expensive test, using per-prime big.Int reduction rather than a
// single product reduction since the table holds 167 primes and their
// product does not fit in a machine word.
func passesTrialDivision(c *big.Int) bool {
	mod := new(big.Int)
	for _, p := range SmallPrimes() {
		mod.Mod(c, p)
		if mod.Sign() == 0 {
			return c.Cmp(p) == 0
		}
	}
	return true
}

// passesMillerRabin runs `rounds` independent Miller-Rabin witnesses against
// c, drawing one PRNG word per witness and using word+2 as the base. The
// witness sequence is deliberately not randomized or deduplicated beyond
// that: the outer reroll loop is what converges on a prime, not witness
// hygiene.
func passesMillerRabin(c *big.Int, state *prng.State, rounds int) bool {
	cMinus1 := new(big.Int).Sub(c, common.One)

	s := 0
	d := new(big.Int).Set(cMinus1)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	mc := common.ModInt(c)
	for round := 0; round < rounds; round++ {
		word := state.Next()
		base := new(big.Int).SetUint64(uint64(word) + 2)

		x := mc.Exp(base, d)
		if x.Cmp(common.One) == 0 || x.Cmp(cMinus1) == 0 {
			continue
		}

		composite := true
		for i := 0; i < s-1; i++ {
			x = mc.Mul(x, x)
			if x.Cmp(cMinus1) == 0 {
				composite = false
				break
			}
			if x.Cmp(common.One) == 0 {
				return false
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// IsProbablePrime runs the full oracle in the mandated stage order: trial
// division, then Miller-Rabin, then coprimality with e. Any failing stage
// short-circuits the rest.
func IsProbablePrime(c *big.Int, state *prng.State, e *big.Int) bool {
	if !passesTrialDivision(c) {
		return false
	}
	if !passesMillerRabin(c, state, millerRabinRounds(c.BitLen())) {
		return false
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Sub(c, common.One), e)
	return gcd.Cmp(common.One) == 0
}
