// Package rsakey assembles a prime pair and a public exponent into the full
// RSA field set, including the CRT parameters used for fast decryption.
package rsakey

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/Ek4m/seedrsa/common"
)

// PublicFields is the public half of a generated key.
type PublicFields struct {
	N *big.Int
	E *big.Int
}

// PrivateFields is the private half, including CRT parameters.
type PrivateFields struct {
	D  *big.Int
	P  *big.Int
	Q  *big.Int
	Dp *big.Int
	Dq *big.Int
	Qi *big.Int
}

// Assemble computes n, phi, d, dp, dq, qi from two probable primes and a
// public exponent, canonicalizing p > q. ctx is accepted purely for
// structural uniformity with the Driver's cancellable goroutines; Assemble
// performs no blocking work and never inspects it.
func Assemble(_ context.Context, p, q, e *big.Int, bits int) (*PublicFields, *PrivateFields, error) {
	n := new(big.Int).Mul(p, q)
	if n.BitLen() != bits {
		return nil, nil, common.NewKeyGenError(common.ModulusLengthMismatch,
			"p*q has %d bits, expected %d", n.BitLen(), bits)
	}

	pMinus1 := new(big.Int).Sub(p, common.One)
	qMinus1 := new(big.Int).Sub(q, common.One)
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	if new(big.Int).GCD(nil, nil, phi, e).Cmp(common.One) != 0 {
		return nil, nil, common.NewKeyGenError(common.NotCoprime, "gcd(phi, e) != 1")
	}

	if p.Cmp(q) == 0 {
		return nil, nil, common.NewKeyGenError(common.DegeneratePrimes, "p and q are equal")
	}

	// Canonicalize only after both primes are known and validated.
	if p.Cmp(q) < 0 {
		p, q = q, p
		pMinus1, qMinus1 = qMinus1, pMinus1
	}

	d, err := modInverse(e, phi)
	if err != nil {
		return nil, nil, errors.Wrap(err, "assembling key")
	}

	dp := new(big.Int).Mod(d, pMinus1)
	dq := new(big.Int).Mod(d, qMinus1)
	qi, err := modInverse(q, p)
	if err != nil {
		return nil, nil, errors.Wrap(err, "computing qi")
	}

	return &PublicFields{N: n, E: e},
		&PrivateFields{D: d, P: p, Q: q, Dp: dp, Dq: dq, Qi: qi},
		nil
}

// modInverse computes x^-1 mod m using an iterative extended-Euclidean
// variant: it tracks only the Bezout coefficient of x, not of m, and uses
// exclusively nonnegative big integers, even though Go's math/big supports
// signed arithmetic natively.
func modInverse(x, m *big.Int) (*big.Int, error) {
	u1, u3 := new(big.Int).Set(common.One), new(big.Int).Set(x)
	v1, v3 := new(big.Int).Set(common.Zero), new(big.Int).Set(m)
	iter := 1

	q := new(big.Int)
	for v3.Sign() != 0 {
		q.Div(u3, v3)

		t3 := new(big.Int).Mod(u3, v3)
		t1 := new(big.Int).Mul(q, v1)
		t1.Add(u1, t1)

		u1, v1 = v1, t1
		u3, v3 = v3, t3
		iter = -iter
	}

	if u3.Cmp(common.One) != 0 {
		return nil, errors.New("inputs are not coprime")
	}

	if iter > 0 {
		return u1, nil
	}
	return new(big.Int).Sub(m, u1), nil
}
