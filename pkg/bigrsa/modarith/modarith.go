// Package modarith implements the modular arithmetic used by bigrsa:
// exponentiation, greatest common divisor and the modular inverse.
//
// All functions treat their arguments as read-only and return freshly
// allocated results.
package modarith

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when a modulus is zero or negative.
	ErrInvalidModulus = errors.New("modarith: modulus must be positive")

	// ErrNegativeExponent is returned by ModPow for exponents below zero.
	ErrNegativeExponent = errors.New("modarith: negative exponent")

	// ErrNotInvertible is returned by ModInverse when gcd(a, m) != 1.
	ErrNotInvertible = errors.New("modarith: value has no inverse for modulus")
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// ModPow returns base^exp mod m in [0, m). exp == 0 yields 1 (or 0 when
// m == 1). Negative bases are reduced into the range like any other value.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	// Exp does left-to-right windowed square-and-multiply (Montgomery for
	// odd moduli).
	return new(big.Int).Exp(base, exp, m), nil
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ModInverse returns the x in [0, m) with a*x ≡ 1 (mod m), computed with the
// iterative extended Euclidean algorithm. m == 1 yields 0.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if m.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	// Invariant: oldS*a ≡ oldR and s*a ≡ r (mod m).
	oldR := new(big.Int).Mod(a, m)
	r := new(big.Int).Set(m)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Cmp(zero) != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		tmp.Sub(oldR, tmp)
		oldR, r = r, oldR.Set(tmp)

		tmp.Mul(q, s)
		tmp.Sub(oldS, tmp)
		oldS, s = s, oldS.Set(tmp)
	}

	if oldR.Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}
	// |oldS| < m, so one addition normalizes a negative coefficient.
	if oldS.Sign() < 0 {
		oldS.Add(oldS, m)
	}
	return oldS, nil
}
