package primes

import (
	"io"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// IsProbablyPrime reports whether n passes rounds Miller–Rabin trials.
// Values of rounds below 1 run a single trial. The error is non-nil only when
// r fails to supply witness bytes.
func IsProbablyPrime(r io.Reader, n *big.Int, rounds int) (bool, error) {
	switch {
	case n.Cmp(one) <= 0, n.Cmp(four) == 0:
		return false, nil
	case n.Cmp(three) <= 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}
	if rounds < 1 {
		rounds = 1
	}

	// n-1 = d * 2^s with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	s := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, s)

	for i := 0; i < rounds; i++ {
		a, err := witnessBase(r, n)
		if err != nil {
			return false, err
		}
		if !witnessTest(a, d, s, n, nMinus1) {
			return false, nil
		}
	}
	return true, nil
}

// witnessBase draws a base in [2, n-2]. The raw sample is one byte shorter
// than n (at least one byte) and is folded into range.
func witnessBase(r io.Reader, n *big.Int) (*big.Int, error) {
	size := max(1, (n.BitLen()+7)/8-1)
	a, err := RandomInteger(r, size*8)
	if err != nil {
		return nil, err
	}
	span := new(big.Int).Sub(n, three) // |[2, n-2]|
	a.Mod(a, span)
	return a.Add(a, two), nil
}

// witnessTest reports whether n looks prime to base a. false means a proves
// n composite.
func witnessTest(a, d *big.Int, s uint, n, nMinus1 *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := uint(1); i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			// Non-trivial square root of 1.
			return false
		}
	}
	return false
}
