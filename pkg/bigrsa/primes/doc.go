// Package primes samples random integers and finds probable primes.
//
// # Random integers
//
// RandomInteger reads bitLength/8 bytes from the supplied reader and
// interprets them as an unsigned big-endian integer, so results are uniform
// in [0, 2^bitLength) and never negative.
//
// # Primality
//
// IsProbablyPrime runs the Miller–Rabin test with witnesses drawn from the
// supplied reader. A composite survives a single round with probability at
// most 1/4, so k rounds bound the false-positive rate by 4^-k. Five rounds,
// the key generator default, is enough for demonstrations only.
//
// # Prime search
//
// Generator draws odd candidates with the top bit set and returns the first
// one that passes. The search is unbounded unless MaxAttempts is set.
//
//	g := primes.Generator{Source: entropy.Default(), Rounds: 20}
//	p, err := g.Generate(ctx, 512)
package primes
