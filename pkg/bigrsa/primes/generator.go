package primes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
)

// DefaultRounds is the Miller–Rabin round count used when Generator.Rounds
// is zero.
const DefaultRounds = 5

// ErrAttemptsExhausted is returned when a bounded search runs out of
// attempts.
var ErrAttemptsExhausted = errors.New("primes: attempts exhausted")

// Generator searches for probable primes. The zero value is usable: it reads
// from crypto/rand, runs DefaultRounds trials, never gives up and does not
// log.
type Generator struct {
	// Source supplies candidate and witness bytes. Nil means entropy.Default().
	Source io.Reader

	// Rounds is the Miller–Rabin round count per candidate.
	Rounds int

	// MaxAttempts caps the number of candidates tried. Zero means unbounded.
	MaxAttempts int

	// Logger receives one debug record per accepted prime.
	Logger logging.Logger
}

// Generate returns a probable prime with exactly bitLength bits. ctx is
// checked between candidates.
func (g *Generator) Generate(ctx context.Context, bitLength int) (*big.Int, error) {
	p, _, err := g.Search(ctx, bitLength)
	return p, err
}

// Search is Generate that also reports how many candidates it drew,
// including the accepted one. The count is valid on error too.
func (g *Generator) Search(ctx context.Context, bitLength int) (*big.Int, int, error) {
	if bitLength < 8 || bitLength%8 != 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bitLength)
	}
	src := g.source()
	rounds := g.Rounds
	if rounds == 0 {
		rounds = DefaultRounds
	}

	attempts := 0
	for g.MaxAttempts == 0 || attempts < g.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}
		attempts++
		candidate, err := RandomInteger(src, bitLength)
		if err != nil {
			return nil, attempts, err
		}
		candidate.SetBit(candidate, bitLength-1, 1)
		candidate.SetBit(candidate, 0, 1)

		ok, err := IsProbablyPrime(src, candidate, rounds)
		if err != nil {
			return nil, attempts, err
		}
		if ok {
			if g.Logger != nil {
				g.Logger.Debug(ctx, "probable prime found",
					"bits", bitLength,
					"attempts", attempts,
					"rounds", rounds,
				)
			}
			return candidate, attempts, nil
		}
	}
	return nil, attempts, fmt.Errorf("%w: no %d-bit prime after %d candidates", ErrAttemptsExhausted, bitLength, attempts)
}

func (g *Generator) source() io.Reader {
	if g.Source == nil {
		return entropy.Default()
	}
	return g.Source
}
