package bigrsa

import (
	"fmt"
	"io"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/primes"
)

const (
	// DefaultPrimeBits is the size of each prime, giving a 1024-bit modulus.
	DefaultPrimeBits = 512

	// DefaultRounds is the Miller–Rabin round count per prime candidate.
	DefaultRounds = primes.DefaultRounds

	// MinPrimeBits and MaxPrimeBits bound Config.PrimeBits.
	MinPrimeBits = 8
	MaxPrimeBits = 8192
)

// Config holds the key generation parameters. Zero values select defaults.
type Config struct {
	// PrimeBits is the bit length of each of p and q, and of the sampled
	// public exponent. Must be a multiple of 8 in [MinPrimeBits, MaxPrimeBits].
	PrimeBits int

	// Rounds is the Miller–Rabin round count for each prime candidate.
	Rounds int

	// MaxPrimeAttempts caps the candidates tried per prime. For q the cap
	// covers every resample forced by q == p together. Zero means no cap.
	MaxPrimeAttempts int

	// MaxExponentAttempts caps the public exponent samples tried. Zero means
	// no cap.
	MaxExponentAttempts int

	// ParallelPrimes searches for p and q on separate goroutines. The source
	// is then shared through entropy.Locked, so a seeded source no longer
	// yields a reproducible keypair.
	ParallelPrimes bool

	// Source supplies all randomness. Nil selects entropy.Default().
	Source io.Reader

	// Logger receives progress records. Nil selects logging.New(nil).
	Logger logging.Logger
}

func (c Config) withDefaults() Config {
	if c.PrimeBits == 0 {
		c.PrimeBits = DefaultPrimeBits
	}
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.Source == nil {
		c.Source = entropy.Default()
	}
	if c.Logger == nil {
		c.Logger = logging.New(nil)
	}
	return c
}

func (c Config) validate() error {
	if c.PrimeBits < MinPrimeBits || c.PrimeBits > MaxPrimeBits || c.PrimeBits%8 != 0 {
		return fmt.Errorf("%w: prime bits %d not a multiple of 8 in [%d, %d]",
			ErrInvalidBitLength, c.PrimeBits, MinPrimeBits, MaxPrimeBits)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w: rounds %d", ErrInvalidConfig, c.Rounds)
	}
	if c.MaxPrimeAttempts < 0 || c.MaxExponentAttempts < 0 {
		return fmt.Errorf("%w: negative attempt limit", ErrInvalidConfig)
	}
	return nil
}
