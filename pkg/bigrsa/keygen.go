package bigrsa

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/modarith"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/primes"
)

var one = big.NewInt(1)

// KeyGenerator produces keypairs from a validated Config. A KeyGenerator is
// not safe for concurrent use unless its Source is.
type KeyGenerator struct {
	cfg Config
}

// NewKeyGenerator validates cfg and fills in defaults.
func NewKeyGenerator(cfg Config) (*KeyGenerator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, wrap("NewKeyGenerator", err)
	}
	return &KeyGenerator{cfg: cfg}, nil
}

// Config returns the effective configuration, defaults included.
func (g *KeyGenerator) Config() Config {
	return g.cfg
}

// GenerateKeys generates a keypair with bitLength-bit primes and default
// settings for everything else.
func GenerateKeys(ctx context.Context, bitLength int) (*Keypair, error) {
	g, err := NewKeyGenerator(Config{PrimeBits: bitLength})
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}

// Generate returns a fresh keypair:
//
//  1. p and q are independent probable primes of PrimeBits bits, p != q.
//  2. n = p*q and phi = (p-1)*(q-1).
//  3. e is a random PrimeBits-bit integer, resampled until e > 1 and
//     gcd(e, phi) == 1.
//  4. d = e^-1 mod phi.
func (g *KeyGenerator) Generate(ctx context.Context) (*Keypair, error) {
	const op = "Generate"
	cfg := g.cfg
	log := cfg.Logger.With("keygen_id", uuid.New().String())
	log.Debug(ctx, "generating keypair",
		"prime_bits", cfg.PrimeBits,
		"rounds", cfg.Rounds,
		"parallel", cfg.ParallelPrimes,
	)

	p, q, err := g.primePair(ctx, log)
	if err != nil {
		return nil, wrap(op, err)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	e, attempts, err := g.publicExponent(ctx, phi)
	if err != nil {
		return nil, wrap(op, err)
	}

	d, err := modarith.ModInverse(e, phi)
	if err != nil {
		// Unreachable while publicExponent enforces coprimality.
		return nil, wrap(op, fmt.Errorf("private exponent: %w", err))
	}

	kp := &Keypair{
		PublicExponent:  e,
		PrivateExponent: d,
		Modulus:         n,
		P:               p,
		Q:               q,
	}
	log.Info(ctx, "keypair generated",
		logging.Bits("modulus", n),
		"exponent_attempts", attempts,
		logging.Redacted("private_exponent"),
		logging.Redacted("primes"),
	)
	return kp, nil
}

func (g *KeyGenerator) primeGenerator(src io.Reader, log logging.Logger) primes.Generator {
	return primes.Generator{
		Source:      src,
		Rounds:      g.cfg.Rounds,
		MaxAttempts: g.cfg.MaxPrimeAttempts,
		Logger:      log,
	}
}

// primePair returns two distinct probable primes. MaxPrimeAttempts bounds
// the candidates drawn for q in total, across every resample that q == p
// forces.
func (g *KeyGenerator) primePair(ctx context.Context, log logging.Logger) (p, q *big.Int, err error) {
	bits := g.cfg.PrimeBits
	limit := g.cfg.MaxPrimeAttempts
	qUsed := 0

	if g.cfg.ParallelPrimes {
		shared := entropy.Locked(g.cfg.Source)
		grp, gctx := errgroup.WithContext(ctx)
		grp.Go(func() error {
			pg := g.primeGenerator(shared, log.With("prime", "p"))
			var err error
			p, err = pg.Generate(gctx, bits)
			return err
		})
		grp.Go(func() error {
			qg := g.primeGenerator(shared, log.With("prime", "q"))
			var err error
			q, qUsed, err = qg.Search(gctx, bits)
			return err
		})
		if err := grp.Wait(); err != nil {
			return nil, nil, fmt.Errorf("generate primes: %w", err)
		}
	} else {
		pg := g.primeGenerator(g.cfg.Source, log.With("prime", "p"))
		if p, err = pg.Generate(ctx, bits); err != nil {
			return nil, nil, fmt.Errorf("generate p: %w", err)
		}
	}

	qg := g.primeGenerator(g.cfg.Source, log.With("prime", "q"))
	for resamples := 0; q == nil || q.Cmp(p) == 0; resamples++ {
		if q != nil {
			log.Warn(ctx, "q equals p, resampling", "resamples", resamples)
		}
		if limit > 0 {
			if qUsed >= limit {
				return nil, nil, fmt.Errorf("%w: q kept equal to p after %d candidates", ErrAttemptsExhausted, qUsed)
			}
			qg.MaxAttempts = limit - qUsed
		}
		var n int
		q, n, err = qg.Search(ctx, bits)
		qUsed += n
		if err != nil {
			return nil, nil, fmt.Errorf("generate q: %w", err)
		}
	}
	return p, q, nil
}

// publicExponent samples e until e > 1 and gcd(e, phi) == 1. It returns the
// number of samples drawn.
func (g *KeyGenerator) publicExponent(ctx context.Context, phi *big.Int) (*big.Int, int, error) {
	limit := g.cfg.MaxExponentAttempts
	for attempt := 1; limit == 0 || attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, attempt - 1, err
		}
		e, err := primes.RandomInteger(g.cfg.Source, g.cfg.PrimeBits)
		if err != nil {
			return nil, attempt, fmt.Errorf("public exponent: %w", err)
		}
		if e.Cmp(one) > 0 && modarith.Coprime(e, phi) {
			return e, attempt, nil
		}
	}
	return nil, limit, fmt.Errorf("%w: no public exponent coprime to phi after %d samples", ErrAttemptsExhausted, limit)
}
