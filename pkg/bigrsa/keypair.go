package bigrsa

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/entropy"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/logging"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/modarith"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/primes"
)

// validationRounds is the Miller–Rabin round count Validate applies to p and q.
const validationRounds = 20

// Keypair holds an RSA key. It is immutable after generation apart from
// Zeroize.
//
// Invariants for a generated keypair:
//   - Modulus = P * Q with P != Q probable primes
//   - gcd(PublicExponent, (P-1)*(Q-1)) = 1
//   - PublicExponent * PrivateExponent ≡ 1 (mod (P-1)*(Q-1))
type Keypair struct {
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Modulus         *big.Int

	// P and Q are the primes behind Modulus. They are secret.
	P, Q *big.Int
}

// PublicKey is the shareable half of a Keypair.
type PublicKey struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// PublicKey returns a copy of the public exponent and modulus.
func (k *Keypair) PublicKey() PublicKey {
	return PublicKey{
		Exponent: new(big.Int).Set(k.PublicExponent),
		Modulus:  new(big.Int).Set(k.Modulus),
	}
}

// Encrypt encrypts message under the public key. See Encrypt.
func (p PublicKey) Encrypt(message []byte) ([]byte, error) {
	return Encrypt(message, p.Exponent, p.Modulus)
}

// Size returns the ciphertext length in bytes.
func (p PublicKey) Size() int {
	return ModulusSize(p.Modulus)
}

// Encrypt encrypts message with the keypair's public exponent.
func (k *Keypair) Encrypt(message []byte) ([]byte, error) {
	return Encrypt(message, k.PublicExponent, k.Modulus)
}

// Decrypt decrypts cipherText with the keypair's private exponent.
func (k *Keypair) Decrypt(cipherText []byte) ([]byte, error) {
	return Decrypt(cipherText, k.PrivateExponent, k.Modulus)
}

// Validate re-checks every keypair invariant. Primality of P and Q is
// re-tested with fresh crypto/rand witnesses.
func (k *Keypair) Validate() error {
	const op = "Validate"
	if k == nil || k.PublicExponent == nil || k.PrivateExponent == nil || k.Modulus == nil {
		return errorf(op, "%w: missing component", ErrInvalidKeypair)
	}
	if k.P == nil || k.Q == nil {
		return errorf(op, "%w: primes not available", ErrInvalidKeypair)
	}
	if k.P.Cmp(k.Q) == 0 {
		return errorf(op, "%w: p equals q", ErrInvalidKeypair)
	}
	if new(big.Int).Mul(k.P, k.Q).Cmp(k.Modulus) != 0 {
		return errorf(op, "%w: modulus is not p*q", ErrInvalidKeypair)
	}
	for _, v := range []*big.Int{k.P, k.Q} {
		ok, err := primes.IsProbablyPrime(entropy.Default(), v, validationRounds)
		if err != nil {
			return wrap(op, err)
		}
		if !ok {
			return errorf(op, "%w: factor is composite", ErrInvalidKeypair)
		}
	}

	phi := new(big.Int).Mul(new(big.Int).Sub(k.P, one), new(big.Int).Sub(k.Q, one))
	if !modarith.Coprime(k.PublicExponent, phi) {
		return errorf(op, "%w: public exponent shares a factor with phi", ErrInvalidKeypair)
	}
	ed := new(big.Int).Mul(k.PublicExponent, k.PrivateExponent)
	if ed.Mod(ed, phi).Cmp(one) != 0 {
		return errorf(op, "%w: e*d != 1 mod phi", ErrInvalidKeypair)
	}
	return nil
}

// Zeroize wipes the private exponent and the primes. The keypair can still
// encrypt afterwards; Decrypt returns ErrInvalidKeypair.
func (k *Keypair) Zeroize() {
	if k == nil {
		return
	}
	zeroizeInt(k.PrivateExponent)
	zeroizeInt(k.P)
	zeroizeInt(k.Q)
}

// String prints the public half only. Missing components print as <nil>
// and zero bits.
func (k *Keypair) String() string {
	if k == nil {
		return "Keypair(nil)"
	}
	return fmt.Sprintf("Keypair{e=%s, n=%d bits, d=%s}",
		k.PublicExponent, bitLen(k.Modulus), logging.Placeholder())
}

// LogValue keeps private material out of structured logs.
func (k *Keypair) LogValue() slog.Value {
	if k == nil {
		return slog.StringValue("Keypair(nil)")
	}
	return slog.GroupValue(
		logging.Bits("modulus", k.Modulus),
		logging.Bits("public_exponent", k.PublicExponent),
		logging.Redacted("private_exponent"),
	)
}

func bitLen(x *big.Int) int {
	if x == nil {
		return 0
	}
	return x.BitLen()
}
