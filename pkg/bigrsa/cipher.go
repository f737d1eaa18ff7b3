package bigrsa

import (
	"math/big"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/modarith"
)

// Encrypt computes message^publicExponent mod modulus. The message is read
// as an unsigned big-endian integer m and must satisfy m < modulus, otherwise
// ErrMessageOutOfRange is returned. The ciphertext is ModulusSize(modulus)
// bytes long.
func Encrypt(message []byte, publicExponent, modulus *big.Int) ([]byte, error) {
	const op = "Encrypt"
	if publicExponent == nil || modulus == nil {
		return nil, errorf(op, "%w: missing public exponent or modulus", ErrInvalidKeypair)
	}
	if modulus.Sign() <= 0 {
		return nil, &Error{Op: op, Err: ErrInvalidModulus}
	}

	// IntFromBytes is unsigned, so m >= 0 holds by construction.
	m := IntFromBytes(message)
	if m.Cmp(modulus) >= 0 {
		return nil, errorf(op, "%w: %d-byte message encodes to %d bits, modulus has %d bits",
			ErrMessageOutOfRange, len(message), m.BitLen(), modulus.BitLen())
	}

	c, err := modarith.ModPow(m, publicExponent, modulus)
	if err != nil {
		return nil, wrap(op, err)
	}
	return FixedBytesFromInt(c, ModulusSize(modulus))
}

// Decrypt computes cipherText^privateExponent mod modulus and returns the
// minimal big-endian encoding of the result. The ciphertext integer is not
// range-checked; values at or above the modulus are reduced like any other.
// A private exponent that is zero or negative, as left by Keypair.Zeroize,
// yields ErrInvalidKeypair.
func Decrypt(cipherText []byte, privateExponent, modulus *big.Int) ([]byte, error) {
	const op = "Decrypt"
	if privateExponent == nil || modulus == nil {
		return nil, errorf(op, "%w: missing private exponent or modulus", ErrInvalidKeypair)
	}
	// A zeroized key has d = 0, and c^0 = 1 would pass for a plaintext.
	if privateExponent.Sign() <= 0 {
		return nil, errorf(op, "%w: private exponent is not positive", ErrInvalidKeypair)
	}
	c := IntFromBytes(cipherText)
	m, err := modarith.ModPow(c, privateExponent, modulus)
	if err != nil {
		return nil, wrap(op, err)
	}
	return BytesFromInt(m)
}
