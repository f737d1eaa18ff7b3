package primes

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidBitLength is returned for bit lengths that are not a positive
// multiple of 8.
var ErrInvalidBitLength = errors.New("primes: bit length must be a positive multiple of 8")

// RandomInteger returns an integer built from bitLength/8 bytes of r,
// interpreted as unsigned big-endian.
func RandomInteger(r io.Reader, bitLength int) (*big.Int, error) {
	if bitLength <= 0 || bitLength%8 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitLength, bitLength)
	}
	buf := make([]byte, bitLength/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("primes: read %d random bytes: %w", len(buf), err)
	}
	return new(big.Int).SetBytes(buf), nil
}
