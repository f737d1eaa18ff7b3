package bigrsa

import "math/big"

// IntFromBytes interprets b as an unsigned big-endian integer. An empty slice
// is zero.
func IntFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BytesFromInt is the inverse of IntFromBytes for minimal encodings: it
// returns the big-endian bytes of x without leading zeros. Zero encodes to an
// empty slice.
func BytesFromInt(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, &Error{Op: "BytesFromInt", Err: ErrNegativeInteger}
	}
	return x.Bytes(), nil
}

// FixedBytesFromInt returns x as exactly size big-endian bytes, left-padded
// with zeros.
func FixedBytesFromInt(x *big.Int, size int) ([]byte, error) {
	const op = "FixedBytesFromInt"
	if x.Sign() < 0 {
		return nil, &Error{Op: op, Err: ErrNegativeInteger}
	}
	if size < 0 || (x.BitLen()+7)/8 > size {
		return nil, errorf(op, "%w: %d bits into %d bytes", ErrIntegerTooLarge, x.BitLen(), size)
	}
	return x.FillBytes(make([]byte, size)), nil
}

// ModulusSize returns the byte length of n, which is also the ciphertext
// length.
func ModulusSize(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// MaxMessageSize returns the longest message, in bytes, that always encodes
// below n regardless of its content. Shorter messages are always accepted;
// a message of ModulusSize bytes may or may not be.
func MaxMessageSize(n *big.Int) int {
	if n.Sign() <= 0 {
		return 0
	}
	return (n.BitLen() - 1) / 8
}
