package bigrsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntFromBytesIsUnsignedBigEndian(t *testing.T) {
	assert.Equal(t, int64(0), IntFromBytes(nil).Int64())
	assert.Equal(t, int64(0x0102), IntFromBytes([]byte{0x01, 0x02}).Int64())
	// A set high bit does not make the value negative.
	assert.Equal(t, int64(0xFF00), IntFromBytes([]byte{0xFF, 0x00}).Int64())
}

func TestBytesFromIntInvertsMinimalEncodings(t *testing.T) {
	for _, b := range [][]byte{{0x01}, {0x80}, {0xFF, 0xFF}, []byte("Hello, world!")} {
		got, err := BytesFromInt(IntFromBytes(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	got, err := BytesFromInt(big.NewInt(0))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = BytesFromInt(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeInteger)
}

func TestFixedBytesFromInt(t *testing.T) {
	got, err := FixedBytesFromInt(big.NewInt(0x0102), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, got)

	got, err = FixedBytesFromInt(big.NewInt(0), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0}, got)

	got, err = FixedBytesFromInt(big.NewInt(0xFFFF), 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, got)

	_, err = FixedBytesFromInt(big.NewInt(0x10000), 2)
	assert.ErrorIs(t, err, ErrIntegerTooLarge)

	_, err = FixedBytesFromInt(big.NewInt(-3), 4)
	assert.ErrorIs(t, err, ErrNegativeInteger)
}

func TestSizes(t *testing.T) {
	tests := []struct {
		n          int64
		modulus    int
		maxMessage int
	}{
		{3233, 2, 1},  // 12 bits
		{255, 1, 0},   // 8 bits
		{256, 2, 1},   // 9 bits
		{65535, 2, 1}, // 16 bits
		{65537, 3, 2}, // 17 bits
	}
	for _, tt := range tests {
		n := big.NewInt(tt.n)
		assert.Equal(t, tt.modulus, ModulusSize(n), "ModulusSize(%d)", tt.n)
		assert.Equal(t, tt.maxMessage, MaxMessageSize(n), "MaxMessageSize(%d)", tt.n)
	}
	assert.Equal(t, 0, MaxMessageSize(big.NewInt(0)))
}
