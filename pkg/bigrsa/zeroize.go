package bigrsa

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites buf with zeros and prevents compiler dead store
// elimination using runtime.KeepAlive (golang/go#33325).
//
// Copies made by math/big or the garbage collector are out of reach, so this
// is best effort only.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// zeroizeInt wipes the limbs backing x and sets it to zero.
func zeroizeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	x.SetInt64(0)
}
