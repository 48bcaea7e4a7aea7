package utils

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// Shake256EmptyPrefix is the first 32 bytes of SHAKE256 over the empty
// string, used as a known-answer test for SHAKE256 implementations.
var Shake256EmptyPrefix = []byte{
	0x46, 0xb9, 0xdd, 0x2b, 0x0b, 0xa8, 0x8d, 0x13,
	0x23, 0x3b, 0x3f, 0xeb, 0x74, 0x3e, 0xeb, 0x24,
	0x3f, 0xcd, 0x52, 0xea, 0x62, 0xb8, 0x1b, 0x82,
	0xb5, 0x0c, 0x27, 0x64, 0x6e, 0xd5, 0x76, 0x2f,
}

var shake256Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake256()
	},
}

// Shake256 computes the SHAKE256 extendable output function (XOF).
// It takes an input byte slice and generates an output of the specified length.
func Shake256(input []byte, outputLen int) []byte {
	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()

	h.Write(input)
	output := make([]byte, outputLen)
	_, _ = h.Read(output)
	return output
}

// Shake256Into computes SHAKE256 and writes the output into the provided buffer.
func Shake256Into(input []byte, output []byte) {
	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()

	h.Write(input)
	_, _ = h.Read(output)
}

// NativeShake256 returns a fresh x/crypto SHAKE256 state.
func NativeShake256() sha3.ShakeHash {
	return sha3.NewShake256()
}

// Shake256SelfTest reports whether the native SHAKE256 reproduces the
// known answer for the empty input.
func Shake256SelfTest() bool {
	var out [32]byte
	Shake256Into(nil, out[:])
	return ConstantTimeEqual(out[:], Shake256EmptyPrefix)
}
