package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
	"runtime"
)

// RandReader is the dedicated CSPRNG used by SecureRandomBytes.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
// On failure no bytes are returned.
func SecureRandomBytes(n int) ([]byte, error) {
	buf, err := SafeMakeByteSlice(n, MaxRandomLength)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		Zeroize(buf)
		return nil, err
	}
	return buf, nil
}

// OSEntropyBytes reads n bytes straight from the operating system's raw
// entropy source, bypassing the crypto/rand reader.
func OSEntropyBytes(n int) ([]byte, error) {
	buf, err := SafeMakeByteSlice(n, MaxRandomLength)
	if err != nil {
		return nil, err
	}
	if err := EntropySource(buf); err != nil {
		Zeroize(buf)
		return nil, err
	}
	return buf, nil
}

// ConstantTimeEqual compares two byte slices in constant time.
// It returns true if the slices are equal, false otherwise.
// This function leaks only the length of the slices.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zeroize overwrites a byte slice with zeros.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
