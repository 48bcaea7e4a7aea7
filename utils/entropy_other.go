//go:build !linux

package utils

import (
	"crypto/rand"
	"io"
)

// EntropySource fills buf from the raw OS entropy source. Outside Linux the
// platform call is the one crypto/rand already wraps, so it is read directly.
var EntropySource = func(buf []byte) error {
	_, err := io.ReadFull(rand.Reader, buf)
	return err
}
