package primitives

import (
	"encoding/hex"
	"fmt"
)

// bufferHex encodes through preallocated buffers.
type bufferHex struct{}

func (bufferHex) HexEncode(b []byte) string {
	dst := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(dst, b)
	return string(dst)
}

func (bufferHex) HexDecode(s string) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(dst, []byte(s))
	if err != nil {
		return nil, hexError(err)
	}
	return dst[:n], nil
}

// nativeHex uses the string conversions directly.
type nativeHex struct{}

func (nativeHex) HexEncode(b []byte) string { return hex.EncodeToString(b) }

func (nativeHex) HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, hexError(err)
	}
	return b, nil
}

func hexError(err error) error {
	return fmt.Errorf("%w: %v", ErrHexDecode, err)
}
