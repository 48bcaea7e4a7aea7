// Package utils provides low-level helpers shared by the primitive providers.
// This file contains safe allocation helpers to prevent denial-of-service via
// large allocations.

package utils

import (
	"errors"
)

// Maximum allowed lengths for caller-sized outputs.
const (
	// MaxRandomLength is the maximum number of random bytes produced by one call.
	MaxRandomLength = 1 << 28 // 256MB

	// MaxDigestLength is the maximum SHAKE256 output length produced by one call.
	MaxDigestLength = 1 << 28 // 256MB
)

var (
	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMakeByteSlice creates a byte slice with bounds checking.
func SafeMakeByteSlice(count, maxAllowed int) ([]byte, error) {
	if err := CheckLength(count, maxAllowed); err != nil {
		return nil, err
	}
	return make([]byte, count), nil
}

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckExactLength validates that data is exactly want bytes long.
func CheckExactLength(data []byte, want int) error {
	if len(data) != want {
		return ErrInvalidLength
	}
	return nil
}
