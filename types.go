// Package hsscompat provides the primitive-selection layer used by HSS/LMS
// hash-based signatures.
//
// The signature core above this layer is written against a single contract.
// Differences between hosts are absorbed here by picking one of three
// capability tiers at startup and never revisiting that choice.
package hsscompat

import "fmt"

// Tier identifies one of the mutually exclusive capability levels a host can
// be resolved to.
type Tier int

const (
	// TierUnknown is the zero value and never selected by resolution.
	TierUnknown Tier = iota
	// TierLegacy lacks both a native XOF and native integer-to-bytes
	// conversion. File errors collapse into one I/O failure category.
	TierLegacy
	// TierPartial has native integer conversion but relies on an external
	// SHAKE256 implementation.
	TierPartial
	// TierNative has full native support.
	TierNative
)

// String returns the short name of the tier.
func (t Tier) String() string {
	switch t {
	case TierLegacy:
		return "legacy"
	case TierPartial:
		return "partial"
	case TierNative:
		return "native"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// =============================================================================
// Capabilities
// =============================================================================

// Capabilities records what the host environment offers. It is the only
// input to tier resolution.
type Capabilities struct {
	NativeXOF          bool `json:"native_xof" yaml:"native_xof"`                     // Native SHAKE256 passes its known-answer test
	NativeIntBytes     bool `json:"native_int_bytes" yaml:"native_int_bytes"`         // Native big-endian integer conversion
	SecureRandom       bool `json:"secure_random" yaml:"secure_random"`               // Dedicated CSPRNG facility
	DistinctFileErrors bool `json:"distinct_file_errors" yaml:"distinct_file_errors"` // "not found" and "exists" are distinguishable
}

// =============================================================================
// Error kinds
// =============================================================================

// ErrorKind is the classification a provider assigns to an error raised by a
// file or resource operation.
type ErrorKind int

const (
	// KindNone is reported for a nil error.
	KindNone ErrorKind = iota
	// KindNotFound means the resource does not exist.
	KindNotFound
	// KindExists means the resource already exists.
	KindExists
	// KindIOFailure is the single generic category used by TierLegacy, where
	// "not found" and "already exists" cannot be told apart.
	KindIOFailure
	// KindOther is any error outside the file error categories.
	KindOther
)

// String returns the short name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindExists:
		return "exists"
	case KindIOFailure:
		return "io-failure"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
