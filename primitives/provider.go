// Package primitives binds the byte, hash and error primitives consumed by
// the HSS/LMS signature core.
//
// A Provider is resolved once per process by Default and never re-resolved.
// Signature code should take a Provider as a dependency rather than calling
// Default itself, so tests can inject one built by ForTier.
package primitives

import (
	"errors"
	"fmt"
	"sync"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
	"github.com/BackendStack21/hsslms-compat-go/core"
)

var (
	// ErrHexDecode indicates malformed hex input (odd length or a non-hex character).
	ErrHexDecode = errors.New("hex decode failed")

	// ErrEntropyUnavailable indicates the random source could not produce bytes.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)

// Provider is the fixed contract every capability tier implements.
type Provider interface {
	// Tier reports which capability tier the provider was built for.
	Tier() hsscompat.Tier

	// EncodeU32 returns v as 4 big-endian bytes.
	EncodeU32(v uint32) []byte
	// EncodeU16 returns v as 2 big-endian bytes.
	EncodeU16(v uint16) []byte
	// EncodeU8 returns v as a single byte.
	EncodeU8(v uint8) []byte
	// DecodeU32 is the inverse of EncodeU32. b must be exactly 4 bytes.
	DecodeU32(b []byte) (uint32, error)
	// DecodeU16 is the inverse of EncodeU16. b must be exactly 2 bytes.
	DecodeU16(b []byte) (uint16, error)
	// DecodeU8 is the inverse of EncodeU8. b must be exactly 1 byte.
	DecodeU8(b []byte) (uint8, error)

	// HexEncode returns the lowercase hex form of b.
	HexEncode(b []byte) string
	// HexDecode parses hex, failing with ErrHexDecode on malformed input.
	HexDecode(s string) ([]byte, error)

	// RandomBytes returns exactly n cryptographically secure random bytes.
	RandomBytes(n int) ([]byte, error)

	// NewStreamingHash returns a fresh SHAKE256 state.
	NewStreamingHash() StreamingHash

	// IsNotFound reports whether err means the resource does not exist.
	IsNotFound(err error) bool
	// IsExists reports whether err means the resource already exists.
	IsExists(err error) bool
	// Classify maps err to its error kind.
	Classify(err error) hsscompat.ErrorKind
}

// legacyProvider serves TierLegacy.
type legacyProvider struct {
	structCodec
	bufferHex
	osEntropy
	externalXOF
	genericIOErrors
}

func (legacyProvider) Tier() hsscompat.Tier { return hsscompat.TierLegacy }

// partialProvider serves TierPartial.
type partialProvider struct {
	nativeCodec
	nativeHex
	osEntropy
	externalXOF
	distinctFileErrors
}

func (partialProvider) Tier() hsscompat.Tier { return hsscompat.TierPartial }

// nativeProvider serves TierNative.
type nativeProvider struct {
	nativeCodec
	nativeHex
	csprng
	nativeXOF
	distinctFileErrors
}

func (nativeProvider) Tier() hsscompat.Tier { return hsscompat.TierNative }

// ForTier returns the provider for an explicit tier.
func ForTier(tier hsscompat.Tier) (Provider, error) {
	switch tier {
	case hsscompat.TierLegacy:
		return legacyProvider{}, nil
	case hsscompat.TierPartial:
		return partialProvider{}, nil
	case hsscompat.TierNative:
		return nativeProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownTier, int(tier))
	}
}

var (
	defaultOnce     sync.Once
	defaultProvider Provider
	defaultCaps     hsscompat.Capabilities
)

// Default returns the process-wide provider. The host is probed and the tier
// resolved on first call only.
func Default() Provider {
	defaultOnce.Do(func() {
		defaultCaps = core.Probe()
		// ResolveTier only yields known tiers.
		defaultProvider, _ = ForTier(core.ResolveTier(defaultCaps))
	})
	return defaultProvider
}

// DefaultCapabilities returns the capabilities Default was resolved from.
func DefaultCapabilities() hsscompat.Capabilities {
	Default()
	return defaultCaps
}
