// Package core provides capability tiers, tier resolution and capability
// probing for hsslms-compat.
package core

import (
	"errors"
	"fmt"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
)

// Binding names used in tier profiles.
const (
	BindStructPack   = "struct-pack"
	BindNativeInt    = "native-int"
	BindHexBuffer    = "hex-buffer"
	BindHexNative    = "hex-native"
	BindOSEntropy    = "os-entropy"
	BindCSPRNG       = "csprng"
	BindExternalXOF  = "circl/xof"
	BindNativeXOF    = "x/crypto/sha3"
	BindGenericIO    = "generic-io"
	BindDistinctFile = "fs-distinct"
)

// TierProfile describes the bindings a tier selects and the host
// capabilities those bindings depend on.
type TierProfile struct {
	Tier      hsscompat.Tier `json:"tier" yaml:"tier"`
	Name      string         `json:"name" yaml:"name"`
	Encoding  string         `json:"encoding" yaml:"encoding"`
	Hex       string         `json:"hex" yaml:"hex"`
	Random    string         `json:"random" yaml:"random"`
	XOF       string         `json:"xof" yaml:"xof"`
	FileError string         `json:"file_errors" yaml:"file_errors"`

	// NeedsSecureRandom and NeedsDistinctFileErrors are the capabilities the
	// bindings assume beyond the ones that drive selection.
	NeedsSecureRandom       bool `json:"needs_secure_random" yaml:"needs_secure_random"`
	NeedsDistinctFileErrors bool `json:"needs_distinct_file_errors" yaml:"needs_distinct_file_errors"`
}

// LegacyProfile is the minimal-capability tier.
var LegacyProfile = TierProfile{
	Tier:      hsscompat.TierLegacy,
	Name:      hsscompat.TierLegacy.String(),
	Encoding:  BindStructPack,
	Hex:       BindHexBuffer,
	Random:    BindOSEntropy,
	XOF:       BindExternalXOF,
	FileError: BindGenericIO,
}

// PartialProfile has native integer conversion but no native XOF.
var PartialProfile = TierProfile{
	Tier:                    hsscompat.TierPartial,
	Name:                    hsscompat.TierPartial.String(),
	Encoding:                BindNativeInt,
	Hex:                     BindHexNative,
	Random:                  BindOSEntropy,
	XOF:                     BindExternalXOF,
	FileError:               BindDistinctFile,
	NeedsDistinctFileErrors: true,
}

// NativeProfile is the full-support tier.
var NativeProfile = TierProfile{
	Tier:                    hsscompat.TierNative,
	Name:                    hsscompat.TierNative.String(),
	Encoding:                BindNativeInt,
	Hex:                     BindHexNative,
	Random:                  BindCSPRNG,
	XOF:                     BindNativeXOF,
	FileError:               BindDistinctFile,
	NeedsSecureRandom:       true,
	NeedsDistinctFileErrors: true,
}

// ErrUnknownTier is returned for a tier outside TierLegacy..TierNative.
var ErrUnknownTier = errors.New("unknown capability tier")

// GetTier returns the profile for the given tier.
func GetTier(tier hsscompat.Tier) (TierProfile, error) {
	switch tier {
	case hsscompat.TierLegacy:
		return LegacyProfile, nil
	case hsscompat.TierPartial:
		return PartialProfile, nil
	case hsscompat.TierNative:
		return NativeProfile, nil
	default:
		return TierProfile{}, fmt.Errorf("%w: %d", ErrUnknownTier, int(tier))
	}
}

// AllTiers returns the profiles in priority order, lowest capability first.
func AllTiers() []TierProfile {
	return []TierProfile{LegacyProfile, PartialProfile, NativeProfile}
}

// ParseTier maps a tier number or name to a Tier.
func ParseTier(s string) (hsscompat.Tier, error) {
	switch s {
	case "1", "legacy":
		return hsscompat.TierLegacy, nil
	case "2", "partial":
		return hsscompat.TierPartial, nil
	case "3", "native":
		return hsscompat.TierNative, nil
	default:
		return hsscompat.TierUnknown, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// ResolveTier selects the tier for caps. Rules are evaluated in priority
// order and the first match wins:
//
//  1. no native XOF and no native integer conversion: TierLegacy
//  2. native integer conversion but no native XOF: TierPartial
//  3. anything else: TierNative
func ResolveTier(caps hsscompat.Capabilities) hsscompat.Tier {
	if !caps.NativeXOF && !caps.NativeIntBytes {
		return hsscompat.TierLegacy
	}
	if caps.NativeIntBytes && !caps.NativeXOF {
		return hsscompat.TierPartial
	}
	return hsscompat.TierNative
}

// ValidateCapabilities reports whether the host described by caps can honour
// every binding of tier.
func ValidateCapabilities(tier hsscompat.Tier, caps hsscompat.Capabilities) error {
	profile, err := GetTier(tier)
	if err != nil {
		return err
	}
	if profile.XOF == BindNativeXOF && !caps.NativeXOF {
		return fmt.Errorf("tier %s binds the native XOF but it is unavailable", profile.Name)
	}
	if profile.Encoding == BindNativeInt && !caps.NativeIntBytes {
		return fmt.Errorf("tier %s binds native integer conversion but it is unavailable", profile.Name)
	}
	if profile.NeedsSecureRandom && !caps.SecureRandom {
		return fmt.Errorf("tier %s binds the dedicated CSPRNG but it is unavailable", profile.Name)
	}
	if profile.NeedsDistinctFileErrors && !caps.DistinctFileErrors {
		return fmt.Errorf("tier %s distinguishes file errors but the host does not", profile.Name)
	}
	return nil
}
