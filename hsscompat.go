// Package hsscompat provides the primitive-selection layer used by HSS/LMS
// hash-based signatures (RFC 8554). It resolves, once per process, which
// implementations back big-endian integer encoding, hex conversion, random
// byte generation, the SHAKE256 extendable-output function and file error
// classification.
package hsscompat

// Version of the hsslms-compat Go implementation.
const Version = "1.0.0"

// API summary:
//
// Providers:
//   - primitives.Default() - Process-wide provider resolved from probed capabilities
//   - primitives.ForTier(tier) - Provider for an explicit capability tier
//
// Encoding:
//   - p.EncodeU32(v) / p.EncodeU16(v) / p.EncodeU8(v) - Fixed-width big-endian encoding
//   - p.DecodeU32(b) - Inverse of EncodeU32
//   - p.HexEncode(b) / p.HexDecode(s) - Lowercase hex codec
//
// Randomness and hashing:
//   - p.RandomBytes(n) - n cryptographically secure random bytes
//   - p.NewStreamingHash() - Fresh SHAKE256 state with Update/Digest(length)
//
// Errors:
//   - p.IsNotFound(err) / p.IsExists(err) / p.Classify(err) - File error classification
//
// Tiers:
//   - core.Probe() - Inspect host capabilities
//   - core.ResolveTier(caps) - Select the tier for a capability set
//   - TierLegacy, TierPartial, TierNative
