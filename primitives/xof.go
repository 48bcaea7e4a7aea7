package primitives

import (
	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/sha3"

	"github.com/BackendStack21/hsslms-compat-go/utils"
)

// ShakeName is the algorithm name reported by every StreamingHash.
const ShakeName = "shake_256"

// StreamingHash is a SHAKE256 state. Update may be called any number of
// times; Digest returns length bytes of output over everything written so far.
//
// Digest does not consume the state: a later Digest with a larger length
// extends the earlier output, and Update after Digest keeps accumulating.
// A StreamingHash is not safe for concurrent use.
type StreamingHash interface {
	Name() string
	Update(p []byte)
	Digest(length int) []byte
}

func checkDigestLength(length int) {
	if length < 0 {
		panic("primitives: negative digest length")
	}
}

// nativeXOF builds states on golang.org/x/crypto/sha3.
type nativeXOF struct{}

func (nativeXOF) NewStreamingHash() StreamingHash {
	return &nativeShake{h: utils.NativeShake256()}
}

type nativeShake struct {
	h sha3.ShakeHash
}

func (s *nativeShake) Name() string { return ShakeName }

func (s *nativeShake) Update(p []byte) { s.h.Write(p) }

func (s *nativeShake) Digest(length int) []byte {
	checkDigestLength(length)
	out := make([]byte, length)
	_, _ = s.h.Clone().Read(out)
	return out
}

// externalXOF builds states on the circl XOF implementation.
type externalXOF struct{}

func (externalXOF) NewStreamingHash() StreamingHash {
	return &externalShake{h: xof.SHAKE256.New()}
}

type externalShake struct {
	h xof.XOF
}

func (s *externalShake) Name() string { return ShakeName }

func (s *externalShake) Update(p []byte) { _, _ = s.h.Write(p) }

func (s *externalShake) Digest(length int) []byte {
	checkDigestLength(length)
	out := make([]byte, length)
	_, _ = s.h.Clone().Read(out)
	return out
}
