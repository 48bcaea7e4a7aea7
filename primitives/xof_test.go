package primitives

import (
	"bytes"
	"testing"

	"github.com/BackendStack21/hsslms-compat-go/utils"
)

func TestStreamingHashName(t *testing.T) {
	for _, p := range allProviders(t) {
		if name := p.NewStreamingHash().Name(); name != ShakeName {
			t.Errorf("%v: Name() = %q, want %q", p.Tier(), name, ShakeName)
		}
	}
}

func TestStreamingHashKnownAnswer(t *testing.T) {
	for _, p := range allProviders(t) {
		got := p.NewStreamingHash().Digest(32)
		if !bytes.Equal(got, utils.Shake256EmptyPrefix) {
			t.Errorf("%v: SHAKE256(\"\") = %x, want %x", p.Tier(), got, utils.Shake256EmptyPrefix)
		}
	}
}

func TestStreamingHashConcatenation(t *testing.T) {
	for _, p := range allProviders(t) {
		split := p.NewStreamingHash()
		split.Update([]byte("ab"))
		split.Update([]byte("cd"))

		whole := p.NewStreamingHash()
		whole.Update([]byte("abcd"))

		if !bytes.Equal(split.Digest(32), whole.Digest(32)) {
			t.Errorf("%v: split updates differ from a single update", p.Tier())
		}

		reordered := p.NewStreamingHash()
		reordered.Update([]byte("cd"))
		reordered.Update([]byte("ab"))
		if bytes.Equal(reordered.Digest(32), whole.Digest(32)) {
			t.Errorf("%v: update order was not preserved", p.Tier())
		}
	}
}

func TestStreamingHashExtendableOutput(t *testing.T) {
	for _, p := range allProviders(t) {
		short := p.NewStreamingHash()
		short.Update([]byte("LMS leaf"))
		long := p.NewStreamingHash()
		long.Update([]byte("LMS leaf"))

		d16 := short.Digest(16)
		d64 := long.Digest(64)
		if len(d16) != 16 || len(d64) != 64 {
			t.Fatalf("%v: digest lengths %d and %d", p.Tier(), len(d16), len(d64))
		}
		if !bytes.Equal(d64[:16], d16) {
			t.Errorf("%v: 64-byte digest does not extend the 16-byte digest", p.Tier())
		}
	}
}

func TestStreamingHashDeterminism(t *testing.T) {
	for _, p := range allProviders(t) {
		a := p.NewStreamingHash()
		b := p.NewStreamingHash()
		for i := 0; i < 10; i++ {
			chunk := bytes.Repeat([]byte{byte(i)}, i*7)
			a.Update(chunk)
			b.Update(chunk)
		}
		if !bytes.Equal(a.Digest(48), b.Digest(48)) {
			t.Errorf("%v: identical update sequences produced different digests", p.Tier())
		}
	}
}

func TestStreamingHashDigestDoesNotConsume(t *testing.T) {
	for _, p := range allProviders(t) {
		h := p.NewStreamingHash()
		h.Update([]byte("abc"))
		first := h.Digest(32)
		second := h.Digest(64)
		if !bytes.Equal(second[:32], first) {
			t.Errorf("%v: repeated Digest is not consistent", p.Tier())
		}

		h.Update([]byte("def"))
		want := p.NewStreamingHash()
		want.Update([]byte("abcdef"))
		if !bytes.Equal(h.Digest(32), want.Digest(32)) {
			t.Errorf("%v: Update after Digest did not continue the accumulation", p.Tier())
		}
	}
}

func TestStreamingHashTiersAgree(t *testing.T) {
	providers := allProviders(t)
	msg := bytes.Repeat([]byte("merkle"), 100)
	var ref []byte
	for i, p := range providers {
		h := p.NewStreamingHash()
		h.Update(msg[:13])
		h.Update(msg[13:])
		d := h.Digest(96)
		if i == 0 {
			ref = d
			continue
		}
		if !bytes.Equal(d, ref) {
			t.Errorf("%v and %v SHAKE256 outputs differ", p.Tier(), providers[0].Tier())
		}
	}

	if !bytes.Equal(ref[:64], utils.Shake256(msg, 64)) {
		t.Error("streaming output differs from one-shot SHAKE256")
	}
}

func TestStreamingHashIndependentInstances(t *testing.T) {
	for _, p := range allProviders(t) {
		a := p.NewStreamingHash()
		b := p.NewStreamingHash()
		a.Update([]byte("only a"))
		if !bytes.Equal(b.Digest(32), utils.Shake256EmptyPrefix) {
			t.Errorf("%v: instances share state", p.Tier())
		}
	}
}
