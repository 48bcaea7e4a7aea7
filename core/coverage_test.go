package core

import (
	"errors"
	"testing"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
)

func TestParseTier(t *testing.T) {
	cases := map[string]hsscompat.Tier{
		"1":       hsscompat.TierLegacy,
		"legacy":  hsscompat.TierLegacy,
		"2":       hsscompat.TierPartial,
		"partial": hsscompat.TierPartial,
		"3":       hsscompat.TierNative,
		"native":  hsscompat.TierNative,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		if err != nil {
			t.Errorf("ParseTier(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseTier(%q) = %v, want %v", in, got, want)
		}
	}

	_, err := ParseTier("4")
	if !errors.Is(err, ErrUnknownTier) {
		t.Errorf("ParseTier(\"4\") should fail with ErrUnknownTier, got %v", err)
	}
}

func TestProbe(t *testing.T) {
	caps := Probe()

	if !caps.SecureRandom {
		t.Error("expected a CSPRNG on the test host")
	}
	if buildLegacy {
		if caps.NativeXOF || caps.NativeIntBytes || caps.DistinctFileErrors {
			t.Errorf("legacy build should report no native capabilities, got %+v", caps)
		}
		return
	}
	if !caps.NativeIntBytes {
		t.Error("expected native integer conversion")
	}
	if !caps.DistinctFileErrors {
		t.Error("expected distinct file errors")
	}
	if caps.NativeXOF == buildNoXOF {
		t.Errorf("NativeXOF = %v with buildNoXOF = %v", caps.NativeXOF, buildNoXOF)
	}
}

func TestProbeResolvesConsistently(t *testing.T) {
	caps := Probe()
	tier := ResolveTier(caps)
	if err := ValidateCapabilities(tier, caps); err != nil {
		t.Errorf("probed host does not satisfy its own tier %v: %v", tier, err)
	}
	if tier != ResolveTier(Probe()) {
		t.Error("repeated probes resolved to different tiers")
	}
}

func TestTierStrings(t *testing.T) {
	if hsscompat.TierNative.String() != "native" {
		t.Errorf("unexpected name %q", hsscompat.TierNative.String())
	}
	if hsscompat.Tier(9).String() != "tier(9)" {
		t.Errorf("unexpected name %q", hsscompat.Tier(9).String())
	}
	if hsscompat.KindIOFailure.String() != "io-failure" {
		t.Errorf("unexpected name %q", hsscompat.KindIOFailure.String())
	}
}
