package primitives

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
)

// fileErrors produces a real "not found" and a real "already exists" error.
func fileErrors(t *testing.T) (notFound, exists error) {
	t.Helper()
	dir := t.TempDir()

	_, notFound = os.Stat(filepath.Join(dir, "missing"))
	if notFound == nil {
		t.Fatal("expected stat of a missing file to fail")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, exists = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if exists == nil {
		t.Fatal("expected exclusive create of an existing file to fail")
	}
	return notFound, exists
}

func TestDistinctFileErrors(t *testing.T) {
	notFound, exists := fileErrors(t)
	for _, tier := range []hsscompat.Tier{hsscompat.TierPartial, hsscompat.TierNative} {
		p, _ := ForTier(tier)

		if !p.IsNotFound(notFound) || p.IsExists(notFound) {
			t.Errorf("%v: missing file misclassified", tier)
		}
		if !p.IsExists(exists) || p.IsNotFound(exists) {
			t.Errorf("%v: existing file misclassified", tier)
		}
		if k := p.Classify(notFound); k != hsscompat.KindNotFound {
			t.Errorf("%v: Classify(notFound) = %v", tier, k)
		}
		if k := p.Classify(exists); k != hsscompat.KindExists {
			t.Errorf("%v: Classify(exists) = %v", tier, k)
		}

		wrapped := fmt.Errorf("load state: %w", notFound)
		if !p.IsNotFound(wrapped) {
			t.Errorf("%v: wrapped not-found error was not recognised", tier)
		}
	}
}

func TestLegacyFileErrorsCollapse(t *testing.T) {
	notFound, exists := fileErrors(t)
	p, _ := ForTier(hsscompat.TierLegacy)

	for _, err := range []error{notFound, exists} {
		if !p.IsNotFound(err) || !p.IsExists(err) {
			t.Errorf("legacy tier should report %v as both not-found and exists", err)
		}
		if k := p.Classify(err); k != hsscompat.KindIOFailure {
			t.Errorf("legacy Classify(%v) = %v, want io-failure", err, k)
		}
	}

	if !p.IsNotFound(fs.ErrNotExist) || !p.IsExists(fs.ErrExist) {
		t.Error("legacy tier should recognise bare fs sentinels")
	}
}

func TestClassifyNonFileErrors(t *testing.T) {
	other := errors.New("unrelated")
	for _, p := range allProviders(t) {
		if k := p.Classify(nil); k != hsscompat.KindNone {
			t.Errorf("%v: Classify(nil) = %v", p.Tier(), k)
		}
		if p.IsNotFound(nil) || p.IsExists(nil) {
			t.Errorf("%v: nil error classified as a file error", p.Tier())
		}
		if k := p.Classify(other); k != hsscompat.KindOther {
			t.Errorf("%v: Classify(other) = %v", p.Tier(), k)
		}
		if p.IsNotFound(other) || p.IsExists(other) {
			t.Errorf("%v: unrelated error classified as a file error", p.Tier())
		}
	}
}

func TestClassifyPermissionError(t *testing.T) {
	permErr := &fs.PathError{Op: "open", Path: "/state", Err: fs.ErrPermission}

	legacy, _ := ForTier(hsscompat.TierLegacy)
	if k := legacy.Classify(permErr); k != hsscompat.KindIOFailure {
		t.Errorf("legacy Classify(permission) = %v", k)
	}

	native, _ := ForTier(hsscompat.TierNative)
	if k := native.Classify(permErr); k != hsscompat.KindOther {
		t.Errorf("native Classify(permission) = %v", k)
	}
}
