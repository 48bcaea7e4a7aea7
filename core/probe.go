package core

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
	"github.com/BackendStack21/hsslms-compat-go/utils"
)

// Probe inspects the host and returns its capabilities. Build-time ceilings
// (see buildNoXOF and buildLegacy) are applied before any runtime check.
func Probe() hsscompat.Capabilities {
	return hsscompat.Capabilities{
		NativeXOF:          !buildNoXOF && !buildLegacy && utils.Shake256SelfTest(),
		NativeIntBytes:     !buildLegacy && probeIntBytes(),
		SecureRandom:       probeSecureRandom(),
		DistinctFileErrors: !buildLegacy && probeDistinctFileErrors(),
	}
}

func probeIntBytes() bool {
	const v = 0x01020304
	b := binary.BigEndian.AppendUint32(nil, v)
	return len(b) == 4 && b[0] == 0x01 && b[3] == 0x04 && binary.BigEndian.Uint32(b) == v
}

func probeSecureRandom() bool {
	_, err := utils.SecureRandomBytes(1)
	return err == nil
}

// probeDistinctFileErrors stats a random name under the temp directory and
// checks that the failure is reported as "not found" and not as "exists".
func probeDistinctFileErrors() bool {
	if errors.Is(fs.ErrNotExist, fs.ErrExist) {
		return false
	}
	suffix, err := utils.OSEntropyBytes(16)
	if err != nil {
		return false
	}
	path := filepath.Join(os.TempDir(), "hsscompat-probe-"+hex.EncodeToString(suffix))
	_, err = os.Stat(path)
	return errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrExist)
}
