package primitives

import (
	"errors"
	"fmt"

	"github.com/BackendStack21/hsslms-compat-go/utils"
)

// osEntropy reads the raw OS entropy source.
type osEntropy struct{}

func (osEntropy) RandomBytes(n int) ([]byte, error) {
	b, err := utils.OSEntropyBytes(n)
	if err != nil {
		return nil, entropyError(err)
	}
	return b, nil
}

// csprng reads the dedicated CSPRNG.
type csprng struct{}

func (csprng) RandomBytes(n int) ([]byte, error) {
	b, err := utils.SecureRandomBytes(n)
	if err != nil {
		return nil, entropyError(err)
	}
	return b, nil
}

// entropyError leaves length errors alone and marks everything else as an
// entropy failure.
func entropyError(err error) error {
	if errors.Is(err, utils.ErrInvalidLength) || errors.Is(err, utils.ErrExceedsLimit) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
}
