//go:build linux

package utils

import (
	"errors"

	"golang.org/x/sys/unix"
)

// EntropySource fills buf from the raw OS entropy source. On Linux this is
// getrandom(2) without flags, which blocks only until the kernel pool has
// been initialized.
var EntropySource = getrandom

func getrandom(buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Getrandom(buf, 0)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		buf = buf[n:]
	}
	return nil
}
