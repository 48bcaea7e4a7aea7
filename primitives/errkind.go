package primitives

import (
	"errors"
	"io/fs"
	"os"

	hsscompat "github.com/BackendStack21/hsslms-compat-go"
)

// genericIOErrors collapses every filesystem failure into KindIOFailure.
// IsNotFound and IsExists both report true for such an error, so callers
// on this tier must not rely on telling the two apart.
type genericIOErrors struct{}

func (genericIOErrors) IsNotFound(err error) bool { return isIOFailure(err) }
func (genericIOErrors) IsExists(err error) bool   { return isIOFailure(err) }

func (genericIOErrors) Classify(err error) hsscompat.ErrorKind {
	switch {
	case err == nil:
		return hsscompat.KindNone
	case isIOFailure(err):
		return hsscompat.KindIOFailure
	default:
		return hsscompat.KindOther
	}
}

func isIOFailure(err error) bool {
	if err == nil {
		return false
	}
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var sysErr *os.SyscallError
	return errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &sysErr) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrExist)
}

// distinctFileErrors maps onto fs.ErrNotExist and fs.ErrExist.
type distinctFileErrors struct{}

func (distinctFileErrors) IsNotFound(err error) bool { return errors.Is(err, fs.ErrNotExist) }
func (distinctFileErrors) IsExists(err error) bool   { return errors.Is(err, fs.ErrExist) }

func (distinctFileErrors) Classify(err error) hsscompat.ErrorKind {
	switch {
	case err == nil:
		return hsscompat.KindNone
	case errors.Is(err, fs.ErrNotExist):
		return hsscompat.KindNotFound
	case errors.Is(err, fs.ErrExist):
		return hsscompat.KindExists
	default:
		return hsscompat.KindOther
	}
}
