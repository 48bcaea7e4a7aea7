//go:build hsscompat_legacy

package core

// Built with hsscompat_legacy: native XOF, native integer conversion and
// distinct file errors are all treated as absent.
const (
	buildNoXOF  = true
	buildLegacy = true
)
