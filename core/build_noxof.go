//go:build hsscompat_noxof && !hsscompat_legacy

package core

// Built with hsscompat_noxof: the native XOF is treated as absent.
const (
	buildNoXOF  = true
	buildLegacy = false
)
