//go:build !hsscompat_noxof && !hsscompat_legacy

package core

const (
	buildNoXOF  = false
	buildLegacy = false
)
