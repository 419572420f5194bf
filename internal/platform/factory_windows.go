//go:build windows

package platform

func newHostSystem(log Logger) System {
	return NewWindowsSystem(log)
}
