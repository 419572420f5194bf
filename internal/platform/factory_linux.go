//go:build linux

package platform

func newHostSystem(log Logger) System {
	return NewLinuxSystem(log)
}
