//go:build !linux && !darwin && !windows

package platform

func newHostSystem(log Logger) System {
	return newBaseSystem(log)
}
