//go:build darwin

package platform

func newHostSystem(log Logger) System {
	return NewDarwinSystem(log)
}
