package platform

// NewSystem creates the System adapter for the host operating system.
// A nil logger disables adapter logging. Call Init on the result before
// using any timestamp operation.
func NewSystem(log Logger) System {
	return newHostSystem(log)
}

// NewPortableSystem creates the platform-independent adapter regardless
// of the host OS. It is useful for tests and for environments without a
// desktop session.
func NewPortableSystem(log Logger) System {
	return newBaseSystem(log)
}
