// Package platform provides cross-platform access to basic OS services.
//
// The package defines the System interface for OS-specific implementations
// and build-tag factories for creating the appropriate implementation for
// the host operating system. Each implementation covers the same fixed
// capability set: high-resolution timestamps, modal dialogs, environment
// variable lookup, save-directory resolution, shell-open actions, and
// microsecond sleep.
//
// # Architecture
//
// One adapter per operating system implements System. A portable base
// adapter provides platform-independent behavior (monotonic clock
// timestamps, console dialogs, executable-relative save directory) and is
// embedded by the OS adapters, which override only what their platform
// does natively. This design allows for:
//
//   - Platform-agnostic engine code
//   - Easy testing against the base adapter on any OS
//   - Per-OS behavior isolated behind build tags
//
// # Usage
//
// Creating a system adapter for the current OS:
//
//	sys := platform.NewSystem(logger)
//	if err := sys.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	before := sys.CaptureTimestamp()
//	sys.Sleep(1500)
//	after := sys.CaptureTimestamp()
//	fmt.Printf("slept %d ns\n", sys.ExactDiff(before, after))
//
// # Thread Safety
//
// Init must complete before any timestamp operation and must not be called
// concurrently with other operations. All other operations only read state
// written during Init and are safe for concurrent use.
package platform
