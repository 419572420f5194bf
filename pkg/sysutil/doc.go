// Package sysutil provides the public API for the go-sysutil OS services
// adapter. It lets applications use modal dialogs, high-resolution
// timestamps, environment lookups, save-directory resolution, shell-open
// actions, and microsecond sleep through one platform-independent facade.
//
// # Basic Usage
//
//	sys, err := sysutil.New(sysutil.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if sys.ShowDialog(sysutil.DialogYesNo, "Quit", "Save before quitting?") == sysutil.ResultYes {
//		saveTo(sys.SaveDirectory())
//	}
//
// # Timestamps
//
// Timestamps are opaque monotonic counter readings. Capture them with
// [System.CaptureTimestamp] and convert deltas with [System.ExactDiff]
// (nanoseconds) or [System.Diff] (chosen unit). [System.Interpolate]
// positions a timestamp between two others; fractions outside [0,1]
// extrapolate, which callers use for prediction.
//
// # Error Handling
//
// Construction fails with [ErrZeroFrequency] when the platform timer is
// unusable; that condition is fatal. Everything else follows a
// recoverable contract: environment lookups return the empty string for
// unset names, save-directory resolution always yields a usable path,
// and shell-open actions return false after logging the native exit
// code.
//
// # Portable Builds
//
// Building with the "portable" or "dev" tag keeps saved data next to the
// executable instead of the per-user OS directory.
package sysutil
