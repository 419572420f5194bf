package platform

import (
	"errors"
	"os/exec"
)

// shellOpen runs an OS helper program and reports whether it exited
// cleanly. Failures produce exactly one error log entry carrying the
// native exit code; successes log nothing. Quoting and escaping of
// untrusted targets is the caller's responsibility.
func shellOpen(log Logger, what, target string, name string, args ...string) bool {
	if err := exec.Command(name, args...).Run(); err != nil {
		log.Error("failed to open "+what, "target", target, "code", exitCode(err), "error", err)
		return false
	}
	return true
}

// exitCode extracts the child process exit code from a Run error.
// Returns -1 when the helper could not be started at all.
func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

// lookPath reports whether a helper program is available on PATH.
func lookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
