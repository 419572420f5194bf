package platform

// System defines the interface for OS-specific service adapters.
// Each supported operating system implements this interface to provide
// unified access to basic OS services.
type System interface {
	// Name returns the platform identifier (e.g., "linux", "windows", "darwin").
	Name() string

	// Init prepares the adapter for use. It queries and caches the
	// high-resolution counter frequency. Returns an error if the platform
	// reports a zero frequency; timestamp operations are meaningless in
	// that case and callers should treat the error as fatal.
	Init() error

	// ShowDialog presents a modal dialog and blocks until the user
	// dismisses it. Unrecognized kinds are shown as Info; native results
	// outside the mapping table are reported as ResultOk.
	ShowDialog(kind DialogKind, title, message string) DialogResult

	// CaptureTimestamp reads the monotonic high-resolution counter.
	CaptureTimestamp() TimeStamp

	// Interpolate computes a + (b-a)*fraction in counter units. The
	// fraction is not clamped; values outside [0,1] extrapolate linearly.
	Interpolate(a, b TimeStamp, fraction float64) TimeStamp

	// ExactDiff converts the counter delta between two timestamps into
	// nanoseconds. The result is negative when after precedes before.
	ExactDiff(before, after TimeStamp) int64

	// Diff converts the counter delta between two timestamps into the
	// requested unit.
	Diff(before, after TimeStamp, unit TimeUnit) float64

	// GetEnvironmentVariable looks up a process environment variable.
	// It returns the empty string when the variable is unset; absence is
	// a normal condition, not an error.
	GetEnvironmentVariable(name string) string

	// ResolveSaveDirectory returns the directory where per-user saved
	// data should live. It never returns an empty string: when the
	// platform lookup fails it falls back to a platform-independent
	// default next to the executable.
	ResolveSaveDirectory() string

	// OpenPath opens a filesystem path in the OS file manager. It returns
	// false and logs the native exit code when the shell invocation
	// fails.
	OpenPath(path string) bool

	// OpenWebsite opens a URL in the OS default browser. Same contract
	// as OpenPath.
	OpenWebsite(url string) bool

	// Sleep blocks the calling goroutine for approximately the requested
	// number of microseconds. It is not cancellable.
	Sleep(usec int)
}

// Logger accepts leveled messages from the adapters. It matches the
// sysutil package's slog-backed logger; adapters only emit, never read.
type Logger interface {
	Trace(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// nopLogger is used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Trace(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}

// ensureLogger returns log, or a no-op logger when log is nil.
func ensureLogger(log Logger) Logger {
	if log == nil {
		return nopLogger{}
	}
	return log
}
