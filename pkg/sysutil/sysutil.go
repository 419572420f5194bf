package sysutil

import (
	"fmt"
	"os"

	"github.com/opd-ai/go-sysutil/internal/platform"
)

// ErrZeroFrequency is returned by New when the platform reports a zero
// high-resolution counter frequency. The process cannot reliably measure
// time in that state; treat this error as fatal.
var ErrZeroFrequency = platform.ErrZeroFrequency

// Re-exported adapter types so callers need only this package.
type (
	// TimeStamp is an opaque monotonic counter reading.
	TimeStamp = platform.TimeStamp
	// TimeUnit selects the unit for Diff results.
	TimeUnit = platform.TimeUnit
	// DialogKind selects the icon and button set of a modal dialog.
	DialogKind = platform.DialogKind
	// DialogResult is the canonical dialog result.
	DialogResult = platform.DialogResult
)

// Dialog kinds.
const (
	DialogInfo     = platform.DialogInfo
	DialogWarning  = platform.DialogWarning
	DialogError    = platform.DialogError
	DialogYesNo    = platform.DialogYesNo
	DialogOkCancel = platform.DialogOkCancel
)

// Dialog results.
const (
	ResultOk     = platform.ResultOk
	ResultCancel = platform.ResultCancel
	ResultYes    = platform.ResultYes
	ResultNo     = platform.ResultNo
)

// Diff units.
const (
	UnitSeconds      = platform.UnitSeconds
	UnitMilliseconds = platform.UnitMilliseconds
	UnitMicroseconds = platform.UnitMicroseconds
)

// System is the OS services facade. All methods other than construction
// are safe for concurrent use; they only read state established during
// New.
type System struct {
	sys  platform.System
	opts Options
}

// New creates and initializes the adapter for the host operating system.
// It returns ErrZeroFrequency (wrapped) when the platform timer is
// unusable.
func New(opts Options) (*System, error) {
	opts = withDefaults(opts)
	return wrap(platform.NewSystem(opts.Logger), opts)
}

// NewPortable creates and initializes the platform-independent adapter
// regardless of the host OS: console dialogs, monotonic-clock
// timestamps, and an executable-relative save directory.
func NewPortable(opts Options) (*System, error) {
	opts = withDefaults(opts)
	return wrap(platform.NewPortableSystem(opts.Logger), opts)
}

func withDefaults(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = DefaultLogger()
	}
	if opts.WatchDebounce <= 0 {
		opts.WatchDebounce = DefaultWatchDebounce
	}
	return opts
}

func wrap(sys platform.System, opts Options) (*System, error) {
	if err := sys.Init(); err != nil {
		return nil, fmt.Errorf("sysutil: initializing %s adapter: %w", sys.Name(), err)
	}
	return &System{sys: sys, opts: opts}, nil
}

// Name returns the platform identifier of the underlying adapter.
func (s *System) Name() string {
	return s.sys.Name()
}

// ShowDialog presents a modal dialog and blocks until dismissed.
func (s *System) ShowDialog(kind DialogKind, title, message string) DialogResult {
	return s.sys.ShowDialog(kind, title, message)
}

// CaptureTimestamp reads the monotonic high-resolution counter.
func (s *System) CaptureTimestamp() TimeStamp {
	return s.sys.CaptureTimestamp()
}

// Interpolate computes a + (b-a)*fraction in counter units without
// clamping the fraction.
func (s *System) Interpolate(a, b TimeStamp, fraction float64) TimeStamp {
	return s.sys.Interpolate(a, b, fraction)
}

// ExactDiff converts the counter delta between two timestamps into
// nanoseconds. Negative when after precedes before.
func (s *System) ExactDiff(before, after TimeStamp) int64 {
	return s.sys.ExactDiff(before, after)
}

// Diff converts the counter delta between two timestamps into the
// requested unit.
func (s *System) Diff(before, after TimeStamp, unit TimeUnit) float64 {
	return s.sys.Diff(before, after, unit)
}

// GetEnvironmentVariable looks up a process environment variable,
// returning the empty string when unset.
func (s *System) GetEnvironmentVariable(name string) string {
	return s.sys.GetEnvironmentVariable(name)
}

// SaveDirectory returns the directory where per-user saved data should
// live. The result is never empty.
func (s *System) SaveDirectory() string {
	return s.sys.ResolveSaveDirectory()
}

// EnsureSaveDirectory resolves the save directory and creates it if it
// does not exist yet.
func (s *System) EnsureSaveDirectory() (string, error) {
	dir := s.sys.ResolveSaveDirectory()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("sysutil: creating save directory %s: %w", dir, err)
	}
	return dir, nil
}

// OpenPath opens a filesystem path in the OS file manager. It returns
// false after logging the native exit code on failure.
func (s *System) OpenPath(path string) bool {
	return s.sys.OpenPath(path)
}

// OpenWebsite opens a URL in the OS default browser. Same contract as
// OpenPath.
func (s *System) OpenWebsite(url string) bool {
	return s.sys.OpenWebsite(url)
}

// Sleep blocks the calling goroutine for approximately usec
// microseconds. It is not cancellable; do not call it on a goroutine
// that must stay responsive.
func (s *System) Sleep(usec int) {
	s.sys.Sleep(usec)
}

// WatchSaveDirectory starts watching the resolved save directory for
// external changes (cloud sync clients, second instances). onChange is
// called with the affected path after debouncing; onError receives
// watcher failures and may be nil. The directory is created if missing.
// Callers must Stop the returned watcher.
func (s *System) WatchSaveDirectory(onChange func(path string), onError func(error)) (*SaveDirWatcher, error) {
	dir, err := s.EnsureSaveDirectory()
	if err != nil {
		return nil, err
	}
	w, err := newSaveDirWatcher(dir, s.opts.WatchDebounce, onChange, onError)
	if err != nil {
		return nil, fmt.Errorf("sysutil: watching save directory %s: %w", dir, err)
	}
	w.Start()
	return w, nil
}
