package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skratchdot/open-golang/open"
)

// ErrZeroFrequency is returned by Init when the platform reports a zero
// counter frequency. Timestamp diffs cannot be converted to wall-clock
// time in that case, so callers must treat this as fatal.
var ErrZeroFrequency = errors.New("platform reported zero counter frequency")

// saveSubdir is the fixed per-user subdirectory appended to the
// platform's profile directory by the OS adapters.
const saveSubdir = "gosysutil"

// baseSystem is the portable System implementation. It relies only on
// facilities available on every platform: the Go monotonic clock for
// timestamps, the terminal for dialogs, an executable-relative save
// directory, and the open-golang launcher for shell-open actions.
//
// The OS adapters embed baseSystem and override the operations their
// platform does natively.
type baseSystem struct {
	log Logger

	// Console dialog streams, swappable in tests.
	in  io.Reader
	out io.Writer

	// epoch anchors the monotonic counter; frequency is cached by Init
	// and immutable afterward.
	epoch     time.Time
	frequency int64
}

// newBaseSystem creates the portable adapter. A nil logger disables
// logging.
func newBaseSystem(log Logger) *baseSystem {
	return &baseSystem{
		log: ensureLogger(log),
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (s *baseSystem) Name() string {
	return "portable"
}

// Init anchors the monotonic clock. The portable counter runs in
// nanoseconds, so the frequency is the nanosecond tick rate.
func (s *baseSystem) Init() error {
	s.epoch = time.Now()
	s.frequency = int64(time.Second / time.Nanosecond)
	if s.frequency == 0 {
		return ErrZeroFrequency
	}
	return nil
}

func (s *baseSystem) ShowDialog(kind DialogKind, title, message string) DialogResult {
	return consoleDialog(s.in, s.out, kind, title, message)
}

func (s *baseSystem) CaptureTimestamp() TimeStamp {
	// time.Since uses the monotonic clock reading carried by epoch.
	return TimeStamp(time.Since(s.epoch))
}

func (s *baseSystem) Interpolate(a, b TimeStamp, fraction float64) TimeStamp {
	return interpolateTimestamp(a, b, fraction)
}

func (s *baseSystem) ExactDiff(before, after TimeStamp) int64 {
	return exactDiffNanoseconds(before, after, s.frequency)
}

func (s *baseSystem) Diff(before, after TimeStamp, unit TimeUnit) float64 {
	return diffInUnit(before, after, s.frequency, unit)
}

func (s *baseSystem) GetEnvironmentVariable(name string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return ""
	}
	s.log.Trace("detected environment variable", "name", name, "value", value)
	return value
}

// ResolveSaveDirectory returns the platform-independent default: a saves
// directory next to the executable. The OS adapters call this both in
// portable mode and as their fallback.
func (s *baseSystem) ResolveSaveDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		s.log.Warn("unable to locate executable for save directory", "error", err)
		return filepath.Join(".", "saves")
	}
	return filepath.Join(filepath.Dir(exe), "saves")
}

func (s *baseSystem) OpenPath(path string) bool {
	return s.launch("path", filepath.FromSlash(filepath.Clean(path)))
}

func (s *baseSystem) OpenWebsite(url string) bool {
	return s.launch("website", url)
}

// launch hands a target to the OS default handler via open-golang, which
// shells out to the platform's opener helper.
func (s *baseSystem) launch(what, target string) bool {
	if err := open.Run(target); err != nil {
		s.log.Error("failed to open "+what, "target", target, "code", exitCode(err), "error", err)
		return false
	}
	return true
}

func (s *baseSystem) Sleep(usec int) {
	time.Sleep(time.Duration(usec) * time.Microsecond)
}
