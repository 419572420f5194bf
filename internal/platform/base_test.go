package platform

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestBase(t *testing.T) (*baseSystem, *testLogger) {
	t.Helper()
	log := &testLogger{}
	sys := newBaseSystem(log)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return sys, log
}

// TestBaseInitFrequency verifies the portable counter frequency is the
// nanosecond tick rate and nonzero.
func TestBaseInitFrequency(t *testing.T) {
	sys, _ := newTestBase(t)
	if sys.frequency != 1e9 {
		t.Errorf("portable frequency = %d, want 1e9", sys.frequency)
	}
}

// TestBaseTimestampRoundTrip verifies capture/diff against a known sleep.
func TestBaseTimestampRoundTrip(t *testing.T) {
	sys, _ := newTestBase(t)

	before := sys.CaptureTimestamp()
	time.Sleep(5 * time.Millisecond)
	after := sys.CaptureTimestamp()

	diff := sys.ExactDiff(before, after)
	if diff < int64(4*time.Millisecond) {
		t.Errorf("diff %d ns is shorter than the 5ms sleep", diff)
	}

	// On the portable adapter counter units are nanoseconds, so the
	// exact diff equals the raw delta.
	if diff != int64(after-before) {
		t.Errorf("diff %d should equal raw delta %d at 1e9 Hz", diff, after-before)
	}
}

// TestBaseGetEnvironmentVariable verifies set, unset, and empty-value
// lookups plus the trace side effect.
func TestBaseGetEnvironmentVariable(t *testing.T) {
	sys, log := newTestBase(t)

	t.Setenv("GOSYSUTIL_TEST_VAR", "some value")
	if got := sys.GetEnvironmentVariable("GOSYSUTIL_TEST_VAR"); got != "some value" {
		t.Errorf("expected 'some value', got %q", got)
	}
	if len(log.traces) != 1 {
		t.Errorf("expected one trace entry for a set variable, got %d", len(log.traces))
	}

	if got := sys.GetEnvironmentVariable("GOSYSUTIL_DEFINITELY_UNSET"); got != "" {
		t.Errorf("unset variable should return empty string, got %q", got)
	}
	if len(log.warns) != 0 || len(log.errors) != 0 {
		t.Error("unset variable must not log warnings or errors")
	}
}

// TestBaseResolveSaveDirectory verifies the executable-relative default.
func TestBaseResolveSaveDirectory(t *testing.T) {
	sys, _ := newTestBase(t)

	dir := sys.ResolveSaveDirectory()
	if dir == "" {
		t.Fatal("ResolveSaveDirectory returned empty string")
	}
	if filepath.Base(dir) != "saves" {
		t.Errorf("default save directory should end in 'saves', got %q", dir)
	}
}

// TestBaseShowDialogConsole verifies the base adapter prompts on its
// configured streams.
func TestBaseShowDialogConsole(t *testing.T) {
	log := &testLogger{}
	sys := newBaseSystem(log)
	sys.in = strings.NewReader("yes\n")
	var out bytes.Buffer
	sys.out = &out

	if got := sys.ShowDialog(DialogYesNo, "Title", "Proceed?"); got != ResultYes {
		t.Errorf("expected ResultYes, got %v", got)
	}
	if !strings.Contains(out.String(), "Proceed?") {
		t.Error("dialog message missing from output")
	}
}

// TestBaseSleepDuration verifies Sleep blocks at least approximately the
// requested time.
func TestBaseSleepDuration(t *testing.T) {
	sys, _ := newTestBase(t)

	start := time.Now()
	sys.Sleep(3000)
	elapsed := time.Since(start)
	if elapsed < 2*time.Millisecond {
		t.Errorf("Sleep(3000us) returned after %v", elapsed)
	}
}

// TestBaseInterpolate exercises interpolation through the System surface.
func TestBaseInterpolate(t *testing.T) {
	sys, _ := newTestBase(t)

	a, b := TimeStamp(1000), TimeStamp(2000)
	if got := sys.Interpolate(a, b, 0); got != a {
		t.Errorf("Interpolate(a, b, 0) = %d, want %d", got, a)
	}
	if got := sys.Interpolate(a, b, 1); got != b {
		t.Errorf("Interpolate(a, b, 1) = %d, want %d", got, b)
	}
	if got := sys.Interpolate(a, b, 0.5); got != 1500 {
		t.Errorf("Interpolate(a, b, 0.5) = %d, want 1500", got)
	}
}
