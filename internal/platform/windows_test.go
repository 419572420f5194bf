//go:build windows

package platform

import (
	"path/filepath"
	"testing"
)

// TestWindowsInitFrequency verifies QueryPerformanceFrequency reports a
// usable counter.
func TestWindowsInitFrequency(t *testing.T) {
	sys := NewWindowsSystem(nil).(*windowsSystem)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if sys.frequency == 0 {
		t.Fatal("counter frequency must be nonzero after Init")
	}
}

// TestWindowsTimestampsAdvance verifies QPC readings move forward and
// diff to a plausible nanosecond count.
func TestWindowsTimestampsAdvance(t *testing.T) {
	sys := NewWindowsSystem(nil).(*windowsSystem)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	before := sys.CaptureTimestamp()
	sys.Sleep(2000)
	after := sys.CaptureTimestamp()

	if after <= before {
		t.Errorf("counter did not advance: before=%d after=%d", before, after)
	}
	if diff := sys.ExactDiff(before, after); diff <= 0 {
		t.Errorf("expected positive nanosecond diff, got %d", diff)
	}
}

// TestWindowsResolveSaveDirectory verifies the USERPROFILE layout and
// fallback.
func TestWindowsResolveSaveDirectory(t *testing.T) {
	if portableSaves {
		t.Skip("portable build always uses the default directory")
	}

	log := &testLogger{}
	sys := NewWindowsSystem(log).(*windowsSystem)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	t.Setenv("USERPROFILE", `C:\Users\someone`)
	if dir := sys.ResolveSaveDirectory(); dir != filepath.Join(`C:\Users\someone`, saveSubdir) {
		t.Errorf("unexpected save directory %q", dir)
	}

	t.Setenv("USERPROFILE", "")
	dir := sys.ResolveSaveDirectory()
	if dir == "" {
		t.Fatal("fallback save directory must not be empty")
	}
	if len(log.warns) == 0 {
		t.Error("missing USERPROFILE should log a warning")
	}
}
