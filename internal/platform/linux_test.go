//go:build linux

package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestLinuxResolveSaveDirectory verifies the HOME-based layout and the
// fallback when HOME is unset.
func TestLinuxResolveSaveDirectory(t *testing.T) {
	log := &testLogger{}
	sys := NewLinuxSystem(log).(*linuxSystem)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	t.Setenv("HOME", "/home/someone")
	dir := sys.ResolveSaveDirectory()
	if portableSaves {
		if filepath.Base(dir) != "saves" {
			t.Errorf("portable build should use the default directory, got %q", dir)
		}
		return
	}
	if dir != filepath.Join("/home/someone", "."+saveSubdir) {
		t.Errorf("unexpected save directory %q", dir)
	}

	t.Setenv("HOME", "")
	dir = sys.ResolveSaveDirectory()
	if dir == "" {
		t.Fatal("fallback save directory must not be empty")
	}
	if filepath.Base(dir) != "saves" {
		t.Errorf("fallback should be the default directory, got %q", dir)
	}
	if len(log.warns) == 0 {
		t.Error("missing HOME should log a warning")
	}
}

// TestLinuxOpenPathFailure verifies the boolean/log contract when the
// helper cannot open the target.
func TestLinuxOpenPathFailure(t *testing.T) {
	if lookPath("xdg-open") {
		t.Skip("xdg-open present; failure path not reachable deterministically")
	}

	log := &testLogger{}
	sys := NewLinuxSystem(log).(*linuxSystem)
	if sys.OpenPath("/definitely/not/here") {
		t.Error("expected OpenPath to fail without xdg-open")
	}
	if len(log.errors) != 1 {
		t.Errorf("expected exactly one error entry, got %d", len(log.errors))
	}
}

// TestRunDialog verifies exit status propagation and the unstartable
// helper signal.
func TestRunDialog(t *testing.T) {
	if code, ok := runDialog("true"); !ok || code != 0 {
		t.Errorf("runDialog(true) = (%d, %v), want (0, true)", code, ok)
	}
	if code, ok := runDialog("false"); !ok || code != 1 {
		t.Errorf("runDialog(false) = (%d, %v), want (1, true)", code, ok)
	}
	if _, ok := runDialog("gosysutil-no-such-helper"); ok {
		t.Error("unstartable helper should report ok=false")
	}
}

// TestLinuxName pins the platform identifier.
func TestLinuxName(t *testing.T) {
	sys := NewLinuxSystem(nil)
	if !strings.EqualFold(sys.Name(), "linux") {
		t.Errorf("unexpected name %q", sys.Name())
	}
}
