//go:build darwin

package platform

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// darwinSystem implements System for macOS. Dialogs are displayed through
// osascript, shell-open actions use open(1), and saves live under the
// user's Application Support directory.
type darwinSystem struct {
	*baseSystem
}

// NewDarwinSystem creates a new macOS system adapter.
func NewDarwinSystem(log Logger) System {
	return &darwinSystem{baseSystem: newBaseSystem(log)}
}

func (s *darwinSystem) Name() string {
	return "darwin"
}

func (s *darwinSystem) ShowDialog(kind DialogKind, title, message string) DialogResult {
	kind = normalizeKind(kind)
	if !lookPath("osascript") {
		return consoleDialog(s.in, s.out, kind, title, message)
	}

	icon := "note"
	buttons := `{"OK"}`
	switch kind {
	case DialogWarning:
		icon = "caution"
	case DialogError:
		icon = "stop"
	case DialogYesNo:
		icon = "note"
		buttons = `{"No", "Yes"}`
	case DialogOkCancel:
		icon = "caution"
		buttons = `{"Cancel", "OK"}`
	}

	script := `display dialog "` + appleScriptEscape(message) +
		`" with title "` + appleScriptEscape(title) +
		`" buttons ` + buttons + ` default button -1 with icon ` + icon

	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		// osascript exits nonzero when the Cancel button is pressed.
		if kind == DialogOkCancel && exitCode(err) > 0 {
			return ResultCancel
		}
		return ResultOk
	}

	pressed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(out)), "button returned:"))
	switch pressed {
	case "Yes":
		return ResultYes
	case "No":
		return ResultNo
	case "Cancel":
		return ResultCancel
	}
	return ResultOk
}

func (s *darwinSystem) ResolveSaveDirectory() string {
	if portableSaves {
		return s.baseSystem.ResolveSaveDirectory()
	}

	home := s.GetEnvironmentVariable("HOME")
	if home == "" {
		s.log.Warn("unable to find directory for saves, using default directory")
		return s.baseSystem.ResolveSaveDirectory()
	}
	dir := filepath.Join(home, "Library", "Application Support", saveSubdir)
	s.log.Trace("saved game files are going to", "dir", dir)
	return dir
}

func (s *darwinSystem) OpenPath(path string) bool {
	return shellOpen(s.log, "path", path, "open", filepath.Clean(path))
}

func (s *darwinSystem) OpenWebsite(url string) bool {
	return shellOpen(s.log, "website", url, "open", url)
}

// appleScriptEscape escapes a string for embedding in an AppleScript
// double-quoted literal.
func appleScriptEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
