//go:build linux

package platform

import (
	"os/exec"
	"path/filepath"
)

// linuxSystem implements System for Linux. Dialogs go through the
// desktop's dialog helper (zenity or kdialog) with a terminal fallback;
// shell-open actions use xdg-open. Timestamps come from the portable
// monotonic clock, which is CLOCK_MONOTONIC on Linux.
type linuxSystem struct {
	*baseSystem
}

// NewLinuxSystem creates a new Linux system adapter.
func NewLinuxSystem(log Logger) System {
	return &linuxSystem{baseSystem: newBaseSystem(log)}
}

func (s *linuxSystem) Name() string {
	return "linux"
}

func (s *linuxSystem) ShowDialog(kind DialogKind, title, message string) DialogResult {
	kind = normalizeKind(kind)

	switch {
	case lookPath("zenity"):
		return s.zenityDialog(kind, title, message)
	case lookPath("kdialog"):
		return s.kdialogDialog(kind, title, message)
	default:
		return consoleDialog(s.in, s.out, kind, title, message)
	}
}

// zenityDialog maps the dialog kind onto zenity's dialog types. zenity
// exits 0 for the affirmative button and 1 for the negative one; any
// other exit status maps to ResultOk.
func (s *linuxSystem) zenityDialog(kind DialogKind, title, message string) DialogResult {
	var args []string
	switch kind {
	case DialogWarning:
		args = []string{"--warning"}
	case DialogError:
		args = []string{"--error"}
	case DialogYesNo:
		args = []string{"--question", "--ok-label=Yes", "--cancel-label=No"}
	case DialogOkCancel:
		args = []string{"--question", "--ok-label=OK", "--cancel-label=Cancel"}
	default:
		args = []string{"--info"}
	}
	args = append(args, "--title="+title, "--text="+message)

	code, ok := runDialog("zenity", args...)
	if !ok {
		return consoleDialog(s.in, s.out, kind, title, message)
	}
	switch kind {
	case DialogYesNo:
		if code == 1 {
			return ResultNo
		}
		if code == 0 {
			return ResultYes
		}
	case DialogOkCancel:
		if code == 1 {
			return ResultCancel
		}
	}
	return ResultOk
}

// kdialogDialog is the KDE equivalent of zenityDialog.
func (s *linuxSystem) kdialogDialog(kind DialogKind, title, message string) DialogResult {
	var args []string
	switch kind {
	case DialogWarning:
		args = []string{"--sorry", message}
	case DialogError:
		args = []string{"--error", message}
	case DialogYesNo:
		args = []string{"--yesno", message}
	case DialogOkCancel:
		args = []string{"--warningcontinuecancel", message}
	default:
		args = []string{"--msgbox", message}
	}
	args = append(args, "--title", title)

	code, ok := runDialog("kdialog", args...)
	if !ok {
		return consoleDialog(s.in, s.out, kind, title, message)
	}
	switch kind {
	case DialogYesNo:
		if code == 1 {
			return ResultNo
		}
		if code == 0 {
			return ResultYes
		}
	case DialogOkCancel:
		if code == 2 {
			return ResultCancel
		}
	}
	return ResultOk
}

func (s *linuxSystem) ResolveSaveDirectory() string {
	if portableSaves {
		return s.baseSystem.ResolveSaveDirectory()
	}

	home := s.GetEnvironmentVariable("HOME")
	if home == "" {
		s.log.Warn("unable to find directory for saves, using default directory")
		return s.baseSystem.ResolveSaveDirectory()
	}
	dir := filepath.Join(home, "."+saveSubdir)
	s.log.Trace("saved game files are going to", "dir", dir)
	return dir
}

func (s *linuxSystem) OpenPath(path string) bool {
	return shellOpen(s.log, "path", path, "xdg-open", filepath.Clean(path))
}

func (s *linuxSystem) OpenWebsite(url string) bool {
	return shellOpen(s.log, "website", url, "xdg-open", url)
}

// runDialog runs a dialog helper and returns its exit status. The second
// return is false when the helper could not be started at all, in which
// case the caller falls back to the terminal.
func runDialog(name string, args ...string) (int, bool) {
	err := exec.Command(name, args...).Run()
	if err == nil {
		return 0, true
	}
	if code := exitCode(err); code >= 0 {
		return code, true
	}
	return 0, false
}
