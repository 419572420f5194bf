//go:build windows

package platform

import (
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")

	procQueryPerformanceFrequency = modkernel32.NewProc("QueryPerformanceFrequency")
	procQueryPerformanceCounter   = modkernel32.NewProc("QueryPerformanceCounter")
	procCreateWaitableTimerExW    = modkernel32.NewProc("CreateWaitableTimerExW")
	procSetWaitableTimer          = modkernel32.NewProc("SetWaitableTimer")
	procMessageBoxW               = moduser32.NewProc("MessageBoxW")
)

// Win32 message box flags and return values used by ShowDialog.
const (
	mbOK              = 0x00000000
	mbOKCancel        = 0x00000001
	mbYesNo           = 0x00000004
	mbIconError       = 0x00000010
	mbIconQuestion    = 0x00000020
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040

	idOK     = 1
	idCancel = 2
	idYes    = 6
	idNo     = 7
)

const (
	createWaitableTimerHighResolution = 0x00000002
	timerAllAccess                    = 0x1F0003
)

// windowsSystem implements System for Windows. Timestamps come from the
// QueryPerformanceCounter family, dialogs from MessageBoxW, saves from
// the USERPROFILE directory, shell-open actions from the explorer and
// rundll32 helpers, and sleep from a high-resolution waitable timer.
type windowsSystem struct {
	*baseSystem
}

// NewWindowsSystem creates a new Windows system adapter.
func NewWindowsSystem(log Logger) System {
	return &windowsSystem{baseSystem: newBaseSystem(log)}
}

func (s *windowsSystem) Name() string {
	return "windows"
}

// Init caches the performance counter frequency. A zero frequency means
// the counter cannot be scaled to wall-clock time and is fatal.
func (s *windowsSystem) Init() error {
	var freq int64
	ret, _, _ := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	if ret == 0 || freq == 0 {
		return ErrZeroFrequency
	}
	s.frequency = freq
	return nil
}

func (s *windowsSystem) CaptureTimestamp() TimeStamp {
	var counter int64
	procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&counter)))
	return TimeStamp(counter)
}

func (s *windowsSystem) ShowDialog(kind DialogKind, title, message string) DialogResult {
	var flags uintptr
	switch normalizeKind(kind) {
	case DialogWarning:
		flags = mbIconWarning | mbOK
	case DialogError:
		flags = mbIconError | mbOK
	case DialogYesNo:
		flags = mbIconQuestion | mbYesNo
	case DialogOkCancel:
		flags = mbIconWarning | mbOKCancel
	default:
		flags = mbIconInformation | mbOK
	}

	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return ResultOk
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return ResultOk
	}

	ret, _, _ := procMessageBoxW.Call(0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		flags)

	switch ret {
	case idCancel:
		return ResultCancel
	case idYes:
		return ResultYes
	case idNo:
		return ResultNo
	}
	return ResultOk
}

func (s *windowsSystem) ResolveSaveDirectory() string {
	if portableSaves {
		return s.baseSystem.ResolveSaveDirectory()
	}

	profile := s.GetEnvironmentVariable("USERPROFILE")
	if profile == "" {
		s.log.Warn("unable to find directory for saves, using default directory")
		return s.baseSystem.ResolveSaveDirectory()
	}
	dir := filepath.Join(profile, saveSubdir)
	s.log.Trace("saved game files are going to", "dir", dir)
	return dir
}

func (s *windowsSystem) OpenPath(path string) bool {
	preferred := filepath.FromSlash(filepath.Clean(path))
	return shellOpen(s.log, "path", preferred, "cmd", "/C", "start", "explorer", preferred)
}

func (s *windowsSystem) OpenWebsite(url string) bool {
	return shellOpen(s.log, "website", url, "rundll32", "url.dll,FileProtocolHandler", url)
}

// Sleep blocks on a high-resolution waitable timer. The coarse Go timer
// wheel rounds short sleeps up on Windows, so short waits go through the
// kernel timer directly.
func (s *windowsSystem) Sleep(usec int) {
	timer, _, _ := procCreateWaitableTimerExW.Call(0, 0,
		createWaitableTimerHighResolution, timerAllAccess)
	if timer == 0 {
		// High-resolution timers need Windows 10 1803; retry without.
		timer, _, _ = procCreateWaitableTimerExW.Call(0, 0, 0, timerAllAccess)
	}
	if timer == 0 {
		time.Sleep(time.Duration(usec) * time.Microsecond)
		return
	}
	handle := windows.Handle(timer)
	defer windows.CloseHandle(handle)

	// Negative due time is relative, in 100ns units.
	due := -int64(usec) * 10
	ret, _, _ := procSetWaitableTimer.Call(uintptr(handle),
		uintptr(unsafe.Pointer(&due)), 0, 0, 0, 0)
	if ret == 0 {
		time.Sleep(time.Duration(usec) * time.Microsecond)
		return
	}
	windows.WaitForSingleObject(handle, windows.INFINITE)
}
