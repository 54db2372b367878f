//go:build windows

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW          = user32.NewProc("FindWindowW")
	procFindWindowExW        = user32.NewProc("FindWindowExW")
	procSendMessageTimeoutW  = user32.NewProc("SendMessageTimeoutW")
	procPostMessageW         = user32.NewProc("PostMessageW")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procSetParent            = user32.NewProc("SetParent")
	procGetWindowLongPtrW    = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW    = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procShowWindow           = user32.NewProc("ShowWindow")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetClassNameW        = user32.NewProc("GetClassNameW")
	procMonitorFromWindow    = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW      = user32.NewProc("GetMonitorInfoW")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

const (
	msgSpawnWorkerW = 0x052C
	wmClose         = 0x0010

	wsChild   = 0x40000000
	wsPopup   = 0x80000000
	wsCaption = 0x00C00000

	swHide = 0
	swShow = 5

	swpNoSize        = 0x0001
	swpNoZOrder      = 0x0004
	swpNoActivate    = 0x0010
	swpFrameChanged  = 0x0020
	swpShowWindow    = 0x0040
	smtoNormal       = 0x0000
	monitorNearest   = 0x00000002
	spiGetWallpaper  = 0x0073
	spiSetWallpaper  = 0x0014
	spifUpdateIni    = 0x01
	spifSendChange   = 0x02
	maxWallpaperPath = 260
)

var gwlStyle int32 = -16

type monitorInfo struct {
	Size    uint32
	Monitor windows.Rect
	Work    windows.Rect
	Flags   uint32
}

var enumWorkerW = windows.NewCallback(func(hwnd, lparam uintptr) uintptr {
	shell, _, _ := procFindWindowExW.Call(hwnd, 0, utf16("SHELLDLL_DefView"), 0)
	if shell == 0 {
		return 1
	}
	worker, _, _ := procFindWindowExW.Call(0, hwnd, utf16("WorkerW"), 0)
	*(*uintptr)(unsafe.Pointer(lparam)) = worker
	return 0
})

type win32Provider struct {
	window  uintptr
	progman uintptr
	workerW uintptr

	findWorkerW      func() (progman, worker uintptr, err error)
	closeWindow      func(hwnd uintptr)
	restoreWallpaper func() error
}

func newPlatformProvider() (Provider, error) {
	return &win32Provider{
		findWorkerW:      findWorkerW,
		closeWindow:      postClose,
		restoreWallpaper: reapplyWallpaper,
	}, nil
}

// findWorkerW asks Progman to spawn the WorkerW that sits between the
// wallpaper and the desktop icons and returns both windows.
func findWorkerW() (progman, worker uintptr, err error) {
	progman, _, _ = procFindWindowW.Call(utf16("Progman"), 0)
	if progman == 0 {
		return 0, 0, fmt.Errorf("Progman window not found")
	}

	var result uintptr
	procSendMessageTimeoutW.Call(progman, msgSpawnWorkerW, 0xD, 0x1, smtoNormal, 1000, uintptr(unsafe.Pointer(&result)))

	procEnumWindows.Call(enumWorkerW, uintptr(unsafe.Pointer(&worker)))
	if worker == 0 {
		// newer shells keep the WorkerW as a child of Progman
		worker, _, _ = procFindWindowExW.Call(progman, 0, utf16("WorkerW"), 0)
	}
	if worker == 0 {
		return progman, 0, fmt.Errorf("WorkerW window not found")
	}
	return progman, worker, nil
}

func postClose(hwnd uintptr) {
	procPostMessageW.Call(hwnd, wmClose, 0, 0)
}

func reapplyWallpaper() error {
	buf := make([]uint16, maxWallpaperPath)
	if ret, _, err := procSystemParametersInfo.Call(spiGetWallpaper, uintptr(len(buf)), uintptr(unsafe.Pointer(&buf[0])), 0); ret == 0 {
		return fmt.Errorf("reading wallpaper path: %w", err)
	}
	if ret, _, err := procSystemParametersInfo.Call(spiSetWallpaper, 0, uintptr(unsafe.Pointer(&buf[0])), spifUpdateIni|spifSendChange); ret == 0 {
		return fmt.Errorf("restoring wallpaper: %w", err)
	}
	return nil
}

func utf16(s string) uintptr {
	p, _ := windows.UTF16PtrFromString(s)
	return uintptr(unsafe.Pointer(p))
}

// Attach makes the window a child of the WorkerW behind the desktop icons.
func (p *win32Provider) Attach(window uintptr) error {
	if window == 0 {
		return fmt.Errorf("attach: no native window handle")
	}

	progman, worker, err := p.findWorkerW()
	if err != nil {
		return fmt.Errorf("attach: %w", err)
	}

	style, _, _ := procGetWindowLongPtrW.Call(window, uintptr(gwlStyle))
	style = (style &^ (wsPopup | wsCaption)) | wsChild
	procSetWindowLongPtrW.Call(window, uintptr(gwlStyle), style)

	if ret, _, err := procSetParent.Call(window, worker); ret == 0 {
		return fmt.Errorf("attach: SetParent: %w", err)
	}
	procSetWindowPos.Call(window, 0, 0, 0, 0, 0, swpNoSize|swpNoZOrder|swpNoActivate|swpFrameChanged|swpShowWindow)

	p.window, p.progman, p.workerW = window, progman, worker
	log.Debugf("attached window 0x%x to WorkerW 0x%x", window, worker)
	return nil
}

func className(hwnd uintptr) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

// IsForegroundWindowFullscreen reports whether the foreground window covers
// its whole monitor. The desktop itself never counts.
func (p *win32Provider) IsForegroundWindowFullscreen() bool {
	fg, _, _ := procGetForegroundWindow.Call()
	if fg == 0 || fg == p.window || fg == p.progman || fg == p.workerW {
		return false
	}
	switch className(fg) {
	case "Progman", "WorkerW":
		return false
	}

	var rect windows.Rect
	if ret, _, _ := procGetWindowRect.Call(fg, uintptr(unsafe.Pointer(&rect))); ret == 0 {
		return false
	}

	monitor, _, _ := procMonitorFromWindow.Call(fg, monitorNearest)
	info := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
	if ret, _, _ := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&info))); ret == 0 {
		return false
	}
	return coversMonitor(rect, info.Monitor)
}

func coversMonitor(window, monitor windows.Rect) bool {
	return window.Left <= monitor.Left && window.Top <= monitor.Top &&
		window.Right >= monitor.Right && window.Bottom >= monitor.Bottom
}

func (p *win32Provider) ShowSurface() {
	if p.window != 0 {
		procShowWindow.Call(p.window, swShow)
	}
}

func (p *win32Provider) HideSurface() {
	if p.window != 0 {
		procShowWindow.Call(p.window, swHide)
	}
}

// DetachAndRestore closes the WorkerW and re-applies the configured static
// wallpaper so the desktop does not stay black. A provider that never
// attached, as with --clear after a crash, looks the WorkerW up first.
func (p *win32Provider) DetachAndRestore() error {
	if p.window != 0 {
		procSetParent.Call(p.window, 0)
	}

	worker := p.workerW
	if worker == 0 {
		_, found, err := p.findWorkerW()
		if err != nil {
			log.Warnf("no WorkerW to close: %v", err)
		}
		worker = found
	}
	if worker != 0 {
		p.closeWindow(worker)
	}
	p.window, p.workerW = 0, 0

	return p.restoreWallpaper()
}

func (p *win32Provider) Close() error { return nil }
