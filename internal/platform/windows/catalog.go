//go:build windows

package windows

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/winsnap/winsnap/internal/model"
	"github.com/winsnap/winsnap/internal/platform"
)

var (
	user32                   = syscall.NewLazyDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")

	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")
)

const dwmwaCloaked = 14

// Lister enumerates top-level windows through EnumWindows.
type Lister struct{}

func NewLister() *Lister { return &Lister{} }

type enumState struct {
	windows []model.Window
}

// enumCallback runs for every top-level window during EnumWindows. It is
// package-level because syscall.NewCallback allocations are never
// released; per-call state travels through lParam.
var enumCallback = syscall.NewCallback(func(hwnd win.HWND, lParam uintptr) uintptr {
	state := (*enumState)(unsafe.Pointer(lParam))
	if !capturable(hwnd) {
		return 1
	}
	var rect win.RECT
	if !win.GetWindowRect(hwnd, &rect) {
		return 1
	}
	if rect.Right <= rect.Left || rect.Bottom <= rect.Top {
		return 1
	}
	state.windows = append(state.windows, model.Window{
		Title:  windowTitle(hwnd),
		Handle: uintptr(hwnd),
		Bounds: [4]int{int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom)},
	})
	return 1
})

// ListWindows returns the catalog of capturable windows. EnumWindows
// hands back top-level windows in z-order, frontmost first, and that
// order is preserved.
func (l *Lister) ListWindows() ([]model.Window, error) {
	EnableDPIAwareness()
	var state enumState
	ret, _, callErr := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&state)))
	if ret == 0 {
		return nil, &platform.EnumerationError{Err: callErr}
	}
	return state.windows, nil
}

// capturable filters out windows that cannot produce a meaningful
// screenshot: invisible, minimized, and DWM-cloaked ones. Cloaked
// windows are mostly suspended UWP apps that report visible but render
// nothing.
func capturable(hwnd win.HWND) bool {
	if !win.IsWindowVisible(hwnd) {
		return false
	}
	if win.IsIconic(hwnd) {
		return false
	}
	return !cloaked(hwnd)
}

// cloaked reports whether DWM hides the window from the desktop. When
// dwmapi or the attribute is unavailable the window counts as visible.
func cloaked(hwnd win.HWND) bool {
	if procDwmGetWindowAttribute.Find() != nil {
		return false
	}
	var value uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(hwnd),
		dwmwaCloaked,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	return hr == 0 && value != 0
}

func windowTitle(hwnd win.HWND) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	r, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:r])
}
