//go:build windows

package windows

import (
	"log"
	"sync"
	"syscall"
)

const processPerMonitorDPIAware = 2

var dpiOnce sync.Once

// EnableDPIAwareness opts the process into per-monitor DPI awareness so
// window bounds come back in physical pixels. It must run before any
// bounds are read; otherwise Windows hands out virtualized coordinates
// that do not line up with captured pixels. Safe to call repeatedly, the
// underlying call happens once per process.
func EnableDPIAwareness() {
	dpiOnce.Do(setDPIAware)
}

func setDPIAware() {
	shcore := syscall.NewLazyDLL("Shcore.dll")
	setProcessDpiAwareness := shcore.NewProc("SetProcessDpiAwareness")
	if err := setProcessDpiAwareness.Find(); err == nil {
		ret, _, _ := setProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
		if ret == 0 {
			log.Printf("dpi: per-monitor DPI awareness set")
		} else {
			log.Printf("dpi: SetProcessDpiAwareness returned %#x", ret)
		}
		return
	}

	// Pre-8.1 systems have no Shcore; fall back to system-wide awareness.
	user32 := syscall.NewLazyDLL("user32.dll")
	setProcessDPIAware := user32.NewProc("SetProcessDPIAware")
	if err := setProcessDPIAware.Find(); err == nil {
		if ret, _, _ := setProcessDPIAware.Call(); ret != 0 {
			log.Printf("dpi: system DPI awareness set (fallback)")
		} else {
			log.Printf("dpi: SetProcessDPIAware failed")
		}
		return
	}
	log.Printf("dpi: no DPI awareness API available")
}
