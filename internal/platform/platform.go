package platform

import "github.com/winsnap/winsnap/internal/model"

// Lister reads the catalog of capturable windows from the OS.
type Lister interface {
	// ListWindows returns all capturable top-level windows in z-order,
	// frontmost first. Invisible, minimized, and degenerate windows are
	// filtered out; untitled windows are included with an empty Title.
	ListWindows() ([]model.Window, error)
}

// Capturer captures window pixel content.
type Capturer interface {
	// CaptureWindow captures the current content of the given window.
	// The window's state is re-checked at capture time; the returned
	// bounds reflect the window's position at the moment of capture,
	// which may differ from w.Bounds.
	CaptureWindow(w model.Window, opts CaptureOptions) (*model.Capture, error)
}
