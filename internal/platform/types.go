package platform

import (
	"fmt"
	"strings"
)

// CaptureMethod selects how window pixels are obtained.
type CaptureMethod int

const (
	// MethodWindow asks the window to render its own content into a
	// memory bitmap. Occluded and background windows capture correctly.
	MethodWindow CaptureMethod = iota
	// MethodScreen crops the window's rectangle out of a screen grab.
	// Anything overlapping the window ends up in the image.
	MethodScreen
)

// ParseCaptureMethod converts a string flag value to CaptureMethod.
func ParseCaptureMethod(s string) (CaptureMethod, error) {
	switch strings.ToLower(s) {
	case "window":
		return MethodWindow, nil
	case "screen":
		return MethodScreen, nil
	default:
		return MethodWindow, fmt.Errorf("unknown capture method: %q (expected window or screen)", s)
	}
}

func (m CaptureMethod) String() string {
	if m == MethodScreen {
		return "screen"
	}
	return "window"
}

// CaptureOptions configures how a window is captured.
type CaptureOptions struct {
	Method CaptureMethod
}
