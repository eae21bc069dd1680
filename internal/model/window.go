package model

import (
	"image"
	"strings"
)

// Window represents one top-level window at enumeration time.
// Bounds is [left, top, right, bottom] in DPI-normalized screen coordinates.
type Window struct {
	Title  string `yaml:"title"  json:"title"`
	Bounds [4]int `yaml:"bounds" json:"bounds"`

	// Handle identifies the window to the OS for the lifetime of the
	// enumeration snapshot only. It is never serialized: handles are not
	// valid across process runs and must not be persisted.
	Handle uintptr `yaml:"-" json:"-"`
}

// Rect returns the window bounds as an image.Rectangle.
func (w Window) Rect() image.Rectangle {
	return image.Rect(w.Bounds[0], w.Bounds[1], w.Bounds[2], w.Bounds[3])
}

// Width returns the width of the window in pixels.
func (w Window) Width() int { return w.Bounds[2] - w.Bounds[0] }

// Height returns the height of the window in pixels.
func (w Window) Height() int { return w.Bounds[3] - w.Bounds[1] }

// Untitled reports whether the window has no title text (empty or
// whitespace only). Untitled windows stay in the catalog so callers can
// decide their own inclusion policy, but they are never fuzzy-match
// candidates.
func (w Window) Untitled() bool { return strings.TrimSpace(w.Title) == "" }

// BoundsFromRect converts an image.Rectangle to the [left, top, right,
// bottom] form used throughout the catalog and output layers.
func BoundsFromRect(r image.Rectangle) [4]int {
	return [4]int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

// Match is the resolver's output: the chosen window and its similarity
// score (0-100). A nil *Match means nothing cleared the threshold.
type Match struct {
	Window
	Score int
}

// Capture is the capture engine's output. Image dimensions always equal
// the Bounds extents; the engine fails rather than return a mismatch.
type Capture struct {
	Image  *image.RGBA
	Bounds [4]int
}
