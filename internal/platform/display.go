package platform

import (
	"github.com/kbinani/screenshot"

	"github.com/winsnap/winsnap/internal/model"
)

// Display describes an attached monitor.
type Display struct {
	Index   int    `json:"index" yaml:"index"`
	Primary bool   `json:"primary" yaml:"primary"`
	Bounds  [4]int `json:"bounds" yaml:"bounds"`
}

// Displays returns every active display in index order. Index 0 is the
// primary display; bounds are virtual-screen coordinates, so secondary
// monitors can carry negative origins.
func Displays() []Display {
	n := screenshot.NumActiveDisplays()
	displays := make([]Display, n)
	for i := 0; i < n; i++ {
		displays[i] = Display{
			Index:   i,
			Primary: i == 0,
			Bounds:  model.BoundsFromRect(screenshot.GetDisplayBounds(i)),
		}
	}
	return displays
}
