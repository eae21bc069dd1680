//go:build windows

package windows

import "github.com/winsnap/winsnap/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		EnableDPIAwareness()
		return &platform.Provider{
			Lister:   NewLister(),
			Capturer: NewCapturer(),
		}, nil
	}
}
