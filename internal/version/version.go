// Package version holds build metadata injected at link time via -ldflags.
package version

// Set with:
//
//	go build -ldflags "-X github.com/winsnap/winsnap/internal/version.Version=... \
//	  -X github.com/winsnap/winsnap/internal/version.Commit=... \
//	  -X github.com/winsnap/winsnap/internal/version.BuildDate=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
