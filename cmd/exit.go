package cmd

import (
	"errors"

	"github.com/winsnap/winsnap/internal/platform"
	"github.com/winsnap/winsnap/internal/storage"
)

// Exit codes are part of the agent contract and stay stable across
// releases.
const (
	exitOK          = 0
	exitNoMatch     = 1
	exitCaptureFail = 2
	exitWriteFail   = 3
	exitEnumFail    = 4
	exitUsage       = 64
)

// exitCodeFor maps an error to its documented exit code. Anything not
// covered by a dedicated code is a usage or environment problem.
func exitCodeFor(err error) int {
	var (
		noMatch  *NoMatchError
		capErr   *platform.CaptureError
		writeErr *storage.WriteError
		enumErr  *platform.EnumerationError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &noMatch):
		return exitNoMatch
	case errors.As(err, &capErr):
		return exitCaptureFail
	case errors.As(err, &writeErr):
		return exitWriteFail
	case errors.As(err, &enumErr):
		return exitEnumFail
	default:
		return exitUsage
	}
}
