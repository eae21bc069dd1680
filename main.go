package main

import (
	"github.com/winsnap/winsnap/cmd"

	// Register the platform backend for the build target.
	_ "github.com/winsnap/winsnap/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
