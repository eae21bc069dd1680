package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/winsnap/winsnap/internal/config"
	"github.com/winsnap/winsnap/internal/version"
)

// cfg holds the configuration for the current invocation, loaded by the
// root PersistentPreRunE. Flags the user set explicitly win over it.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "winsnap [flags] <window title>",
	Short: "Screenshot an application window by fuzzy title match",
	Long: `winsnap captures a screenshot of the application window whose title best
matches the given name and prints where the image was written. Matching is
fuzzy, so "notepad" finds "Untitled - Notepad". Built for AI agents and
scripts: pass --json to get the path and the window's bounding box as JSON.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runCapture,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: <user config dir>/winsnap/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")
	addCaptureFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// stdout carries results only; diagnostics go to stderr and are
		// dropped entirely unless --verbose.
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetOutput(os.Stderr)
			log.SetPrefix("winsnap: ")
			log.SetFlags(0)
		} else {
			log.SetOutput(io.Discard)
		}

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	}
}
