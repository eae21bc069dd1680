package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/winsnap/winsnap/internal/imaging"
	"github.com/winsnap/winsnap/internal/match"
	"github.com/winsnap/winsnap/internal/output"
	"github.com/winsnap/winsnap/internal/platform"
	"github.com/winsnap/winsnap/internal/storage"
)

// NoMatchError reports that no window title cleared the threshold.
type NoMatchError struct {
	Query     string
	Threshold int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no window found matching %q (threshold %d)", e.Query, e.Threshold)
}

var captureCmd = &cobra.Command{
	Use:   "capture [flags] <window title>",
	Short: "Capture a window screenshot by fuzzy title match",
	Long: `Capture a screenshot of the window whose title best matches the given
name. The window's own content is captured, so windows hidden behind others
or sitting on a secondary monitor come out correctly.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	addCaptureFlags(captureCmd)
}

// addCaptureFlags registers the capture flag set. The root command and the
// capture subcommand share it so `winsnap notepad` and
// `winsnap capture notepad` behave identically.
func addCaptureFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file path (default: auto-named under the temp directory)")
	cmd.Flags().IntP("threshold", "t", 70, "Minimum match score 0-100; below it nothing is captured")
	cmd.Flags().BoolP("json", "j", false, "Print the result as JSON: {path, window, bbox}")
	cmd.Flags().String("format", "png", "Image format: png, jpg (inferred from --output extension when unset)")
	cmd.Flags().Int("quality", 85, "JPEG quality 1-100")
	cmd.Flags().Float64("scale", 1.0, "Downscale factor in (0,1]")
	cmd.Flags().String("method", "window", "Capture method: window (direct content) or screen (region grab)")
}

func runCapture(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")

	res, autoPath, err := capturePipeline(cmd, args)
	if err != nil {
		if jsonOut {
			_ = output.PrintJSON(output.ErrorResult{Error: err.Error()})
		} else {
			var noMatch *NoMatchError
			if errors.As(err, &noMatch) {
				fmt.Fprintln(os.Stderr, `Tip: run "winsnap list" to see open windows, or lower --threshold for a looser match.`)
			}
		}
		return err
	}

	if jsonOut {
		return output.PrintJSON(res)
	}
	fmt.Fprintf(os.Stderr, "Captured %q\n", res.Window)
	if res.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", res.Warning)
	}
	if autoPath {
		fmt.Fprintln(os.Stderr, "Saved to the temp directory; pass -o to choose a destination.")
	}
	fmt.Println(res.Path)
	return nil
}

// capturePipeline runs the full flow: merge flags over config, enumerate,
// resolve, capture, post-process, save. The bool reports whether the
// auto-generated destination was used.
func capturePipeline(cmd *cobra.Command, args []string) (*output.CaptureResult, bool, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return nil, false, fmt.Errorf(`missing window title (run "winsnap list" to see open windows)`)
	}

	threshold := cfg.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetInt("threshold")
	}
	if threshold < 0 || threshold > 100 {
		return nil, false, fmt.Errorf("threshold must be between 0 and 100, got %d", threshold)
	}

	outPath, _ := cmd.Flags().GetString("output")

	format := cfg.Format
	if cmd.Flags().Changed("format") {
		raw, _ := cmd.Flags().GetString("format")
		parsed, err := imaging.ParseFormat(raw)
		if err != nil {
			return nil, false, err
		}
		format = parsed
	} else if inferred := imaging.FormatFromPath(outPath); inferred != "" {
		format = inferred
	}

	quality := cfg.Quality
	if cmd.Flags().Changed("quality") {
		quality, _ = cmd.Flags().GetInt("quality")
	}
	if quality < 1 || quality > 100 {
		return nil, false, fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	scale := cfg.Scale
	if cmd.Flags().Changed("scale") {
		scale, _ = cmd.Flags().GetFloat64("scale")
	}
	if scale <= 0 || scale > 1 {
		return nil, false, fmt.Errorf("scale must be in (0, 1], got %g", scale)
	}

	methodName := cfg.Method
	if cmd.Flags().Changed("method") {
		methodName, _ = cmd.Flags().GetString("method")
	}
	method, err := platform.ParseCaptureMethod(methodName)
	if err != nil {
		return nil, false, err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return nil, false, err
	}

	windows, err := provider.Lister.ListWindows()
	if err != nil {
		return nil, false, err
	}
	log.Printf("catalog: %d windows", len(windows))

	m := match.Resolve(query, threshold, windows)
	if m == nil {
		return nil, false, &NoMatchError{Query: query, Threshold: threshold}
	}
	log.Printf("match: %q score %d", m.Title, m.Score)

	snap, err := provider.Capturer.CaptureWindow(m.Window, platform.CaptureOptions{Method: method})
	if err != nil {
		return nil, false, err
	}

	img := snap.Image
	warning := ""
	if imaging.IsBlank(img) {
		warning = "captured image is uniformly blank; the window may render on the GPU (try --method screen)"
	}
	if scale != 1 {
		img = imaging.Scale(img, scale)
	}

	autoPath := outPath == ""
	if autoPath {
		outPath = storage.DefaultPath(cfg.OutputDir, format, time.Now())
	}
	saved, err := storage.Save(img, outPath, format, quality)
	if err != nil {
		return nil, false, err
	}
	log.Printf("saved: %s", saved)

	return &output.CaptureResult{
		Path:    saved,
		Window:  m.Title,
		BBox:    snap.Bounds,
		Warning: warning,
	}, autoPath, nil
}
