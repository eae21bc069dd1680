package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winsnap/winsnap/internal/model"
	"github.com/winsnap/winsnap/internal/output"
	"github.com/winsnap/winsnap/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List capturable window titles",
	Long: `List the titles of windows that a capture could target, one per line.
Structured formats add each window's bounds; --displays enumerates the
attached monitors instead.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "Include untitled windows in structured output")
	listCmd.Flags().String("format", "plain", "Output format: plain, yaml, json")
	listCmd.Flags().Bool("displays", false, "List attached displays instead of windows")
}

func runList(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	if displays, _ := cmd.Flags().GetBool("displays"); displays {
		return printDisplays(format)
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	windows, err := provider.Lister.ListWindows()
	if err != nil {
		return err
	}

	if format == output.FormatPlain {
		printTitles(windows)
		return nil
	}

	// Structured output keeps enumeration order: frontmost window first.
	if all, _ := cmd.Flags().GetBool("all"); !all {
		windows = titledOnly(windows)
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows, format)
}

func titledOnly(windows []model.Window) []model.Window {
	kept := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		if !w.Untitled() {
			kept = append(kept, w)
		}
	}
	return kept
}

func printTitles(windows []model.Window) {
	titles := make([]string, 0, len(windows))
	for _, w := range windows {
		if w.Untitled() {
			continue
		}
		titles = append(titles, w.Title)
	}
	sort.Slice(titles, func(i, j int) bool {
		a, b := strings.ToLower(titles[i]), strings.ToLower(titles[j])
		if a == b {
			return titles[i] < titles[j]
		}
		return a < b
	})
	for _, title := range titles {
		fmt.Println(title)
	}
}

func printDisplays(format output.Format) error {
	displays := platform.Displays()
	if format == output.FormatPlain {
		for _, d := range displays {
			marker := ""
			if d.Primary {
				marker = " primary"
			}
			fmt.Printf("%d: %d,%d,%d,%d%s\n", d.Index, d.Bounds[0], d.Bounds[1], d.Bounds[2], d.Bounds[3], marker)
		}
		return nil
	}
	return output.Print(displays, format)
}
