// Package output serializes command results to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatPlain Format = "plain"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPlain:
		return FormatPlain, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatPlain, fmt.Errorf("unsupported output format: %q (expected plain, yaml, or json)", s)
	}
}

// CaptureResult is the machine-readable record of a successful capture.
// BBox is [left, top, right, bottom] in screen coordinates at the moment
// of capture, which can differ from where the window sat at enumeration.
type CaptureResult struct {
	Path    string `yaml:"path"              json:"path"`
	Window  string `yaml:"window"            json:"window"`
	BBox    [4]int `yaml:"bbox"              json:"bbox"`
	Warning string `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// ErrorResult replaces CaptureResult on stdout when a JSON-mode run
// fails, so agents always receive parseable output.
type ErrorResult struct {
	Error string `yaml:"error" json:"error"`
}

// Print serializes v to stdout in the given structured format.
func Print(v interface{}, format Format) error {
	switch format {
	case FormatJSON:
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintJSON serializes v to stdout as indented JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
