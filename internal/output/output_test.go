package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// captureStdout runs fn while stdout is redirected to a pipe and returns
// what fn wrote.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintJSON_CaptureResult(t *testing.T) {
	result := CaptureResult{
		Path:   "C:\\Temp\\winsnap\\winsnap_20260823_141500.png",
		Window: "Notepad - notes.txt",
		BBox:   [4]int{100, 80, 900, 680},
	}

	got := captureStdout(t, func() error { return PrintJSON(result) })

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"path", "window", "bbox"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, got)
		}
	}
	if _, ok := decoded["warning"]; ok {
		t.Error("empty warning should be omitted")
	}
	if len(decoded) != 3 {
		t.Errorf("got %d keys, want exactly path, window, bbox", len(decoded))
	}

	bbox, ok := decoded["bbox"].([]interface{})
	if !ok || len(bbox) != 4 {
		t.Errorf("bbox should be a 4-element array, got %v", decoded["bbox"])
	}
}

func TestPrintJSON_Indented(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintJSON(CaptureResult{Path: "a", Window: "b"})
	})
	if !strings.Contains(got, "\n  \"") {
		t.Errorf("JSON should use two-space indentation, got:\n%s", got)
	}
}

func TestPrintJSON_NoHTMLEscaping(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintJSON(CaptureResult{Window: "a & b <c>"})
	})
	if strings.Contains(got, "\\u0026") || strings.Contains(got, "\\u003c") {
		t.Errorf("HTML escaping should be disabled, got:\n%s", got)
	}
}

func TestPrintJSON_WarningIncluded(t *testing.T) {
	got := captureStdout(t, func() error {
		return PrintJSON(CaptureResult{Path: "a", Window: "b", Warning: "captured image is uniformly blank"})
	})
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["warning"] != "captured image is uniformly blank" {
		t.Errorf("warning = %v, want the blank-capture warning", decoded["warning"])
	}
}

func TestPrintYAML(t *testing.T) {
	result := CaptureResult{
		Path:   "/tmp/winsnap/shot.png",
		Window: "Calculator",
		BBox:   [4]int{0, 0, 400, 600},
	}

	got := captureStdout(t, func() error { return PrintYAML(result) })

	if strings.Count(got, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", got)
	}

	var decoded CaptureResult
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Window != "Calculator" {
		t.Errorf("window: got %q, want %q", decoded.Window, "Calculator")
	}
	if decoded.BBox != [4]int{0, 0, 400, 600} {
		t.Errorf("bbox: got %v", decoded.BBox)
	}
}

func TestErrorResult_Schema(t *testing.T) {
	data, err := json.Marshal(ErrorResult{Error: "no window found matching \"xyz\""})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 1 {
		t.Errorf("got %d keys, want only error", len(m))
	}
	if _, ok := m["error"]; !ok {
		t.Error("missing error key")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"plain", FormatPlain},
		{"PLAIN", FormatPlain},
		{"yaml", FormatYAML},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	for _, s := range []string{"", "xml", "csv"} {
		if _, err := ParseFormat(s); err == nil {
			t.Errorf("ParseFormat(%q) should fail", s)
		}
	}
}

func TestPrint_DispatchesByFormat(t *testing.T) {
	result := CaptureResult{Path: "p", Window: "w"}

	asJSON := captureStdout(t, func() error { return Print(result, FormatJSON) })
	if !strings.HasPrefix(strings.TrimSpace(asJSON), "{") {
		t.Errorf("FormatJSON should emit JSON, got:\n%s", asJSON)
	}

	asYAML := captureStdout(t, func() error { return Print(result, FormatYAML) })
	if strings.HasPrefix(strings.TrimSpace(asYAML), "{") {
		t.Errorf("FormatYAML should emit YAML, got:\n%s", asYAML)
	}

	if err := Print(result, FormatPlain); err == nil {
		t.Error("Print with plain format should fail; plain output is command-specific")
	}
}
