package match

import (
	"testing"

	"github.com/winsnap/winsnap/internal/model"
)

func catalog(titles ...string) []model.Window {
	windows := make([]model.Window, len(titles))
	for i, title := range titles {
		windows[i] = model.Window{
			Title:  title,
			Bounds: [4]int{0, 0, 800, 600},
			Handle: uintptr(i + 1),
		}
	}
	return windows
}

func TestScoreExactTitle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		title string
	}{
		{"identical", "Notepad", "Notepad"},
		{"case insensitive", "notepad", "Notepad"},
		{"upper query", "NOTEPAD", "notepad"},
		{"surrounding space", "  Notepad  ", "Notepad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, tt.title); got != 100 {
				t.Errorf("Score(%q, %q) = %d, want 100", tt.query, tt.title, got)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	tests := []struct {
		query string
		title string
	}{
		{"Notepad", "Notepad - notes.txt"},
		{"VS Code", "Visual Studio Code"},
		{"terminal", "Calculator"},
		{"x", "Untitled - Paint"},
		{"", "Notepad"},
	}
	for _, tt := range tests {
		got := Score(tt.query, tt.title)
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %d, want within [0, 100]", tt.query, tt.title, got)
		}
	}
}

func TestScoreEmptyQuery(t *testing.T) {
	if got := Score("", "Notepad"); got != 0 {
		t.Errorf("Score(\"\", \"Notepad\") = %d, want 0", got)
	}
}

func TestScorePartialTitle(t *testing.T) {
	// A prefix of a longer title scores high but never 100.
	got := Score("Notepad", "Notepad - notes.txt")
	if got < 70 {
		t.Errorf("Score(\"Notepad\", \"Notepad - notes.txt\") = %d, want >= 70", got)
	}
	if got == 100 {
		t.Errorf("Score(\"Notepad\", \"Notepad - notes.txt\") = 100, want < 100 for inexact title")
	}
}

func TestScoreAbbreviation(t *testing.T) {
	if got := Score("VS Code", "Visual Studio Code"); got < 60 {
		t.Errorf("Score(\"VS Code\", \"Visual Studio Code\") = %d, want >= 60", got)
	}
}

func TestResolveExactMatch(t *testing.T) {
	windows := catalog("Visual Studio Code", "Notepad", "Calculator")
	m := Resolve("notepad", 70, windows)
	if m == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	if m.Title != "Notepad" {
		t.Errorf("resolved title = %q, want %q", m.Title, "Notepad")
	}
	if m.Score != 100 {
		t.Errorf("resolved score = %d, want 100", m.Score)
	}
}

func TestResolveExactBeatsEarlierInexact(t *testing.T) {
	// "notepad++" normalizes to "notepad" and also scores 100, but the
	// window whose title literally equals the query must win.
	windows := catalog("notepad++", "Notepad")
	m := Resolve("notepad", 70, windows)
	if m == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	if m.Title != "Notepad" {
		t.Errorf("resolved title = %q, want %q", m.Title, "Notepad")
	}
}

func TestResolveFuzzyMatch(t *testing.T) {
	windows := catalog("Notepad - notes.txt", "Calculator", "Visual Studio Code")
	m := Resolve("VS Code", 60, windows)
	if m == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	if m.Title != "Visual Studio Code" {
		t.Errorf("resolved title = %q, want %q", m.Title, "Visual Studio Code")
	}
	if m.Score < 60 {
		t.Errorf("resolved score = %d, want >= 60", m.Score)
	}
}

func TestResolveThresholdIsHardCutoff(t *testing.T) {
	windows := catalog("Notepad", "Calculator", "Visual Studio Code")
	tests := []struct {
		name      string
		query     string
		threshold int
	}{
		{"no similarity", "zzzzqqqq", 70},
		{"near miss", "Notepad - notes.txt", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := Resolve(tt.query, tt.threshold, windows); m != nil {
				t.Errorf("Resolve(%q, %d) = %q score %d, want nil",
					tt.query, tt.threshold, m.Title, m.Score)
			}
		})
	}
}

func TestResolveScoreClearsThreshold(t *testing.T) {
	windows := catalog("Notepad", "Notepad - notes.txt", "Calculator")
	for _, threshold := range []int{0, 40, 70, 90, 100} {
		m := Resolve("Notepad", threshold, windows)
		if m == nil {
			t.Fatalf("Resolve threshold %d returned nil, want match", threshold)
		}
		if m.Score < threshold {
			t.Errorf("threshold %d: resolved score %d below threshold", threshold, m.Score)
		}
	}
}

func TestResolveThresholdZeroMatchesAnything(t *testing.T) {
	windows := catalog("Calculator", "Paint")
	m := Resolve("zzzzqqqq", 0, windows)
	if m == nil {
		t.Fatal("Resolve with threshold 0 returned nil for non-empty catalog")
	}
}

func TestResolveThresholdHundredOnlyExact(t *testing.T) {
	windows := catalog("Notepad - notes.txt")
	if m := Resolve("Notepad", 100, windows); m != nil {
		t.Errorf("Resolve at threshold 100 matched inexact title %q score %d, want nil",
			m.Title, m.Score)
	}

	windows = catalog("Notepad - notes.txt", "Notepad")
	m := Resolve("notepad", 100, windows)
	if m == nil {
		t.Fatal("Resolve at threshold 100 missed exact title")
	}
	if m.Title != "Notepad" {
		t.Errorf("resolved title = %q, want %q", m.Title, "Notepad")
	}
}

func TestResolveEmptyCatalog(t *testing.T) {
	if m := Resolve("Notepad", 0, nil); m != nil {
		t.Errorf("Resolve on empty catalog = %q, want nil", m.Title)
	}
	if m := Resolve("Notepad", 0, []model.Window{}); m != nil {
		t.Errorf("Resolve on empty slice = %q, want nil", m.Title)
	}
}

func TestResolveSkipsUntitled(t *testing.T) {
	windows := []model.Window{
		{Title: "", Bounds: [4]int{0, 0, 100, 100}, Handle: 1},
		{Title: "   ", Bounds: [4]int{0, 0, 100, 100}, Handle: 2},
		{Title: "Notepad", Bounds: [4]int{0, 0, 800, 600}, Handle: 3},
	}
	m := Resolve("notepad", 70, windows)
	if m == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	if m.Handle != 3 {
		t.Errorf("resolved handle = %d, want 3", m.Handle)
	}

	// A catalog of only untitled windows has no candidates at all.
	if m := Resolve("anything", 0, windows[:2]); m != nil {
		t.Errorf("Resolve over untitled windows = %q, want nil", m.Title)
	}
}

func TestResolveDeterministic(t *testing.T) {
	windows := catalog("Notepad", "Calculator", "Notepad", "Visual Studio Code")
	first := Resolve("notepad", 70, windows)
	if first == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	for i := 0; i < 10; i++ {
		m := Resolve("notepad", 70, windows)
		if m == nil {
			t.Fatal("Resolve returned nil on repeat, want match")
		}
		if m.Handle != first.Handle || m.Score != first.Score {
			t.Fatalf("run %d resolved handle %d score %d, first run handle %d score %d",
				i, m.Handle, m.Score, first.Handle, first.Score)
		}
	}
	// Duplicate titles tie on score; the earlier window wins.
	if first.Handle != 1 {
		t.Errorf("duplicate titles resolved to handle %d, want first-enumerated handle 1", first.Handle)
	}
}

func TestResolveHigherScoreWins(t *testing.T) {
	windows := catalog("Visual Studio Code", "Code - OSS")
	m := Resolve("Visual Studio Code", 50, windows)
	if m == nil {
		t.Fatal("Resolve returned nil, want match")
	}
	if m.Title != "Visual Studio Code" {
		t.Errorf("resolved title = %q, want %q", m.Title, "Visual Studio Code")
	}
}
