// Package match resolves a free-text query against window titles using
// fuzzy string similarity.
package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/winsnap/winsnap/internal/model"
)

// Score returns the similarity between query and title on a 0-100 scale.
//
// Scoring uses fuzzywuzzy's weighted ratio, which combines plain,
// partial-substring, and token-sort/token-set sub-scores. The weighting
// caps every inexact sub-score below 100, so a score of 100 means the two
// strings are equal after normalization (lowercasing, punctuation
// stripping). That property is what makes a threshold of 100 behave as
// exact-match-only.
func Score(query, title string) int {
	if strings.EqualFold(strings.TrimSpace(query), strings.TrimSpace(title)) {
		return 100
	}
	return fuzzy.WRatio(query, title)
}

// Resolve picks the single best window for query from the enumeration
// snapshot. Scores strictly below threshold are excluded outright; there is
// no best-effort fallback. Among windows clearing the threshold the highest
// score wins, and ties go to the earliest window in enumeration order so
// that repeated runs against the same catalog resolve identically.
//
// A title equal to the query (case-insensitive) beats any inexact
// candidate, even one whose normalized form also scores 100: "notepad"
// must resolve to a window titled "Notepad" rather than an earlier
// "notepad++".
//
// Untitled windows are never candidates. A nil result means no window
// cleared the threshold; callers report that as "no window found", not as
// an error.
func Resolve(query string, threshold int, windows []model.Window) *model.Match {
	var (
		best      *model.Match
		bestExact bool
	)
	for _, w := range windows {
		if w.Untitled() {
			continue
		}
		score := Score(query, w.Title)
		if score < threshold {
			continue
		}
		exact := strings.EqualFold(strings.TrimSpace(query), strings.TrimSpace(w.Title))
		switch {
		case best == nil:
		case exact && !bestExact:
		case exact == bestExact && score > best.Score:
		default:
			continue
		}
		best = &model.Match{Window: w, Score: score}
		bestExact = exact
	}
	return best
}
