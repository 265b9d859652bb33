package dash

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestCreator finds the known creator closest to a stale filter value,
// for a "did you mean" hint when a persisted or typed creator filter no
// longer matches anyone. A candidate qualifies when the edit distance is
// under 40% of the longer name; exact matches return false since nothing
// needs suggesting.
func SuggestCreator(creators []string, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, name := range creators {
		cand := strings.ToLower(name)
		if cand == q {
			return "", false
		}
		dist := levenshtein.ComputeDistance(cand, q)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = name, dist
		}
	}
	if best == "" {
		return "", false
	}
	maxlen := len(best)
	if len(q) > maxlen {
		maxlen = len(q)
	}
	if float64(bestDist)/float64(maxlen) >= 0.4 {
		return "", false
	}
	return best, true
}
