// Package search provides fuzzy name matching for the owner-scoped
// search indexes.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Rank matches query against names and returns the indices of matching
// entries ordered by descending relevance. Equal scores fall back to input
// order, so callers pass candidates newest-first to get newest-first
// tie-breaking. A blank query matches nothing.
func Rank(query string, names []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names)
	// fuzzy.Find leaves the order of equal scores unspecified; impose the
	// score-then-input-order ranking ourselves.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})

	indices := make([]int, 0, len(matches))
	for _, m := range matches {
		indices = append(indices, m.Index)
	}
	return indices
}
