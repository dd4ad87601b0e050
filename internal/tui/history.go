package tui

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// defaultHistorySize caps the number of remembered queries
const defaultHistorySize = 20

// History keeps the queries submitted during this session, most recent first.
// It is memory-only.
type History struct {
	entries []string
	limit   int
}

// NewHistory creates an empty history holding up to limit entries
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	return &History{limit: limit}
}

// Add records a query, moving an existing case-insensitive duplicate to the front
func (h *History) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	entries := []string{query}
	for _, e := range h.entries {
		if !strings.EqualFold(e, query) {
			entries = append(entries, e)
		}
	}
	if len(entries) > h.limit {
		entries = entries[:h.limit]
	}
	h.entries = entries
}

// Entries returns all remembered queries, most recent first
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Match returns remembered queries that fuzzy-match query, closest first.
// An empty query returns the full history.
func (h *History) Match(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return h.Entries()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, h.entries)
	if len(ranks) == 0 {
		return nil
	}
	// Stable so equal distances keep recency order
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		// Hide an exact repeat of what is already typed
		if strings.EqualFold(r.Target, query) {
			continue
		}
		out = append(out, r.Target)
	}
	return out
}
