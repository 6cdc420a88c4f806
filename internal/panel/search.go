package panel

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/modelsweep/modelsweep/internal/session"
)

// BestMatchIndex finds the candidate a quick-search query most plausibly
// refers to: exact name, then name prefix, then substring, then fuzzy rank.
// Returns -1 when nothing matches. The result is used to jump the scroll
// offset; it never reorders or hides candidates, so index identity holds.
func BestMatchIndex(candidates []session.Candidate, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(candidates) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, cand := range candidates {
		if strings.EqualFold(cand.Name, trimmed) {
			return i
		}
	}
	for i, cand := range candidates {
		if strings.HasPrefix(strings.ToLower(cand.Name), lower) {
			return i
		}
	}
	for i, cand := range candidates {
		if strings.Contains(strings.ToLower(cand.Name), lower) {
			return i
		}
	}
	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(candidates) {
		return -1
	}
	return best.OriginalIndex
}

// JumpTo scrolls the session so the matched candidate is visible, clamped to
// the valid scroll range. Returns the matched index, or -1 for no match.
func JumpTo(sess *session.Session, query string, maxVisible int) int {
	if sess == nil {
		return -1
	}
	idx := BestMatchIndex(sess.Candidates, query)
	if idx < 0 {
		return -1
	}
	offset := idx
	if max := sess.MaxScroll(maxVisible); offset > max {
		offset = max
	}
	sess.ScrollOffset = offset
	return idx
}
