// Package matching decides whether two normalized skill keys refer to the
// same competency, and at what confidence.
package matching

import (
	"github.com/agext/levenshtein"

	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

const (
	// DefaultFuzzyThreshold is the minimum similarity for a fuzzy match.
	DefaultFuzzyThreshold = 0.8

	exactConfidence   = 1.0
	synonymConfidence = 0.9
)

// Result describes a successful match between two keys.
type Result struct {
	Type       types.MatchType
	Confidence float64 // 0.0-1.0; fuzzy matches carry the raw similarity
}

// Matcher matches normalized keys with a tiered exact -> synonym -> fuzzy
// policy. Matching is category-agnostic; the first applicable tier wins.
type Matcher struct {
	fuzzyThreshold float64
}

// NewMatcher creates a Matcher with the given fuzzy similarity threshold.
// Thresholds outside (0, 1] fall back to DefaultFuzzyThreshold.
func NewMatcher(fuzzyThreshold float64) *Matcher {
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{fuzzyThreshold: fuzzyThreshold}
}

// Match attempts to match two keys. The second return is false when no tier
// applies. Unknown sentinel keys never match. Pure computation; never fails.
func (m *Matcher) Match(a, b normalize.Key) (Result, bool) {
	if a.IsUnknown() || b.IsUnknown() {
		return Result{}, false
	}

	if a.Name == b.Name {
		return Result{Type: types.MatchExact, Confidence: exactConfidence}, true
	}

	if a.Canonical == b.Canonical {
		return Result{Type: types.MatchSynonym, Confidence: synonymConfidence}, true
	}

	// Normalized Levenshtein ratio; the similarity itself is the confidence,
	// so fuzzy confidence is always >= the threshold.
	similarity := levenshtein.Similarity(a.Name, b.Name, nil)
	if similarity >= m.fuzzyThreshold {
		return Result{Type: types.MatchFuzzy, Confidence: similarity}, true
	}

	return Result{}, false
}
