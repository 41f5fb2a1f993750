package taxonomy

import (
	"strings"

	"eladk/pension-match/internal/models"
	"eladk/pension-match/internal/similarity"
	"eladk/pension-match/internal/textutils"
)

// DefaultThreshold is the minimum similarity score a candidate must reach to
// replace the raw input text. Callers may override it per call.
const DefaultThreshold = 0.5

// genericTrackTerms are the words that mark a track label as "the general
// track" when no candidate clears the threshold. Both the English and Hebrew
// spellings appear in clearinghouse exports.
var genericTrackTerms = []string{
	"general", "regular", "standard", "basic",
	"כללי", "רגיל", "בסיסי", "סטנדרטי",
}

// MatchCategory matches a free-text category label against the known
// categories. When no candidate clears the threshold the input is returned
// verbatim so the caller always has a displayable value.
func MatchCategory(input string, candidates []string, threshold float64) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if best, score := bestCandidate(input, candidates); score >= threshold {
		return best
	}
	return input
}

// MatchCompany matches a free-text company label against the known companies.
// Same fallback contract as MatchCategory.
func MatchCompany(input string, candidates []string, threshold float64) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if best, score := bestCandidate(input, candidates); score >= threshold {
		return best
	}
	return input
}

// MatchSubCategory matches a free-text track label against the known
// sub-categories. An empty input resolves to the general track default, as
// does an unmatched input that reads like a generic track name.
func MatchSubCategory(input string, candidates []string, threshold float64) string {
	if strings.TrimSpace(input) == "" {
		return models.DefaultTrackName
	}
	if best, score := bestCandidate(input, candidates); score >= threshold {
		return best
	}
	normalized := textutils.Normalize(input)
	for _, term := range genericTrackTerms {
		if strings.Contains(normalized, term) {
			return models.DefaultTrackName
		}
	}
	return input
}

// MatchScore returns the best-scoring candidate and its score without
// applying any threshold. Ties keep the earliest candidate.
func MatchScore(input string, candidates []string) (string, float64) {
	return bestCandidate(input, candidates)
}

func bestCandidate(input string, candidates []string) (string, float64) {
	var best string
	var bestScore float64 = -1
	for _, c := range candidates {
		if score := similarity.Score(input, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}
