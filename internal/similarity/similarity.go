// Package similarity scores how close a messy free-text label is to a
// candidate taxonomy value. Scores are in [0,1] and are not symmetric:
// the substring checks are directional.
package similarity

import (
	"strings"
	"unicode"

	"eladk/pension-match/internal/textutils"

	"github.com/agnivade/levenshtein"
)

// Score thresholds and weights for the scoring cascade.
const (
	scoreExact          = 1.0
	scoreTargetContains = 0.9
	scoreInputContains  = 0.85
	editSimThreshold    = 0.75
	wordWeight          = 0.6
	charWeight          = 0.4
)

// Score computes a [0,1] similarity between an arbitrary input string and a
// candidate target. The checks run in order and the first applicable one
// short-circuits:
//
//  1. exact match after normalization
//  2. substring containment (directional)
//  3. numeric (code-like) edit-distance comparison when both strings start
//     with a digit
//  4. blended word-overlap and whole-string edit-distance score
func Score(input, target string) float64 {
	a := textutils.Normalize(input)
	b := textutils.Normalize(target)

	if a == b {
		return scoreExact
	}
	if a == "" || b == "" {
		return 0
	}

	if strings.Contains(b, a) {
		return scoreTargetContains
	}
	if strings.Contains(a, b) {
		return scoreInputContains
	}

	// Code-like tokens get their own band: near-identical codes score high,
	// everything else is penalized harder than textual near-misses since a
	// one-digit difference is a different product.
	if startsWithDigit(a) && startsWithDigit(b) {
		sim := editSimilarity(a, b)
		if sim >= editSimThreshold {
			return 0.8 + sim*0.2
		}
		return sim * 0.7
	}

	wordScore := wordOverlapScore(a, b)
	charScore := editSimilarity(a, b)
	return wordScore*wordWeight + charScore*charWeight
}

// wordOverlapScore scores per-word matches between the two strings. Each
// input word contributes at most one rule: an exact target word (1.0), a
// substring containment in either direction (0.7), or an edit-distance
// similarity above the threshold (the similarity itself). The sum is
// normalized by the longer word count so extra words dilute the score.
func wordOverlapScore(a, b string) float64 {
	aWords := strings.Fields(a)
	bWords := strings.Fields(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	var sum float64
	for _, aw := range aWords {
		sum += bestWordContribution(aw, bWords)
	}

	denom := len(aWords)
	if len(bWords) > denom {
		denom = len(bWords)
	}
	return sum / float64(denom)
}

func bestWordContribution(word string, candidates []string) float64 {
	for _, c := range candidates {
		if word == c {
			return 1.0
		}
	}
	for _, c := range candidates {
		if strings.Contains(c, word) || strings.Contains(word, c) {
			return 0.7
		}
	}
	for _, c := range candidates {
		if sim := editSimilarity(word, c); sim >= editSimThreshold {
			return sim
		}
	}
	return 0
}

// editSimilarity is the normalized Levenshtein similarity
// 1 - distance/max(len(a), len(b)), computed over runes.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(max)
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
