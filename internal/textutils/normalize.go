// Package textutils provides text canonicalization helpers used before any
// string comparison in the matching pipeline.
package textutils

import (
	"strings"
)

// quoteReplacer strips ASCII quote characters and their Hebrew
// geresh/gershayim equivalents, which appear inconsistently in company and
// track names across clearinghouse exports.
var quoteReplacer = strings.NewReplacer(
	"'", "",
	`"`, "",
	"׳", "", // Hebrew geresh
	"״", "", // Hebrew gershayim
)

// Normalize canonicalizes a free-text string for comparison: lower-cases,
// strips quote characters, collapses whitespace runs to a single space and
// trims. It is total - any input yields a valid (possibly empty) result.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = quoteReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
