package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "General Track", "general track"},
		{"collapses whitespace", "  קרן   פנסיה  ", "קרן פנסיה"},
		{"strips ascii quotes", `מסלול "כללי"`, "מסלול כללי"},
		{"strips apostrophe", "מגדל ג'נרל", "מגדל גנרל"},
		{"strips hebrew geresh", "ג׳נרל", "גנרל"},
		{"strips hebrew gershayim", "קה״ל", "קהל"},
		{"empty input", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"tabs and newlines", "a\tb\nc", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"General Track",
		`מסלול "כללי"`,
		"  spaced   out  ",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
