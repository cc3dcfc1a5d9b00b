package utils

import (
	"strings"
	"unicode"
)

// ContainsIgnoreCase checks if string contains substring case-insensitively
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SplitWords lowercases a text and splits it into alphanumeric word runs,
// dropping punctuation and separators.
func SplitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// LastWord returns the trailing alphanumeric word of a query and the byte
// offset it starts at. Used for completing the word under the cursor.
func LastWord(s string) (string, int) {
	start := len(s)
	for start > 0 {
		r := rune(s[start-1])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		start--
	}
	return s[start:], start
}
