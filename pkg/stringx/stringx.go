// Package stringx holds small string predicates and transforms. Lengths
// are measured in grapheme clusters, the unit a reader perceives as one
// character, so "é" written as e + combining accent counts once.
package stringx

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTrailing is appended by Truncate when it shortens a string.
const DefaultTrailing = "..."

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank reports whether s has at least one non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Trimmed returns s without leading and trailing whitespace.
func Trimmed(s string) string {
	return strings.TrimSpace(s)
}

// NilIfEmpty returns nil for "" and a pointer to s otherwise.
// Whitespace-only strings are kept.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NilIfBlank returns nil when s is blank and a pointer to s otherwise.
func NilIfBlank(s string) *string {
	if IsBlank(s) {
		return nil
	}
	return &s
}

// Length returns the number of grapheme clusters in s.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncate shortens s to at most length characters, ending it with
// DefaultTrailing when something was cut.
func Truncate(s string, length int) string {
	return TruncateWith(s, length, DefaultTrailing)
}

// TruncateWith shortens s to at most length characters including trailing.
// When length leaves no room for trailing, the first length characters
// are returned without it.
func TruncateWith(s string, length int, trailing string) string {
	if length <= 0 {
		return ""
	}
	if Length(s) <= length {
		return s
	}

	keep := length - Length(trailing)
	if keep <= 0 {
		return prefix(s, length)
	}
	return prefix(s, keep) + trailing
}

// prefix returns the first n grapheme clusters of s.
func prefix(s string, n int) string {
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}

// RemoveAccents strips combining marks, turning "café" into "cafe".
func RemoveAccents(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return result, nil
}
