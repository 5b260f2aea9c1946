// Package phonetic adapts github.com/antzucaro/matchr's Double Metaphone,
// classic Soundex, and Levenshtein implementations to the domain shapes
// this module needs, rather than re-deriving the Lawrence Philips
// algorithm by hand. This package is a thin adapter: input validation and
// the Code struct shape are ours, the actual phonetic walk is matchr's.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Code is a Double Metaphone encoding: a primary code, and an optional
// secondary code when the word has a plausible alternate pronunciation
// (e.g. a Romance vs. Germanic reading of the same spelling).
type Code struct {
	Primary   string
	Secondary string
}

// HasSecondary reports whether the encoding produced a distinct secondary
// code.
func (c Code) HasSecondary() bool {
	return c.Secondary != "" && c.Secondary != c.Primary
}

// Encode returns the Double Metaphone encoding of word. An empty word
// yields the zero Code — treated as "no phonetic information" rather
// than an error.
func Encode(word string) Code {
	if word == "" {
		return Code{}
	}
	primary, secondary := matchr.DoubleMetaphone(word)
	return Code{Primary: primary, Secondary: secondary}
}

// Equal reports whether two words share any Double Metaphone code —
// either word's primary or secondary code matches the other's.
func Equal(a, b string) bool {
	ca, cb := Encode(a), Encode(b)
	if ca.Primary == "" || cb.Primary == "" {
		return false
	}
	codes := func(c Code) []string {
		out := []string{c.Primary}
		if c.HasSecondary() {
			out = append(out, c.Secondary)
		}
		return out
	}
	for _, x := range codes(ca) {
		for _, y := range codes(cb) {
			if x == y {
				return true
			}
		}
	}
	return false
}

// Soundex returns the classic four-character Russell Soundex code for
// word, uppercase first letter followed by three digits, zero-padded.
// Empty input yields the empty string.
func Soundex(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(matchr.Soundex(word))
}

// Levenshtein returns the edit distance between a and b, used by the
// ranker's phonetic fallback to pick the single closest word within a
// phonetic bucket.
func Levenshtein(a, b string) int {
	return matchr.Levenshtein(a, b)
}
