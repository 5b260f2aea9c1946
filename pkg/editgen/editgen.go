// Package editgen generates weighted edit-distance candidates for a
// misspelled word: delete, transpose, replace and insert over the
// alphabet Σ = {a…z,'-',' '}, each candidate carrying a weight rather
// than a plain distance.
package editgen

import (
	"github.com/corrigo-dev/corrigo/pkg/phonetic"
)

// sigma is the edit alphabet: the 26 lowercase letters plus hyphen and
// space. pkg/tokenize only emits a–z words, so hyphen and space go beyond
// the tokenizer's output alphabet.
const sigma = "abcdefghijklmnopqrstuvwxyz- "

// Candidate is one generated surface form plus the weight the generator
// assigned it. Weight is not a distance: it is the ranking input, already
// folding in the edit-kind multiplier, the leading-position discount and
// the phonetic-homophone boost.
type Candidate struct {
	Surface string
	Weight  float64
}

// Edits1 returns every edit-distance-1 candidate for word, in the fixed
// split-position, then delete/transpose/replace/insert order. Candidates
// are not deduplicated here — pkg/rank dedups by dictionary membership
// once surfaces are looked up.
func Edits1(word string) []Candidate {
	return expand(word, word, 1)
}

// EditsPlus1 expands every edit-1 candidate of word by one further edit,
// producing the edit-distance-2 set. This pass is meant to run only when
// the edit-1 pass yields nothing the ranker can use, so callers gate
// invocation themselves rather than editgen computing both passes
// unconditionally.
func EditsPlus1(word string) []Candidate {
	var out []Candidate
	for _, c := range Edits1(word) {
		out = append(out, expand(c.Surface, word, 2)...)
	}
	return out
}

// expand runs one edit pass over cur, scoring every candidate against
// original for the phonetic-homophone boost and against distance for the
// base 1/d weight the formula starts from.
func expand(cur, original string, distance int) []Candidate {
	n := len(cur)
	base := 1.0 / float64(distance)
	var out []Candidate

	weigh := func(surface string, leading bool, mult float64) Candidate {
		w := base * mult
		if leading {
			w *= 0.001
		}
		if phonetic.Equal(surface, original) {
			w *= 20
		}
		return Candidate{Surface: surface, Weight: w}
	}

	for i := 0; i <= n; i++ {
		leading := i == 0
		a, b := cur[:i], cur[i:]

		if i < n {
			// delete: drop b[0]
			out = append(out, weigh(a+b[1:], leading, 0.1))

			// transpose: swap b[0] and b[1], only when they differ
			if i < n-1 && b[0] != b[1] {
				swapped := a + string(b[1]) + string(b[0]) + b[2:]
				out = append(out, weigh(swapped, leading, 1.0))
			}

			// replace: substitute b[0] with every other symbol in Σ
			for _, c := range sigma {
				if byte(c) == b[0] {
					continue
				}
				out = append(out, weigh(a+string(c)+b[1:], leading, 0.1))
			}
		}

		// insert: splice every symbol in Σ at this split position
		for _, c := range sigma {
			out = append(out, weigh(a+string(c)+b, leading, 10.0))
		}
	}

	return out
}

// Len reports |Σ|, the edit alphabet's size. Exposed so callers (and
// tests) can derive expected candidate counts from the alphabet actually
// in force here rather than hardcoding a figure computed for a bare
// 26-letter alphabet.
func Len() int {
	return len(sigma)
}

// hasDuplicateAdjacent reports whether word contains any pair of equal
// adjacent runes, the one case where Edits1 emits fewer than n-1
// transpositions (the transpose rule skips a swap that would be a
// no-op).
func hasDuplicateAdjacent(word string) bool {
	for i := 0; i+1 < len(word); i++ {
		if word[i] == word[i+1] {
			return true
		}
	}
	return false
}
