// Package rank turns a sequence of weighted editgen candidates into the
// final ordered suggestion list: filter by dictionary membership, score,
// stable-sort, truncate, falling back to a phonetic bucket lookup when
// nothing survives.
package rank

import (
	"sort"

	"github.com/corrigo-dev/corrigo/pkg/editgen"
	"github.com/corrigo-dev/corrigo/pkg/ordmap"
	"github.com/corrigo-dev/corrigo/pkg/phonetic"
)

// Counter looks up how often a candidate surface occurs in whatever
// frequency source the caller is ranking against — a unigram TST's Get,
// or a bigram map's Count curried to a fixed previous word.
type Counter func(surface string) uint32

// scored is one candidate that survived the dictionary filter, carrying
// the score it was ranked by and the order it first appeared in (for the
// stable tie-break on equal scores).
type scored struct {
	surface string
	score   float64
	order   int
}

// Rank applies the filter/score/sort/truncate pipeline to candidates,
// returning at most n surface strings. exclude drops any candidate equal
// to it before scoring — editgen's edit-2 composition can regenerate the
// original misspelling (delete then insert the same rune back), and a
// candidate list should never suggest the input as its own correction.
func Rank(candidates []editgen.Candidate, count Counter, n int, exclude string) []string {
	seen := make(map[string]int) // surface -> index into kept
	var kept []scored

	for _, c := range candidates {
		if c.Surface == exclude {
			continue
		}
		freq := count(c.Surface)
		if freq == 0 {
			continue
		}
		s := float64(freq) * c.Weight
		if idx, ok := seen[c.Surface]; ok {
			if s > kept[idx].score {
				kept[idx].score = s
			}
			continue
		}
		seen[c.Surface] = len(kept)
		kept = append(kept, scored{surface: c.Surface, score: s, order: len(kept)})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if n > len(kept) {
		n = len(kept)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = kept[i].surface
	}
	return out
}

// PhoneticFallback is the last resort: compute word's Double Metaphone
// code, look it up in bucket, and return the single bucket entry with
// minimum Levenshtein distance to word. Returns ("", false) if the
// bucket has no entry for either of word's codes.
func PhoneticFallback(word string, bucket *ordmap.PhoneticBucket) (string, bool) {
	code := phonetic.Encode(word)
	if code.Primary == "" {
		return "", false
	}

	candidates := bucket.Words(code.Primary)
	if code.HasSecondary() {
		candidates = append(candidates, bucket.Words(code.Secondary)...)
	}
	if len(candidates) == 0 {
		return "", false
	}

	best := candidates[0]
	bestDist := phonetic.Levenshtein(word, best)
	for _, c := range candidates[1:] {
		if d := phonetic.Levenshtein(word, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
