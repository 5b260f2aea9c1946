// Package ordmap provides two small ordered-map wrappers: a bigram
// frequency map and a phonetic-code bucket map. Both are thin domain
// types over github.com/wk8/go-ordered-map/v2, which gives
// O(1)-amortized point lookup plus deterministic insertion-order iteration
// — handy for the benchmark harness dump and for reproducible tests,
// without committing to a from-scratch balanced tree the way pkg/tst does
// for the unigram index.
package ordmap

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BigramMap maps an ordered word pair "w1 w2" to its observed frequency.
type BigramMap struct {
	m *orderedmap.OrderedMap[string, uint32]
}

// NewBigramMap returns an empty bigram map.
func NewBigramMap() *BigramMap {
	return &BigramMap{m: orderedmap.New[string, uint32]()}
}

// bigramKey joins two words into the canonical "w1 w2" key a bigram
// corpus line is keyed by.
func bigramKey(w1, w2 string) string {
	return w1 + " " + w2
}

// Insert records the frequency of the ordered pair (w1, w2), overwriting
// any prior value.
func (b *BigramMap) Insert(w1, w2 string, count uint32) {
	b.m.Set(bigramKey(w1, w2), count)
}

// Count returns the frequency of the ordered pair (w1, w2), or 0 if it was
// never observed.
func (b *BigramMap) Count(w1, w2 string) uint32 {
	v, ok := b.m.Get(bigramKey(w1, w2))
	if !ok {
		return 0
	}
	return v
}

// Len returns the number of distinct pairs stored.
func (b *BigramMap) Len() int {
	return b.m.Len()
}

// Pairs returns every (w1, w2, count) triple in insertion order, mainly
// for the benchmark harness and for tests.
func (b *BigramMap) Pairs() []BigramEntry {
	entries := make([]BigramEntry, 0, b.m.Len())
	for pair := b.m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, BigramEntry{Key: pair.Key, Count: pair.Value})
	}
	return entries
}

// LeadingCount sums the frequency of every pair recorded with w1 as its
// leading word, regardless of the second word. pkg/spell uses this for
// the n=2 sense of IsKnown: "is this word attested as bigram context".
func (b *BigramMap) LeadingCount(w1 string) uint32 {
	prefix := w1 + " "
	var total uint32
	for pair := b.m.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, prefix) {
			total += pair.Value
		}
	}
	return total
}

// BigramEntry is one row of a bigram map, keyed by its "w1 w2" string.
type BigramEntry struct {
	Key   string
	Count uint32
}

// PhoneticBucket maps a Double-Metaphone (or Soundex) code to the ordered
// list of base words that share it.
type PhoneticBucket struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewPhoneticBucket returns an empty phonetic bucket map.
func NewPhoneticBucket() *PhoneticBucket {
	return &PhoneticBucket{m: orderedmap.New[string, []string]()}
}

// Add appends word to the list of words sharing code. Order of addition
// within a bucket is preserved.
func (p *PhoneticBucket) Add(code, word string) {
	existing, _ := p.m.Get(code)
	p.m.Set(code, append(existing, word))
}

// Words returns the words sharing code, or nil if the code is unknown.
func (p *PhoneticBucket) Words(code string) []string {
	words, _ := p.m.Get(code)
	return words
}

// Len returns the number of distinct codes stored.
func (p *PhoneticBucket) Len() int {
	return p.m.Len()
}
