// Package spell is the facade of the spelling oracle: it owns the
// unigram TST, the optional bigram map and phonetic bucket map, and
// exposes IsKnown/Suggest/Close over them. Required and optional corpora
// get different failure handling: a missing unigram file aborts
// construction, a missing optional corpus simply leaves that index
// empty.
package spell

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/pkg/editgen"
	"github.com/corrigo-dev/corrigo/pkg/hotcache"
	"github.com/corrigo-dev/corrigo/pkg/ordmap"
	"github.com/corrigo-dev/corrigo/pkg/rank"
	"github.com/corrigo-dev/corrigo/pkg/tst"
)

// Spell is a loaded spelling oracle: a required unigram frequency index
// plus whichever optional bigram and phonetic indices were requested and
// found.
type Spell struct {
	unigram  *tst.Tree
	bigram   *ordmap.BigramMap
	phonetic *ordmap.PhoneticBucket
	hot      *hotcache.Cache
}

type options struct {
	whitelistPath string
	bigramPath    string
	soundexPath   string
	hotCacheSize  int
}

// Option configures optional corpora for New.
type Option func(*options)

// WithWhitelist inserts every word in path with default count 1 before
// the unigram file is loaded, so the unigram file's own counts override
// the whitelist default whenever a word appears in both. Unlike the
// bigram and soundex corpora, a whitelist path that does not exist is an
// error: the caller asked for it by name.
func WithWhitelist(path string) Option {
	return func(o *options) { o.whitelistPath = path }
}

// WithBigram loads a bigram frequency corpus from path if it exists. A
// missing path is not an error — the bigram index is simply left empty.
func WithBigram(path string) Option {
	return func(o *options) { o.bigramPath = path }
}

// WithSoundex loads a phonetic-code bucket corpus from path if it
// exists. A missing path is not an error — the phonetic index is simply
// left empty.
func WithSoundex(path string) Option {
	return func(o *options) { o.soundexPath = path }
}

// WithHotCache bounds a cache of maxWords recent misspelling-to-suggestion
// lookups in front of Suggest's ranking pipeline, for corrigo serve's
// repeated-misspelling traffic. Zero (the default) disables the cache.
func WithHotCache(maxWords int) Option {
	return func(o *options) { o.hotCacheSize = maxWords }
}

// New builds a Spell from a required unigram frequency file plus
// whichever optional corpora opts request.
func New(unigramPath string, opts ...Option) (*Spell, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Spell{unigram: tst.New()}

	if o.whitelistPath != "" {
		if err := loadWhitelist(s.unigram, o.whitelistPath); err != nil {
			return nil, err
		}
	}

	if err := loadUnigram(s.unigram, unigramPath); err != nil {
		return nil, err
	}

	if o.bigramPath != "" {
		if _, err := os.Stat(o.bigramPath); err == nil {
			s.bigram = ordmap.NewBigramMap()
			if err := loadBigram(s.bigram, o.bigramPath); err != nil {
				return nil, err
			}
		} else {
			log.Debug("optional bigram corpus not found, skipping", "path", o.bigramPath)
		}
	}

	if o.soundexPath != "" {
		if _, err := os.Stat(o.soundexPath); err == nil {
			s.phonetic = ordmap.NewPhoneticBucket()
			if err := loadSoundex(s.phonetic, o.soundexPath); err != nil {
				return nil, err
			}
		} else {
			log.Debug("optional phonetic corpus not found, skipping", "path", o.soundexPath)
		}
	}

	if o.hotCacheSize > 0 {
		s.hot = hotcache.New(o.hotCacheSize)
	}

	return s, nil
}

// IsKnown reports how well-attested word is in the chosen index: for
// ngram=1, its raw unigram frequency; for ngram=2, the total bigram
// frequency recorded with word as the leading token — "is word attested
// as bigram context", which is what pkg/bigramspell needs before
// trusting a bigram count. Any other ngram value returns 0. A word with
// no bigram index loaded always reports 0 for ngram=2.
func (s *Spell) IsKnown(word string, ngram int) uint32 {
	if s.unigram == nil {
		return 0
	}
	lw := strings.ToLower(word)
	switch ngram {
	case 1:
		return s.unigram.Get(lw)
	case 2:
		if s.bigram == nil {
			return 0
		}
		return s.bigram.LeadingCount(lw)
	default:
		return 0
	}
}

// Suggest ranks replacement candidates for word: edit-1 candidates
// ranked against the unigram index; if none survive, edit-2 candidates;
// if still none, a singleton from the phonetic fallback. word is
// lower-cased for lookup only. Suggest leaves the indices untouched; the
// only state it changes is the hot cache, when WithHotCache enabled one.
func (s *Spell) Suggest(word string, topK int) []string {
	if s.unigram == nil {
		return nil
	}
	lw := strings.ToLower(word)

	if s.hot != nil {
		if cached, ok := s.hot.Get(lw); ok {
			if topK < len(cached) {
				return cached[:topK]
			}
			return cached
		}
	}

	counter := func(surface string) uint32 { return s.unigram.Get(surface) }

	result := rank.Rank(editgen.Edits1(lw), counter, topK, lw)
	if len(result) == 0 {
		result = rank.Rank(editgen.EditsPlus1(lw), counter, topK, lw)
	}
	if len(result) == 0 && s.phonetic != nil {
		if best, ok := rank.PhoneticFallback(lw, s.phonetic); ok {
			result = []string{best}
		}
	}

	if s.hot != nil && len(result) > 0 {
		s.hot.Put(lw, result)
	}
	return result
}

// BigramCount returns how often the ordered pair (w1, w2) was observed,
// or 0 if no bigram index was loaded. pkg/bigramspell uses this to score
// candidate replacements against their surrounding context.
func (s *Spell) BigramCount(w1, w2 string) uint32 {
	if s.bigram == nil {
		return 0
	}
	return s.bigram.Count(strings.ToLower(w1), strings.ToLower(w2))
}

// HotCacheStats reports the hot cache's entry count and lifetime hit/miss
// counters, or nil if WithHotCache was never requested.
func (s *Spell) HotCacheStats() map[string]int64 {
	if s.hot == nil {
		return nil
	}
	return s.hot.Stats()
}

// Close releases the indices a Spell holds. Go's garbage collector
// already reclaims them once the last reference drops; Close exists so
// callers following the source's explicit destroy(spell) convention have
// a place to put that call.
func (s *Spell) Close() {
	s.unigram = nil
	s.bigram = nil
	s.phonetic = nil
	s.hot = nil
}

func loadUnigram(t *tst.Tree, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	loaded := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		word, count, err := parseCountLine(line)
		if err != nil {
			return &MalformedCorpusError{Path: path, Line: lineNo, Text: line}
		}
		t.Insert(word, count)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	log.Debugf("loaded %d unigram entries from %s", loaded, path)
	return nil
}

func loadWhitelist(t *tst.Tree, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		t.Insert(strings.ToLower(word), 1)
	}
	return scanner.Err()
}

func loadBigram(b *ordmap.BigramMap, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		pair, count, err := parseCountLine(line)
		if err != nil {
			return &MalformedCorpusError{Path: path, Line: lineNo, Text: line}
		}
		words := strings.SplitN(pair, " ", 2)
		if len(words) != 2 {
			return &MalformedCorpusError{Path: path, Line: lineNo, Text: line}
		}
		b.Insert(words[0], words[1], count)
	}
	return scanner.Err()
}

func loadSoundex(p *ordmap.PhoneticBucket, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return &MalformedCorpusError{Path: path, Line: lineNo, Text: line}
		}
		p.Add(fields[0], fields[1])
	}
	return scanner.Err()
}

// parseCountLine splits a "key\tcount" line and parses count as an
// unsigned integer. key may itself contain spaces (the bigram corpus's
// "w1 w2" pairing), just not a literal tab.
func parseCountLine(line string) (key string, count uint32, err error) {
	fields := strings.SplitN(line, "\t", 2)
	if len(fields) != 2 {
		return "", 0, errMalformed
	}
	n, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return "", 0, errMalformed
	}
	return fields[0], uint32(n), nil
}
