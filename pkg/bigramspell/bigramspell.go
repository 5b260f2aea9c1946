// Package bigramspell picks a single best replacement for a misspelling
// using the words around it, rather than ranking a word in isolation the
// way pkg/spell.Suggest does on its own. It runs a two-state (S0/S1)
// machine over a pkg/tokenize stream with one-token lookahead.
package bigramspell

import (
	"github.com/corrigo-dev/corrigo/pkg/spell"
	"github.com/corrigo-dev/corrigo/pkg/tokenize"
)

// Correction is one misspelling paired with the replacement the
// disambiguator chose for it.
type Correction struct {
	Original   string
	Suggestion string
}

// String renders a Correction as "original: suggestion".
func (c Correction) String() string {
	return c.Original + ": " + c.Suggestion
}

// state is the disambiguator's two-state machine: s0 has no usable
// context, s1 carries the previous token as context for the next one.
type state int

const (
	s0 state = iota
	s1
)

// Disambiguator replays a token stream through a Spell, resolving each
// misspelling to a single best replacement using bigram context where
// one is available.
type Disambiguator struct {
	sp   *spell.Spell
	topK int
}

// New returns a Disambiguator that asks sp for at most topK unigram
// candidates per misspelling before scoring them against context.
func New(sp *spell.Spell, topK int) *Disambiguator {
	return &Disambiguator{sp: sp, topK: topK}
}

// Run drains tok, returning one Correction per misspelling it resolved.
// Known words never appear in the output — callers that want the full
// corrected text reassemble it themselves from the original stream.
func (d *Disambiguator) Run(tok *tokenize.Tokenizer) []Correction {
	var out []Correction
	st := s0
	var prev string

	cur, ok := tok.Next()
	for ok {
		if d.sp.IsKnown(cur.Word, 1) > 0 {
			st, prev = d.advanceKnown(cur)
			cur, ok = tok.Next()
			continue
		}

		nxt, nxtOk := tok.Next()
		if !nxtOk {
			ucur := d.sp.Suggest(cur.Word, d.topK)
			var best string
			if st == s1 {
				best = argmaxSingle(ucur, func(c string) uint32 { return d.sp.BigramCount(prev, c) })
			} else {
				best = firstOf(ucur)
			}
			if best != "" {
				out = append(out, Correction{cur.Word, best})
			}
			break
		}

		nxtKnown := d.sp.IsKnown(nxt.Word, 1) > 0

		switch {
		case nxtKnown:
			ucur := d.sp.Suggest(cur.Word, d.topK)
			var best string
			if st == s1 {
				best = argmaxSingle(ucur, func(c string) uint32 {
					return d.sp.BigramCount(prev, c) * d.sp.BigramCount(c, nxt.Word)
				})
			} else {
				best = argmaxSingle(ucur, func(c string) uint32 { return d.sp.BigramCount(c, nxt.Word) })
			}
			if best != "" {
				out = append(out, Correction{cur.Word, best})
			}
			if cur.EOS {
				st, prev = s0, ""
			} else {
				st, prev = s1, nxt.Word
			}
			cur, ok = tok.Next()

		default: // nxt is also a misspelling
			ucur := d.sp.Suggest(cur.Word, d.topK)
			unxt := d.sp.Suggest(nxt.Word, d.topK)

			var bestCur, bestNxt string
			if st == s1 {
				// Each unknown is scored against the same prior context
				// independently — neither correction feeds the other.
				bestCur = argmaxSingle(ucur, func(c string) uint32 { return d.sp.BigramCount(prev, c) })
				bestNxt = argmaxSingle(unxt, func(c string) uint32 { return d.sp.BigramCount(prev, c) })
			} else {
				bestCur, bestNxt = argmaxPair(ucur, unxt, d.sp)
			}
			if bestCur != "" {
				out = append(out, Correction{cur.Word, bestCur})
			}
			if bestNxt != "" {
				out = append(out, Correction{nxt.Word, bestNxt})
			}

			if nxt.EOS || bestNxt == "" {
				st, prev = s0, ""
			} else {
				st, prev = s1, bestNxt
			}
			cur, ok = tok.Next()
		}
	}

	return out
}

// advanceKnown computes the next state after a known (correctly spelled)
// token: the end-of-sentence flag always resets context to S0.
func (d *Disambiguator) advanceKnown(cur tokenize.Token) (state, string) {
	if cur.EOS {
		return s0, ""
	}
	return s1, cur.Word
}

// firstOf returns the highest-ranked element of U, or "" if empty — the
// unigram-only fallback used when the stream ends before a next token
// can be peeked.
func firstOf(u []string) string {
	if len(u) == 0 {
		return ""
	}
	return u[0]
}

// argmaxSingle returns the element of u with the largest score, breaking
// ties (including the all-zero case) toward the first element — u is
// already unigram-rank order, so that is the highest-ranked survivor.
func argmaxSingle(u []string, score func(string) uint32) string {
	if len(u) == 0 {
		return ""
	}
	best := u[0]
	bestScore := score(u[0])
	for _, c := range u[1:] {
		if s := score(c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// argmaxPair returns the (c, x) pair from ucur × unxt with the largest
// bigram count, breaking ties toward the first pair encountered in
// ucur-major order.
func argmaxPair(ucur, unxt []string, sp *spell.Spell) (string, string) {
	if len(ucur) == 0 {
		return "", firstOf(unxt)
	}
	if len(unxt) == 0 {
		return firstOf(ucur), ""
	}
	bestC, bestX := ucur[0], unxt[0]
	bestScore := sp.BigramCount(bestC, bestX)
	for _, c := range ucur {
		for _, x := range unxt {
			if s := sp.BigramCount(c, x); s > bestScore {
				bestScore, bestC, bestX = s, c, x
			}
		}
	}
	return bestC, bestX
}
