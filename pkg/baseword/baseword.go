// Package baseword exposes a read-only predicate over a fixed set of
// English base forms.
//
// The set is loaded once from an embedded word list and never mutated
// afterward: callers only ever see the boolean predicate, never the
// backing structure.
package baseword

import (
	_ "embed"
	"strings"
)

//go:embed data/baseforms.txt
var rawList string

var table map[string]struct{}

func init() {
	lines := strings.Split(rawList, "\n")
	table = make(map[string]struct{}, len(lines))
	for _, w := range lines {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		table[w] = struct{}{}
	}
}

// IsBaseWord reports whether s is a known English base form. s is expected
// to already be lowercase ASCII; callers outside this package are
// responsible for normalizing input the way the tokenizer does.
func IsBaseWord(s string) bool {
	_, ok := table[s]
	return ok
}

// Len returns the number of distinct base forms in the table.
func Len() int {
	return len(table)
}

// All returns every base form in the table. The returned slice is a fresh
// copy; callers may mutate it freely.
func All() []string {
	out := make([]string, 0, len(table))
	for w := range table {
		out = append(out, w)
	}
	return out
}
