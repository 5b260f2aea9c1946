// Package main implements the corrigo unigram spellcheck driver: it
// tokenises input, looks each word up in the unigram index, and prints
// ranked replacement candidates for anything unknown. Its only contract
// is tokenise input → call the facade → print results.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/internal/textutil"
	"github.com/corrigo-dev/corrigo/pkg/spell"
	"github.com/corrigo-dev/corrigo/pkg/tokenize"
)

func main() {
	unigramPath := flag.String("u", "dict/unigram.txt", "Path to the unigram frequency file")
	whitelistPath := flag.String("w", "", "Path to an optional whitelist file")
	count := flag.Int("c", 1, "Number of suggestions per misspelling")
	inputPath := flag.String("i", "", "Input file (defaults to stdin)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	var opts []spell.Option
	if *whitelistPath != "" {
		opts = append(opts, spell.WithWhitelist(*whitelistPath))
	}
	sp, err := spell.New(*unigramPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corrigo: %v\n", err)
		os.Exit(1)
	}
	defer sp.Close()

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "corrigo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := run(sp, in, os.Stdout, *count); err != nil {
		fmt.Fprintf(os.Stderr, "corrigo: %v\n", err)
		os.Exit(1)
	}
}

// run tokenises r, short-circuiting on words already known (drivers
// never call Suggest for known words), and prints "misspelling:
// c1,c2,…" for each unknown word that produced at least one suggestion.
func run(sp *spell.Spell, r io.Reader, w io.Writer, count int) error {
	tok := tokenize.New(r)
	for {
		t, ok := tok.Next()
		if !ok {
			return nil
		}
		if !textutil.IsValidInput(t.Word) {
			log.Debug("skipping non-word token", "token", t.Word)
			continue
		}
		if sp.IsKnown(t.Word, 1) > 0 {
			continue
		}
		suggestions := sp.Suggest(t.Word, count)
		if len(suggestions) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", t.Word, strings.Join(suggestions, ","))
	}
}
