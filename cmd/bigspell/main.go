// Package main implements the corrigo bigram spellcheck driver: it
// replays input through the bigram disambiguator so surrounding context
// resolves each misspelling to a single best replacement, rather than
// printing a ranked list the way cmd/spell does.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/pkg/bigramspell"
	"github.com/corrigo-dev/corrigo/pkg/spell"
	"github.com/corrigo-dev/corrigo/pkg/tokenize"
)

func main() {
	unigramPath := flag.String("u", "dict/unigram.txt", "Path to the unigram frequency file")
	bigramPath := flag.String("b", "dict/bigram.txt", "Path to the bigram frequency file")
	whitelistPath := flag.String("w", "", "Path to an optional whitelist file")
	count := flag.Int("c", 1, "Number of unigram candidates considered per misspelling before context scoring")
	inputPath := flag.String("i", "", "Input file (defaults to stdin)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	opts := []spell.Option{spell.WithBigram(*bigramPath)}
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

	run(sp, in, os.Stdout, *count)
}

func run(sp *spell.Spell, r io.Reader, w io.Writer, count int) {
	d := bigramspell.New(sp, count)
	for _, c := range d.Run(tokenize.New(r)) {
		fmt.Fprintln(w, c.String())
	}
}
