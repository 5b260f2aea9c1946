// Package main implements corrigo's interactive debug REPL: a stdin
// loop for trying single words against a Spell without the msgpack
// daemon or the batch drivers. Meant for manual testing, not scripting.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/internal/repl"
	"github.com/corrigo-dev/corrigo/pkg/spell"
)

func main() {
	unigramPath := flag.String("u", "dict/unigram.txt", "Path to the unigram frequency file")
	bigramPath := flag.String("b", "", "Path to an optional bigram frequency file")
	soundexPath := flag.String("s", "", "Path to an optional phonetic bucket file")
	whitelistPath := flag.String("w", "", "Path to an optional whitelist file")
	topK := flag.Int("k", 5, "Number of suggestions to show per word")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (shows suggestions for numbers, symbols, etc.)")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetReportTimestamp(false)

	var opts []spell.Option
	if *bigramPath != "" {
		opts = append(opts, spell.WithBigram(*bigramPath))
	}
	if *soundexPath != "" {
		opts = append(opts, spell.WithSoundex(*soundexPath))
	}
	if *whitelistPath != "" {
		opts = append(opts, spell.WithWhitelist(*whitelistPath))
	}

	sp, err := spell.New(*unigramPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corrigo: %v\n", err)
		os.Exit(1)
	}
	defer sp.Close()

	h := repl.New(sp, *topK, *noFilter)
	if err := h.Start(); err != nil {
		fmt.Fprintln(os.Stderr)
		os.Exit(0)
	}
}
