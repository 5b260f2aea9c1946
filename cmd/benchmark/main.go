// Package main implements the corrigo benchmark driver: it replays a
// "misspelling\ttruth" fixture file against a built spelling oracle and
// prints an outcome summary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/pkg/benchmark"
	"github.com/corrigo-dev/corrigo/pkg/spell"
)

const (
	Version = "0.1.0"
	AppName = "corrigo-benchmark"
)

func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	unigramPath := flag.String("unigram", "dict/unigram.txt", "Path to the unigram frequency file")
	bigramPath := flag.String("bigram", "dict/bigram.txt", "Path to the optional bigram frequency file")
	soundexPath := flag.String("soundex", "dict/soundex.txt", "Path to the optional phonetic bucket file")
	pairsPath := flag.String("pairs", "", "Path to the misspelling\\ttruth fixture file")
	topK := flag.Int("topk", 5, "Number of suggestions requested per misspelling")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	verbose := flag.Bool("rows", false, "Print every classified row, not just the summary")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *pairsPath == "" {
		log.Fatal("missing required -pairs flag")
	}

	sp, err := spell.New(*unigramPath, spell.WithBigram(*bigramPath), spell.WithSoundex(*soundexPath))
	if err != nil {
		log.Fatalf("failed to build spelling oracle: %v", err)
	}
	defer sp.Close()

	f, err := os.Open(*pairsPath)
	if err != nil {
		log.Fatalf("failed to open pairs file: %v", err)
	}
	defer f.Close()

	rows, summary, err := benchmark.Run(sp, f, *topK)
	if err != nil {
		log.Fatalf("benchmark run failed: %v", err)
	}

	if *verbose {
		for _, r := range rows {
			fmt.Printf("%-20s truth=%-15s outcome=%-18s suggestions=%v\n", r.Misspelling, r.Truth, r.Outcome, r.Suggestions)
		}
		fmt.Println()
	}

	summary.Fprint(os.Stdout)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print(fmt.Sprintf("[%s] spelling-correction benchmark driver", AppName))
	logger.Print("", "version", Version)
	logger.Print("")
}
