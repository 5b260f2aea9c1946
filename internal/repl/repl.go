// Package repl is an interactive stdin loop for exercising a Spell by
// hand: type a word, see what it's corrected to, without going through
// the batch stdin/stdout drivers or the msgpack daemon.
package repl

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/internal/textutil"
	"github.com/corrigo-dev/corrigo/pkg/spell"
)

// Handler drives the interactive loop against a single Spell.
type Handler struct {
	sp           *spell.Spell
	topK         int
	noFilter     bool // bypasses IsValidInput filtering, for debugging raw corpus entries
	requestCount int
}

// New returns a Handler that asks sp for at most topK suggestions per word.
func New(sp *spell.Spell, topK int, noFilter bool) *Handler {
	return &Handler{sp: sp, topK: topK, noFilter: noFilter}
}

// Start runs the loop until stdin closes or is interrupted.
func (h *Handler) Start() error {
	log.Print("corrigo repl")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word, press enter to see its suggestions (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handle(word)
	}
}

func (h *Handler) handle(word string) {
	h.requestCount++

	if !h.noFilter {
		if !textutil.IsValidInput(word) {
			log.Warnf("input filtered out: %q", word)
			return
		}
	} else {
		log.Debug("input filtering disabled, allowing raw input")
	}

	if h.sp.IsKnown(word, 1) > 0 {
		log.Printf("%q is already a known word", word)
		return
	}

	start := time.Now()
	suggestions := h.sp.Suggest(word, h.topK)
	elapsed := time.Since(start)
	log.Debugf("took %v for %q", elapsed, word)

	if len(suggestions) == 0 {
		log.Warnf("no suggestions found for %q", word)
		return
	}

	log.Printf("%d suggestion(s) for %q:", len(suggestions), word)
	for i, s := range suggestions {
		colored := fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
		freq := textutil.FormatWithCommas(int(h.sp.IsKnown(s, 1)))
		log.Printf("%2d. %-30s (freq: %8s)", i+1, colored, freq)
	}

	if h.requestCount%50 == 0 {
		log.Debug("processed 50 requests since last mark")
	}
}
