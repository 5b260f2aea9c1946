// Package benchmark reads "misspelling\ttruth" pairs, classifies each
// row against a spell.Spell, and summarizes the run.
package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corrigo-dev/corrigo/internal/textutil"
	"github.com/corrigo-dev/corrigo/pkg/spell"
)

// Outcome classifies one benchmark row against the facade's response.
type Outcome int

const (
	// KnownCorrect: the input was already a known word and equals truth.
	KnownCorrect Outcome = iota
	// KnownWrong: the input was already known but differs from truth —
	// the corpus itself disagrees with the benchmark's truth label.
	KnownWrong
	// SuggestedCorrect: truth appears somewhere in the suggestion list.
	SuggestedCorrect
	// SuggestedWrong: the suggestion list is non-empty but omits truth.
	SuggestedWrong
	// Failed: no suggestion was produced at all.
	Failed
)

// String renders an Outcome the way the benchmark summary prints it.
func (o Outcome) String() string {
	switch o {
	case KnownCorrect:
		return "known-correct"
	case KnownWrong:
		return "known-wrong"
	case SuggestedCorrect:
		return "suggested-correct"
	case SuggestedWrong:
		return "suggested-wrong"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Row is one classified benchmark entry.
type Row struct {
	Misspelling string
	Truth       string
	Suggestions []string
	Outcome     Outcome
}

// Summary tallies outcomes across a full benchmark run.
type Summary struct {
	Total            int
	KnownCorrect     int
	KnownWrong       int
	SuggestedCorrect int
	SuggestedWrong   int
	Failed           int
}

// Accuracy returns the fraction of rows resolved as KnownCorrect or
// SuggestedCorrect, or 0 if Total is 0.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.KnownCorrect+s.SuggestedCorrect) / float64(s.Total)
}

// Fprint writes a human-readable summary to w as plain counters, no
// table library involved.
func (s Summary) Fprint(w io.Writer) {
	fmt.Fprintf(w, "total:              %s\n", textutil.FormatWithCommas(s.Total))
	fmt.Fprintf(w, "known-correct:      %s\n", textutil.FormatWithCommas(s.KnownCorrect))
	fmt.Fprintf(w, "known-wrong:        %s\n", textutil.FormatWithCommas(s.KnownWrong))
	fmt.Fprintf(w, "suggested-correct:  %s\n", textutil.FormatWithCommas(s.SuggestedCorrect))
	fmt.Fprintf(w, "suggested-wrong:    %s\n", textutil.FormatWithCommas(s.SuggestedWrong))
	fmt.Fprintf(w, "failed:             %s\n", textutil.FormatWithCommas(s.Failed))
	fmt.Fprintf(w, "accuracy:           %.2f%%\n", s.Accuracy()*100)
}

// Run reads "misspelling\ttruth" pairs from r, classifies each against
// sp, and returns both the per-row detail and the tallied Summary.
// topK bounds how many suggestions Suggest returns per row.
func Run(sp *spell.Spell, r io.Reader, topK int) ([]Row, Summary, error) {
	var rows []Row
	var sum Summary

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, Summary{}, fmt.Errorf("benchmark: line %d: malformed row %q", lineNo, line)
		}
		row := classify(sp, fields[0], fields[1], topK)
		rows = append(rows, row)
		tally(&sum, row.Outcome)
	}
	if err := scanner.Err(); err != nil {
		return nil, Summary{}, err
	}
	sum.Total = len(rows)
	return rows, sum, nil
}

func classify(sp *spell.Spell, misspelling, truth string, topK int) Row {
	row := Row{Misspelling: misspelling, Truth: truth}

	if sp.IsKnown(misspelling, 1) > 0 {
		if misspelling == truth {
			row.Outcome = KnownCorrect
		} else {
			row.Outcome = KnownWrong
		}
		return row
	}

	row.Suggestions = sp.Suggest(misspelling, topK)
	switch {
	case len(row.Suggestions) == 0:
		row.Outcome = Failed
	case contains(row.Suggestions, truth):
		row.Outcome = SuggestedCorrect
	default:
		row.Outcome = SuggestedWrong
	}
	return row
}

func tally(s *Summary, o Outcome) {
	switch o {
	case KnownCorrect:
		s.KnownCorrect++
	case KnownWrong:
		s.KnownWrong++
	case SuggestedCorrect:
		s.SuggestedCorrect++
	case SuggestedWrong:
		s.SuggestedWrong++
	case Failed:
		s.Failed++
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
