package benchmark

import (
	"os"
	"strings"
	"testing"

	"github.com/corrigo-dev/corrigo/pkg/spell"
)

func mustSpell(t *testing.T) *spell.Spell {
	t.Helper()
	sp, err := spell.New("testdata/unigram.txt")
	if err != nil {
		t.Fatalf("spell.New() error = %v", err)
	}
	return sp
}

func TestRunClassifiesEveryOutcome(t *testing.T) {
	sp := mustSpell(t)
	f, err := os.Open("testdata/pairs.tsv")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	rows, sum, err := Run(sp, f, 3)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	want := map[string]Outcome{
		"speling": SuggestedCorrect,
		"the":     KnownCorrect,
		"korrect": SuggestedCorrect,
		"xqz":     Failed,
	}
	for _, r := range rows {
		if got, ok := want[r.Misspelling]; !ok || got != r.Outcome {
			t.Errorf("row %q outcome = %v, want %v", r.Misspelling, r.Outcome, want[r.Misspelling])
		}
	}

	if sum.Total != 4 || sum.KnownCorrect != 1 || sum.SuggestedCorrect != 2 || sum.Failed != 1 {
		t.Errorf("Summary = %+v, want {Total:4 KnownCorrect:1 SuggestedCorrect:2 Failed:1 ...}", sum)
	}
	if got := sum.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy() = %v, want 0.75", got)
	}
}

func TestRunMalformedLineIsError(t *testing.T) {
	sp := mustSpell(t)
	_, _, err := Run(sp, strings.NewReader("no-tab-here"), 3)
	if err == nil {
		t.Fatal("expected an error for a malformed row")
	}
}
