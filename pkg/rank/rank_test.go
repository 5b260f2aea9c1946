package rank

import (
	"testing"

	"github.com/corrigo-dev/corrigo/pkg/editgen"
	"github.com/corrigo-dev/corrigo/pkg/ordmap"
)

func TestRankFiltersUnknownAndSortsByScore(t *testing.T) {
	cands := []editgen.Candidate{
		{Surface: "xqzzy", Weight: 5.0}, // unknown, must be discarded
		{Surface: "low", Weight: 1.0},
		{Surface: "high", Weight: 1.0},
	}
	freq := map[string]uint32{"low": 10, "high": 1000}
	count := func(s string) uint32 { return freq[s] }

	got := Rank(cands, count, 5, "")
	want := []string{"high", "low"}
	if len(got) != len(want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rank[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRankTruncatesToN(t *testing.T) {
	cands := []editgen.Candidate{
		{Surface: "a", Weight: 1},
		{Surface: "b", Weight: 1},
		{Surface: "c", Weight: 1},
	}
	count := func(s string) uint32 { return 1 }
	got := Rank(cands, count, 2, "")
	if len(got) != 2 {
		t.Errorf("Rank truncated len = %d, want 2", len(got))
	}
}

func TestRankStableTieBreakIsInsertionOrder(t *testing.T) {
	cands := []editgen.Candidate{
		{Surface: "first", Weight: 1},
		{Surface: "second", Weight: 1},
	}
	count := func(s string) uint32 { return 5 } // identical scores
	got := Rank(cands, count, 2, "")
	if got[0] != "first" || got[1] != "second" {
		t.Errorf("Rank tie-break = %v, want [first second] (insertion order)", got)
	}
}

func TestRankDedupsKeepingMaxScore(t *testing.T) {
	cands := []editgen.Candidate{
		{Surface: "dup", Weight: 1.0},
		{Surface: "dup", Weight: 9.0},
	}
	count := func(s string) uint32 { return 2 }
	got := Rank(cands, count, 5, "")
	if len(got) != 1 || got[0] != "dup" {
		t.Errorf("Rank dedup = %v, want single [dup]", got)
	}
}

func TestRankEmptyInputYieldsEmptyOutput(t *testing.T) {
	got := Rank(nil, func(string) uint32 { return 0 }, 5, "")
	if len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}

func TestRankExcludesTheWordBeingCorrected(t *testing.T) {
	cands := []editgen.Candidate{
		{Surface: "teh", Weight: 1.0},
		{Surface: "the", Weight: 1.0},
	}
	freq := map[string]uint32{"teh": 5, "the": 1000}
	count := func(s string) uint32 { return freq[s] }

	got := Rank(cands, count, 5, "teh")
	if len(got) != 1 || got[0] != "the" {
		t.Errorf("Rank with exclude=teh = %v, want [the]", got)
	}
}

func TestPhoneticFallbackPicksMinimumLevenshtein(t *testing.T) {
	bucket := ordmap.NewPhoneticBucket()
	bucket.Add("RPRT", "robert")
	bucket.Add("RPRT", "rupert")

	got, ok := PhoneticFallback("robert", bucket)
	if !ok {
		t.Fatal("expected a fallback match")
	}
	if got != "robert" {
		t.Errorf("PhoneticFallback(robert) = %q, want robert (distance 0)", got)
	}
}

func TestPhoneticFallbackNoMatch(t *testing.T) {
	bucket := ordmap.NewPhoneticBucket()
	_, ok := PhoneticFallback("xqz", bucket)
	if ok {
		t.Error("expected no fallback match for an empty bucket")
	}
}
