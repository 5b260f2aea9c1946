package ordmap

import "testing"

func TestBigramMap(t *testing.T) {
	b := NewBigramMap()
	b.Insert("the", "korrect", 0)
	b.Insert("the", "correct", 482)

	if got := b.Count("the", "correct"); got != 482 {
		t.Errorf("Count(the, correct) = %d, want 482", got)
	}
	if got := b.Count("the", "missing"); got != 0 {
		t.Errorf("Count(the, missing) = %d, want 0", got)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBigramMapLeadingCount(t *testing.T) {
	b := NewBigramMap()
	b.Insert("the", "correct", 482)
	b.Insert("the", "quick", 100)
	b.Insert("a", "the", 9999) // "the" as trailing word must not count

	if got := b.LeadingCount("the"); got != 582 {
		t.Errorf("LeadingCount(the) = %d, want 582", got)
	}
	if got := b.LeadingCount("missing"); got != 0 {
		t.Errorf("LeadingCount(missing) = %d, want 0", got)
	}
}

func TestPhoneticBucket(t *testing.T) {
	p := NewPhoneticBucket()
	p.Add("RPRT", "Robert")
	p.Add("RPRT", "Rupert")

	words := p.Words("RPRT")
	if len(words) != 2 || words[0] != "Robert" || words[1] != "Rupert" {
		t.Errorf("Words(RPRT) = %v, want [Robert Rupert] in insertion order", words)
	}
	if got := p.Words("ZZZZ"); got != nil {
		t.Errorf("Words(ZZZZ) = %v, want nil", got)
	}
}
