package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corrigo-dev/corrigo/pkg/spell"
)

func TestRunPrintsOnlyUnknownWords(t *testing.T) {
	sp, err := spell.New("testdata/unigram.txt")
	if err != nil {
		t.Fatalf("spell.New() error = %v", err)
	}
	defer sp.Close()

	var out bytes.Buffer
	if err := run(sp, strings.NewReader("the korrect answer"), &out, 1); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "korrect: correct") {
		t.Errorf("run() output = %q, want it to contain %q", got, "korrect: correct")
	}
	if strings.Contains(got, "the:") || strings.Contains(got, "answer:") {
		t.Errorf("run() output = %q, known words must not be printed", got)
	}
}
