package tst

import (
	"reflect"
	"sort"
	"testing"
)

func TestInsertGet(t *testing.T) {
	tree := New()
	tree.Insert("cat", 5)
	tree.Insert("car", 3)
	tree.Insert("cart", 7)
	tree.Insert("dog", 2)

	cases := map[string]uint32{
		"cat":  5,
		"car":  3,
		"cart": 7,
		"dog":  2,
		"ca":   0,
		"bird": 0,
	}
	for key, want := range cases {
		if got := tree.Get(key); got != want {
			t.Errorf("Get(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestInsertOverwrites(t *testing.T) {
	tree := New()
	tree.Insert("hello", 1)
	tree.Insert("hello", 9)
	if got := tree.Get("hello"); got != 9 {
		t.Errorf("Get(hello) = %d, want 9", got)
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (overwrite must not double-count)", tree.Len())
	}
}

func TestCollectPrefix(t *testing.T) {
	tree := New()
	words := []string{"speak", "speaker", "speakers", "special", "spell", "spelling", "spend"}
	for i, w := range words {
		tree.Insert(w, uint32(i+1))
	}

	got := tree.Collect("spe")
	sort.Strings(got)
	want := []string{"speak", "speaker", "speakers", "special", "spell", "spelling", "spend"}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect(spe) = %v, want %v", got, want)
	}

	got = tree.Collect("spel")
	sort.Strings(got)
	want = []string{"spell", "spelling"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect(spel) = %v, want %v", got, want)
	}
}

func TestCollectEmptyPrefixReturnsAll(t *testing.T) {
	tree := New()
	tree.Insert("a", 1)
	tree.Insert("b", 1)
	tree.Insert("abc", 1)

	got := tree.Collect("")
	sort.Strings(got)
	want := []string{"a", "abc", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect(\"\") = %v, want %v", got, want)
	}
}

func TestCollectNoMatch(t *testing.T) {
	tree := New()
	tree.Insert("apple", 1)
	if got := tree.Collect("zzz"); len(got) != 0 {
		t.Errorf("Collect(zzz) = %v, want empty", got)
	}
}

func TestContains(t *testing.T) {
	tree := New()
	tree.Insert("word", 4)
	if !tree.Contains("word") {
		t.Error("Contains(word) = false, want true")
	}
	if tree.Contains("wor") {
		t.Error("Contains(wor) = true, want false (non-terminal prefix)")
	}
}
