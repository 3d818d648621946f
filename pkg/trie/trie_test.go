package trie

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

func newTestTrie(t *testing.T, letters string, words ...string) *Trie {
	t.Helper()
	tr := New(NewAlphabet([]string{letters}))
	for _, w := range words {
		if err := tr.Insert(w); err != nil {
			t.Fatalf("Insert(%q) error: %v", w, err)
		}
	}
	return tr
}

func TestLookup(t *testing.T) {
	tr := newTestTrie(t, "cats", "cat", "cats", "at", "ta")

	tests := []struct {
		key      string
		wantWord bool
		wantMore bool
	}{
		{"", false, true},
		{"c", false, true},
		{"ca", false, true},
		{"cat", true, true},
		{"cats", true, false},
		{"at", true, false},
		{"ta", true, false},
		{"tac", false, false},
		{"sc", false, false},
		{"catss", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isWord, more, err := tr.Lookup(tt.key)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.key, err)
			}
			if isWord != tt.wantWord || more != tt.wantMore {
				t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", tt.key, isWord, more, tt.wantWord, tt.wantMore)
			}
		})
	}
}

func TestLookup_UnsupportedCharacter(t *testing.T) {
	tr := newTestTrie(t, "x", "xx")

	_, _, err := tr.Lookup("xy")
	if !errs.Is(err, errs.ErrCodeUnsupportedCharacter) {
		t.Fatalf("Lookup(\"xy\") error = %v, want %s", err, errs.ErrCodeUnsupportedCharacter)
	}

	// A dead branch must not mask the unsupported character.
	tr2 := newTestTrie(t, "ab", "ab")
	if _, _, err := tr2.Lookup("bbz"); !errs.Is(err, errs.ErrCodeUnsupportedCharacter) {
		t.Errorf("Lookup(\"bbz\") error = %v, want %s", err, errs.ErrCodeUnsupportedCharacter)
	}
}

func TestInsert_UnsupportedCharacter(t *testing.T) {
	tr := newTestTrie(t, "abc", "abc")
	nodes := tr.Nodes()

	err := tr.Insert("abd")
	if !errs.Is(err, errs.ErrCodeUnsupportedCharacter) {
		t.Fatalf("Insert(\"abd\") error = %v, want %s", err, errs.ErrCodeUnsupportedCharacter)
	}
	if tr.Nodes() != nodes {
		t.Errorf("failed Insert changed node count: %d -> %d", nodes, tr.Nodes())
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestInsert_Empty(t *testing.T) {
	tr := newTestTrie(t, "a")
	if err := tr.Insert(""); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Insert(\"\") error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
	if isWord, _, _ := tr.Lookup(""); isWord {
		t.Error("root must not be a word")
	}
}

func TestInsert_Idempotent(t *testing.T) {
	once := newTestTrie(t, "cats", "cat", "cats")
	twice := newTestTrie(t, "cats", "cat", "cats", "cat", "cats")

	if once.Len() != twice.Len() || once.Nodes() != twice.Nodes() {
		t.Fatalf("Len/Nodes differ: (%d, %d) vs (%d, %d)", once.Len(), once.Nodes(), twice.Len(), twice.Nodes())
	}
	for _, key := range []string{"", "c", "ca", "cat", "cats", "a", "s", "tac"} {
		w1, m1, _ := once.Lookup(key)
		w2, m2, _ := twice.Lookup(key)
		if w1 != w2 || m1 != m2 {
			t.Errorf("Lookup(%q): once=(%v,%v) twice=(%v,%v)", key, w1, m1, w2, m2)
		}
	}
}

func TestPruningSignal(t *testing.T) {
	words := []string{"stack", "star", "tar", "rats", "arts"}
	tr := newTestTrie(t, "stackr", words...)

	// hasContinuation == false means no stored word extends the key.
	for _, key := range []string{"s", "st", "sta", "star", "t", "ta", "r", "ra", "rat", "ar", "art", "k", "kc", "stak"} {
		_, more, err := tr.Lookup(key)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", key, err)
		}
		extended := false
		for _, w := range words {
			if len(w) > len(key) && w[:len(key)] == key {
				extended = true
			}
		}
		if more != extended {
			t.Errorf("Lookup(%q).hasContinuation = %v, want %v", key, more, extended)
		}
	}
}

func TestContains(t *testing.T) {
	tr := newTestTrie(t, "cat", "cat")
	if !tr.Contains("cat") {
		t.Error("Contains(\"cat\") = false")
	}
	if tr.Contains("ca") {
		t.Error("Contains(\"ca\") = true for a prefix")
	}
	if tr.Contains("dog") {
		t.Error("Contains(\"dog\") = true for unsupported characters")
	}
}

func TestWords(t *testing.T) {
	tr := newTestTrie(t, "cats", "ta", "cats", "cat", "at")
	if diff := cmp.Diff([]string{"at", "cat", "cats", "ta"}, tr.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphabet(t *testing.T) {
	a := NewAlphabet([]string{"c", "a", "qu", "a", "t"})
	if got := a.String(); got != "caqut" {
		t.Errorf("String() = %q, want %q", got, "caqut")
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
	if i, ok := a.Index('q'); !ok || i != 2 {
		t.Errorf("Index('q') = (%d, %v), want (2, true)", i, ok)
	}
	if !a.Contains("quat") || a.Contains("quiz") {
		t.Error("Contains mismatch")
	}
	idx, err := a.Encode("taqu")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if diff := cmp.Diff([]int{4, 1, 2, 3}, idx); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestAlphabet_Zero(t *testing.T) {
	var a Alphabet
	if a.Len() != 0 || a.Contains("a") {
		t.Error("zero alphabet should be empty")
	}
	if !a.Contains("") {
		t.Error("empty word is trivially contained")
	}
}
