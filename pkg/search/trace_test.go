package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
)

func TestTrace(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a", "x"}, {"t", "s", "x"}, {"x", "x", "o"}})

	tests := []struct {
		word   string
		want   Path
		wantOK bool
	}{
		{"cat", Path{0, 1, 3}, true},
		{"cats", Path{0, 1, 3, 4}, true},
		{"so", Path{4, 8}, true},
		{"oxo", nil, false}, // would need to revisit the single "o"
		{"co", nil, false},  // c and o are not adjacent
		{"dog", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := Trace(g, tt.word)
			if ok != tt.wantOK {
				t.Fatalf("Trace(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Trace(%q) mismatch (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}

func TestTrace_NoRevisit(t *testing.T) {
	g := grid.MustBuild([][]string{{"a", "b"}})
	if _, ok := Trace(g, "aba"); ok {
		t.Error("Trace(\"aba\") should fail on a 1x2 grid")
	}
	if p, ok := Trace(g, "ab"); !ok || !Valid(g, p) {
		t.Errorf("Trace(\"ab\") = %v, %v", p, ok)
	}
}

func TestTraceContext_Cancelled(t *testing.T) {
	rows := make([][]string, 5)
	for r := range rows {
		rows[r] = []string{"a", "a", "a", "a", "a"}
	}
	g := grid.MustBuild(rows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := TraceContext(ctx, g, strings.Repeat("a", 24)+"b")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("TraceContext() error = %v, want context.Canceled", err)
	}
	if ok {
		t.Error("cancelled trace should not report a path")
	}
}

func TestTraceContext_Deadline(t *testing.T) {
	rows := make([][]string, 5)
	for r := range rows {
		rows[r] = []string{"a", "a", "a", "a", "a"}
	}
	g := grid.MustBuild(rows)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	began := time.Now()
	_, _, err := TraceContext(ctx, g, strings.Repeat("a", 24)+"b")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("TraceContext() error = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(began); elapsed > 5*time.Second {
		t.Errorf("TraceContext() took %s after its deadline", elapsed)
	}
}

func TestValid(t *testing.T) {
	g := grid.MustBuild([][]string{{"a", "b", "c"}, {"d", "e", "f"}})

	tests := []struct {
		name string
		path Path
		want bool
	}{
		{"single", Path{0}, true},
		{"diagonal", Path{0, 4, 2}, true},
		{"empty", Path{}, false},
		{"repeat", Path{0, 1, 0}, false},
		{"jump", Path{0, 2}, false},
		{"out of range", Path{0, 6}, false},
	}
	for _, tt := range tests {
		if got := Valid(g, tt.path); got != tt.want {
			t.Errorf("%s: Valid(%v) = %v, want %v", tt.name, tt.path, got, tt.want)
		}
	}
}

func TestBruteForce(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "s"}})
	dict := NewWordSet("cat", "cats", "at", "act", "scat", "dog")

	all := WordSet{}
	for start := range g.Size() {
		f, err := BruteForce(context.Background(), g, dict, start)
		if err != nil {
			t.Fatalf("BruteForce(%d) error: %v", start, err)
		}
		all.Union(f)
	}
	if diff := cmp.Diff([]string{"act", "cat", "cats", "scat"}, all.Sorted()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBruteForce_TooLarge(t *testing.T) {
	rows := make([][]string, 5)
	for i := range rows {
		rows[i] = []string{"a", "b", "c", "d"}
	}
	g := grid.MustBuild(rows)
	if _, err := BruteForce(context.Background(), g, WordSet{}, 0); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("BruteForce() error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
}

func TestWordSet(t *testing.T) {
	a := NewWordSet("cat", "at")
	b := NewWordSet("cats", "cat")
	a.Union(b)
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if diff := cmp.Diff([]string{"cats", "cat", "at"}, a.Ranked()); diff != "" {
		t.Errorf("Ranked() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathExtendDoesNotAlias(t *testing.T) {
	p := make(Path, 1, 8)
	p[0] = 0
	a := p.Extend(1)
	b := p.Extend(2)
	if a[1] != 1 || b[1] != 2 {
		t.Errorf("Extend aliased: a=%v b=%v", a, b)
	}
}
