package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
)

func TestRenderGrid(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "qu"}})
	p, ok := search.Trace(g, "cat")
	if !ok {
		t.Fatal("cat should be traceable")
	}

	for _, out := range []string{renderGrid(g, nil), renderGrid(g, p)} {
		for _, l := range []string{"c", "a", "t", "qu"} {
			if !strings.Contains(out, l) {
				t.Errorf("renderGrid() missing %q:\n%s", l, out)
			}
		}
	}
}

func TestRenderWordTable(t *testing.T) {
	out := renderWordTable([]string{"cats", "cat", "act", "scat"})
	for _, want := range []string{"4 letters (2)", "3 letters (2)", "cats", "act"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderWordTable() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "4 letters") > strings.Index(out, "3 letters") {
		t.Error("longer words should come first")
	}
}

func TestPlainGrid(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "qu"}})
	if got, want := plainGrid(g), "c a\nt qu\n"; got != want {
		t.Errorf("plainGrid() = %q, want %q", got, want)
	}
}

func TestFormatPath(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "s"}})
	got := formatPath(g, search.Path{0, 1, 2})
	if want := "(0,0) → (0,1) → (1,0)"; got != want {
		t.Errorf("formatPath() = %q, want %q", got, want)
	}
}

func TestWordBrowserModel(t *testing.T) {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "s"}})
	m := NewWordBrowserModel(g, []string{"cats", "scat", "cat"})
	m.Height = 2

	press := func(m WordBrowserModel, key tea.KeyMsg) WordBrowserModel {
		next, _ := m.Update(key)
		return next.(WordBrowserModel)
	}
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, runes("j"))
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1 so the cursor stays visible", m.Offset)
	}

	m = press(m, runes("j"))
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want clamped at 2", m.Cursor)
	}

	m = press(m, runes("g"))
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("home: Cursor/Offset = %d/%d, want 0/0", m.Cursor, m.Offset)
	}

	if p := m.Path(); len(p) != 4 || g.Word(p) != "cats" {
		t.Errorf("Path() = %v, want a path spelling cats", p)
	}
	if !strings.Contains(m.View(), "Found 3 words") {
		t.Error("View() should show the word count")
	}

	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestWordBrowserModel_Empty(t *testing.T) {
	m := NewWordBrowserModel(grid.MustBuild([][]string{{"x"}}), nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(WordBrowserModel)
	if m.Cursor != 0 || m.Path() != nil {
		t.Errorf("empty browser moved: cursor %d path %v", m.Cursor, m.Path())
	}
	if !strings.Contains(m.View(), "no words") {
		t.Error("View() should say there are no words")
	}
}
