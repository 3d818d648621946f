package search

import (
	"cmp"
	"maps"
	"slices"
	"unicode/utf8"
)

// MinWordLength is the shortest word, in characters, a search reports.
const MinWordLength = 3

// Path is a sequence of distinct cell indices.
//
// Paths placed in a frontier are never modified; [Path.Extend] always returns
// a new slice so ancestors still queued are unaffected.
type Path []int

// Last returns the final cell of the path.
func (p Path) Last() int { return p[len(p)-1] }

// Contains reports whether cell i is already on the path.
func (p Path) Contains(i int) bool { return slices.Contains(p, i) }

// Extend returns a copy of p with cell i appended.
func (p Path) Extend(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// WordSet is an unordered set of words.
type WordSet map[string]struct{}

// NewWordSet returns a set holding words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w.
func (s WordSet) Add(w string) { s[w] = struct{}{} }

// Contains reports whether w is in the set.
func (s WordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s WordSet) Len() int { return len(s) }

// Union adds every word of other to s.
func (s WordSet) Union(other WordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Sorted returns the words in lexical order.
func (s WordSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Ranked returns the words ordered longest first, ties broken lexically.
func (s WordSet) Ranked() []string {
	out := s.Sorted()
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	return out
}

// Stats counts the work done by one search.
type Stats struct {
	Dequeued int `json:"dequeued"` // paths taken from the frontier
	Enqueued int `json:"enqueued"` // paths added to the frontier, including the seed
	Lookups  int `json:"lookups"`  // trie lookups performed
	Pruned   int `json:"pruned"`   // candidates dropped for lacking a continuation
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Dequeued += o.Dequeued
	s.Enqueued += o.Enqueued
	s.Lookups += o.Lookups
	s.Pruned += o.Pruned
}
