package search

import (
	"context"
	"unicode/utf8"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/trie"
)

// entry is one alive path in the frontier together with its word.
type entry struct {
	path Path
	word string
}

// Engine runs pruned breadth-first searches over a grid.
//
// Grid and Trie must be set and are only read. The zero OnEnqueue is valid.
type Engine struct {
	Grid *grid.Grid
	Trie *trie.Trie

	// OnEnqueue, when set, observes every path that enters the frontier.
	OnEnqueue func(p Path, word string)
}

// Run returns every trie word traceable from start.
//
// It is shorthand for an [Engine] search without a context.
func Run(g *grid.Grid, t *trie.Trie, start int) (WordSet, error) {
	e := Engine{Grid: g, Trie: t}
	found, _, err := e.Run(context.Background(), start)
	return found, err
}

// Run performs the search from start.
//
// The frontier is a FIFO queue seeded with the single-cell path. Each dequeued
// path is extended by every neighbor of its last cell that is not already on
// the path. Candidates shorter than MinWordLength characters are enqueued
// without consulting the trie; longer candidates are recorded when they are
// words and enqueued only when the trie reports a continuation.
//
// The length gate counts characters of the candidate word, not cells of its
// path. The two agree for single-letter cells; with a multi-letter cell such
// as "qu" a two-cell path ("qu"+"i") is already looked up and can be
// reported.
//
// ctx is checked between dequeues. A start outside the grid returns
// INVALID_INPUT; a trie lookup error aborts the search and is returned as is.
func (e *Engine) Run(ctx context.Context, start int) (WordSet, Stats, error) {
	var stats Stats
	if !e.Grid.Contains(start) {
		return nil, stats, errs.New(errs.ErrCodeInvalidInput, "start cell %d outside grid of %d cells", start, e.Grid.Size())
	}

	found := WordSet{}
	queue := []entry{{path: Path{start}, word: e.Grid.Letter(start)}}
	e.enqueued(&stats, queue[0])

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		cur := queue[0]
		queue[0] = entry{}
		queue = queue[1:]
		stats.Dequeued++

		for _, n := range e.Grid.Neighbors(cur.path.Last()) {
			if cur.path.Contains(n) {
				continue
			}
			cand := entry{path: cur.path.Extend(n), word: cur.word + e.Grid.Letter(n)}

			if utf8.RuneCountInString(cand.word) < MinWordLength {
				queue = append(queue, cand)
				e.enqueued(&stats, cand)
				continue
			}

			isWord, more, err := e.Trie.Lookup(cand.word)
			stats.Lookups++
			if err != nil {
				return nil, stats, err
			}
			if isWord {
				found.Add(cand.word)
			}
			if !more {
				stats.Pruned++
				continue
			}
			queue = append(queue, cand)
			e.enqueued(&stats, cand)
		}
	}
	return found, stats, nil
}

func (e *Engine) enqueued(stats *Stats, en entry) {
	stats.Enqueued++
	if e.OnEnqueue != nil {
		e.OnEnqueue(en.path, en.word)
	}
}
