package search

import (
	"context"
	"strings"
	"unicode/utf8"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
)

// MaxBruteForceCells bounds the grids [BruteForce] accepts. Unpruned
// enumeration of every simple path is only tractable on small boards.
const MaxBruteForceCells = 16

// Trace finds a path of distinct adjacent cells whose letters spell word.
// It reports false when no such path exists.
//
// It is shorthand for [TraceContext] without a deadline. The search is
// exponential on adversarial grids; callers serving untrusted input should
// use TraceContext.
func Trace(g *grid.Grid, word string) (Path, bool) {
	p, ok, _ := TraceContext(context.Background(), g, word)
	return p, ok
}

// TraceContext is [Trace] with cancellation. Paths are explored depth first
// with an explicit stack, starting cells in index order. ctx is checked on
// every pop; when it is done the search stops and ctx.Err() is returned.
func TraceContext(ctx context.Context, g *grid.Grid, word string) (Path, bool, error) {
	if word == "" {
		return nil, false, nil
	}

	type frame struct {
		path Path
		rest string
	}
	var stack []frame
	for i := g.Size() - 1; i >= 0; i-- {
		if rest, ok := strings.CutPrefix(word, g.Letter(i)); ok {
			stack = append(stack, frame{path: Path{i}, rest: rest})
		}
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.rest == "" {
			return f.path, true, nil
		}
		nbrs := g.Neighbors(f.path.Last())
		for k := len(nbrs) - 1; k >= 0; k-- {
			n := nbrs[k]
			if f.path.Contains(n) {
				continue
			}
			if rest, ok := strings.CutPrefix(f.rest, g.Letter(n)); ok {
				stack = append(stack, frame{path: f.path.Extend(n), rest: rest})
			}
		}
	}
	return nil, false, nil
}

// Valid reports whether p is a simple path of adjacent cells in g.
func Valid(g *grid.Grid, p Path) bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[int]bool, len(p))
	for k, i := range p {
		if !g.Contains(i) || seen[i] {
			return false
		}
		seen[i] = true
		if k > 0 && !g.Adjacent(p[k-1], i) {
			return false
		}
	}
	return true
}

// BruteForce enumerates every simple path from start without pruning and
// returns the words of at least MinWordLength characters found in dict.
//
// It exists as a baseline for the pruned search. Grids larger than
// MaxBruteForceCells are rejected with INVALID_INPUT.
func BruteForce(ctx context.Context, g *grid.Grid, dict WordSet, start int) (WordSet, error) {
	if g.Size() > MaxBruteForceCells {
		return nil, errs.New(errs.ErrCodeInvalidInput, "brute force limited to %d cells, grid has %d", MaxBruteForceCells, g.Size())
	}
	if !g.Contains(start) {
		return nil, errs.New(errs.ErrCodeInvalidInput, "start cell %d outside grid of %d cells", start, g.Size())
	}

	found := WordSet{}
	stack := []entry{{path: Path{start}, word: g.Letter(start)}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if utf8.RuneCountInString(cur.word) >= MinWordLength && dict.Contains(cur.word) {
			found.Add(cur.word)
		}
		for _, n := range g.Neighbors(cur.path.Last()) {
			if !cur.path.Contains(n) {
				stack = append(stack, entry{path: cur.path.Extend(n), word: cur.word + g.Letter(n)})
			}
		}
	}
	return found, nil
}
