package solver

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
)

// Comparison reports a pruned solve against an exhaustive one on the same grid.
type Comparison struct {
	Pruned     time.Duration `json:"pruned"`
	Exhaustive time.Duration `json:"exhaustive"`
	Found      int           `json:"found"`

	// Missing lists words only the exhaustive search found; Extra lists words
	// only the pruned search found. Both are empty when the searches agree.
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

// Agree reports whether both searches found the same words.
func (c *Comparison) Agree() bool { return len(c.Missing) == 0 && len(c.Extra) == 0 }

// Speedup is the exhaustive time divided by the pruned time.
func (c *Comparison) Speedup() float64 {
	if c.Pruned <= 0 {
		return 0
	}
	return float64(c.Exhaustive) / float64(c.Pruned)
}

// Compare solves g with s and with an unpruned path enumeration over the same
// filtered dictionary, and reports timing and any disagreement.
//
// The exhaustive side is limited to search.MaxBruteForceCells cells.
func (s *Solver) Compare(ctx context.Context, g *grid.Grid, words []string) (*Comparison, error) {
	res, err := s.Solve(ctx, g, words)
	if err != nil {
		return nil, err
	}

	_, filtered, err := BuildTrie(g, words)
	if err != nil {
		return nil, err
	}
	dict := search.NewWordSet(filtered...)

	began := time.Now()
	brute := search.WordSet{}
	for i := range g.Size() {
		f, err := search.BruteForce(ctx, g, dict, i)
		if err != nil {
			return nil, err
		}
		brute.Union(f)
	}

	cmp := &Comparison{
		Pruned:     res.Stats.TrieTime + res.Stats.SearchTime,
		Exhaustive: time.Since(began),
		Found:      len(res.Words),
	}
	pruned := search.NewWordSet(res.Words...)
	for _, w := range brute.Sorted() {
		if !pruned.Contains(w) {
			cmp.Missing = append(cmp.Missing, w)
		}
	}
	for _, w := range res.Words {
		if !brute.Contains(w) {
			cmp.Extra = append(cmp.Extra, w)
		}
	}
	slices.Sort(cmp.Extra)
	return cmp, nil
}
