// Package solver finds every dictionary word in a grid.
//
// It assembles the whole-grid answer from the single-start searches of package
// search:
//
//  1. Filter the dictionary down to words the grid can possibly spell
//  2. Build a trie over the grid's alphabet from the filtered words
//  3. Run one pruned search per starting cell on a bounded worker pool
//  4. Union the per-cell results
//
// # Usage
//
//	s := solver.New(0, logger) // 0 workers = GOMAXPROCS
//	res, err := s.Solve(ctx, g, words)
//	for _, w := range res.Words {
//	    fmt.Println(w)
//	}
//
// The grid and trie are shared read-only by all workers; each worker owns its
// own frontier and result set, so the only synchronization is the final union.
package solver

import (
	"context"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/observability"
	"github.com/matzehuels/gridwords/pkg/search"
	"github.com/matzehuels/gridwords/pkg/trie"
)

// Stats describes one Solve call.
type Stats struct {
	Cells      int           `json:"cells"`
	Alphabet   int           `json:"alphabet"`
	Dictionary int           `json:"dictionary"`
	Filtered   int           `json:"filtered"`
	TrieNodes  int           `json:"trie_nodes"`
	Found      int           `json:"found"`
	Search     search.Stats  `json:"search"`
	TrieTime   time.Duration `json:"trie_time"`
	SearchTime time.Duration `json:"search_time"`
}

// Result holds the words found in a grid.
type Result struct {
	// Words are ordered longest first, ties broken lexically.
	Words []string `json:"words"`
	Stats Stats    `json:"stats"`
}

// Solver runs whole-grid searches.
//
// A Solver holds no per-run state; one instance may serve concurrent Solve
// calls.
type Solver struct {
	Workers int
	Logger  *log.Logger
}

// New creates a Solver. Workers <= 0 selects runtime.GOMAXPROCS(0); a nil
// logger selects log.Default().
func New(workers int, logger *log.Logger) *Solver {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Solver{Workers: workers, Logger: logger}
}

// Solve finds every word of words traceable in g.
//
// Words that use characters outside the grid's alphabet, or that are longer
// than the grid could spell, are dropped before the trie is built. The search
// is cancelled on the first error or when ctx is done.
func (s *Solver) Solve(ctx context.Context, g *grid.Grid, words []string) (res *Result, err error) {
	start := time.Now()
	observability.Solve().OnSolveStart(ctx, g.Size(), len(words))
	defer func() {
		found := 0
		if res != nil {
			found = len(res.Words)
		}
		observability.Solve().OnSolveComplete(ctx, found, time.Since(start), err)
	}()

	t, filtered, err := BuildTrie(g, words)
	if err != nil {
		return nil, err
	}
	trieTime := time.Since(start)
	observability.Solve().OnTrieBuilt(ctx, t.Len(), t.Nodes(), trieTime)
	s.logger().Debug("Built trie",
		"alphabet", t.Alphabet().String(),
		"dictionary", len(words),
		"filtered", len(filtered),
		"nodes", t.Nodes())

	searchStart := time.Now()
	found, stats, err := s.searchAll(ctx, g, t)
	if err != nil {
		return nil, err
	}

	for w := range found {
		if !t.Contains(w) {
			return nil, errs.New(errs.ErrCodeInternal, "search reported %q which is not in the dictionary", w)
		}
	}

	res = &Result{
		Words: found.Ranked(),
		Stats: Stats{
			Cells:      g.Size(),
			Alphabet:   t.Alphabet().Len(),
			Dictionary: len(words),
			Filtered:   len(filtered),
			TrieNodes:  t.Nodes(),
			Found:      found.Len(),
			Search:     stats,
			TrieTime:   trieTime,
			SearchTime: time.Since(searchStart),
		},
	}
	s.logger().Debug("Searched grid",
		"cells", g.Size(),
		"found", found.Len(),
		"lookups", stats.Lookups,
		"pruned", stats.Pruned)
	return res, nil
}

// searchAll runs one search per start cell on the worker pool and unions the
// per-cell results once every worker is done.
func (s *Solver) searchAll(ctx context.Context, g *grid.Grid, t *trie.Trie) (search.WordSet, search.Stats, error) {
	perCell := make([]search.WordSet, g.Size())
	perStats := make([]search.Stats, g.Size())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(s.Workers, 1))
	for i := range g.Size() {
		eg.Go(func() error {
			began := time.Now()
			e := search.Engine{Grid: g, Trie: t}
			found, stats, err := e.Run(egCtx, i)
			observability.Solve().OnSearchComplete(egCtx, i, found.Len(), time.Since(began), err)
			if err != nil {
				return err
			}
			perCell[i] = found
			perStats[i] = stats
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, search.Stats{}, errs.Wrap(errs.ErrCodeTimeout, ctx.Err(), "search interrupted")
		}
		return nil, search.Stats{}, err
	}

	all := search.WordSet{}
	var total search.Stats
	for i := range perCell {
		all.Union(perCell[i])
		total.Add(perStats[i])
	}
	return all, total, nil
}

func (s *Solver) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Filter returns the distinct words of words that alpha fully supports and
// whose length does not exceed maxLen characters, in first-seen order.
// Empty words are dropped.
func Filter(words []string, alpha trie.Alphabet, maxLen int) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		if utf8.RuneCountInString(w) > maxLen || !alpha.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// MaxWordLength returns the longest word, in characters, that g could spell:
// the total length of all its cells.
func MaxWordLength(g *grid.Grid) int {
	n := 0
	for i := range g.Size() {
		n += utf8.RuneCountInString(g.Letter(i))
	}
	return n
}

// BuildTrie filters words for g and inserts the survivors into a new trie over
// the grid's alphabet. It returns the trie and the filtered words.
func BuildTrie(g *grid.Grid, words []string) (*trie.Trie, []string, error) {
	alpha := trie.NewAlphabet(g.Alphabet())
	filtered := Filter(words, alpha, MaxWordLength(g))

	t := trie.New(alpha)
	for _, w := range filtered {
		if err := t.Insert(w); err != nil {
			return nil, nil, err
		}
	}
	return t, filtered, nil
}
