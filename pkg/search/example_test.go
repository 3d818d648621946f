package search_test

import (
	"fmt"

	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
	"github.com/matzehuels/gridwords/pkg/trie"
)

func ExampleRun() {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "s"}})

	t := trie.New(trie.NewAlphabet(g.Alphabet()))
	for _, w := range []string{"cat", "cats", "at", "ta"} {
		_ = t.Insert(w)
	}

	found, _ := search.Run(g, t, 0)
	fmt.Println(found.Sorted())
	// Output:
	// [cat cats]
}

func ExampleTrace() {
	g := grid.MustBuild([][]string{{"c", "a"}, {"t", "s"}})
	p, ok := search.Trace(g, "cats")
	fmt.Println(p, ok)
	// Output:
	// [0 1 2 3] true
}
