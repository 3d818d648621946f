// Package grid provides the letter grid that words are traced on.
//
// A [Grid] is an R×C arrangement of letters flattened in row-major order
// together with its adjacency graph: every cell is connected to the up to eight
// cells that touch it horizontally, vertically or diagonally. The graph is
// irreflexive (a cell is never its own neighbor) and symmetric.
//
// # Cell Indices
//
// Cells are identified by an integer index computed as
//
//	index = row*Cols() + col
//
// so every index in [0, Size()) maps to exactly one (row, col) pair. Use
// [Grid.Index] and [Grid.Coord] to convert between the two forms.
//
// # Construction
//
// Grids are built from rows of cell strings with [Build], parsed from text with
// [Parse], or generated with [Random]:
//
//	g, err := grid.Build([][]string{{"c", "a"}, {"t", "s"}})
//	g, err := grid.Parse(strings.NewReader("c a\nt s\n"))
//	g, err := grid.Random(4, 4, "", rand.New(rand.NewPCG(1, 2)))
//
// A cell usually holds a single letter but may hold a longer symbol such as
// "qu"; the word search treats each cell's string as one alphabet symbol.
//
// # Concurrency
//
// A Grid is immutable after construction and safe for concurrent reads.
package grid
