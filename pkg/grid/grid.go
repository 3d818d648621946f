package grid

import (
	"strings"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

// Grid is an immutable letter grid with its 8-directional adjacency graph.
//
// The zero value is not usable - use [Build], [Parse] or [Random].
type Grid struct {
	rows      int
	cols      int
	letters   []string // cell index -> letter
	neighbors [][]int  // cell index -> adjacent cell indices, row-major
}

// Build creates a Grid from rows of cell strings.
//
// Rows must be non-empty, all of the same length, and contain no blank cells.
// Malformed input returns an INVALID_GRID error instead of a grid with
// inconsistent adjacency.
func Build(rows [][]string) (*Grid, error) {
	if err := errs.ValidateRows(rows); err != nil {
		return nil, err
	}

	g := &Grid{
		rows:      len(rows),
		cols:      len(rows[0]),
		letters:   make([]string, 0, len(rows)*len(rows[0])),
		neighbors: make([][]int, len(rows)*len(rows[0])),
	}

	for r, row := range rows {
		for c, letter := range row {
			i := g.Index(r, c)
			g.letters = append(g.letters, letter)
			g.neighbors[i] = g.adjacentTo(r, c)
		}
	}
	return g, nil
}

// MustBuild is like Build but panics on malformed input.
// It is intended for tests and package-level fixtures.
func MustBuild(rows [][]string) *Grid {
	g, err := Build(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) adjacentTo(r, c int) []int {
	out := make([]int, 0, 8)
	for x := r - 1; x <= r+1; x++ {
		for y := c - 1; y <= c+1; y++ {
			if x < 0 || x >= g.rows || y < 0 || y >= g.cols {
				continue
			}
			if x == r && y == c {
				continue
			}
			out = append(out, g.Index(x, y))
		}
	}
	return out
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells (Rows()*Cols()).
func (g *Grid) Size() int { return len(g.letters) }

// Index converts a (row, col) pair to a cell index.
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Coord converts a cell index back to its (row, col) pair.
func (g *Grid) Coord(i int) (row, col int) { return i / g.cols, i % g.cols }

// Contains reports whether i is a valid cell index.
func (g *Grid) Contains(i int) bool { return i >= 0 && i < len(g.letters) }

// Letter returns the letter at cell i.
func (g *Grid) Letter(i int) string { return g.letters[i] }

// Letters returns a copy of the flattened letter sequence.
func (g *Grid) Letters() []string {
	out := make([]string, len(g.letters))
	copy(out, g.letters)
	return out
}

// Neighbors returns the cells adjacent to cell i in row-major order.
// The returned slice is shared and must not be modified.
func (g *Grid) Neighbors(i int) []int { return g.neighbors[i] }

// Adjacent reports whether cells a and b touch.
func (g *Grid) Adjacent(a, b int) bool {
	if a == b || !g.Contains(a) || !g.Contains(b) {
		return false
	}
	ra, ca := g.Coord(a)
	rb, cb := g.Coord(b)
	return abs(ra-rb) <= 1 && abs(ca-cb) <= 1
}

// Alphabet returns the distinct letters of the grid in first-seen row-major
// order.
func (g *Grid) Alphabet() []string {
	seen := make(map[string]bool, len(g.letters))
	var out []string
	for _, l := range g.letters {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Word concatenates the letters along path.
func (g *Grid) Word(path []int) string {
	var b strings.Builder
	for _, i := range path {
		b.WriteString(g.letters[i])
	}
	return b.String()
}

// Row returns a copy of the letters in row r.
func (g *Grid) Row(r int) []string {
	out := make([]string, g.cols)
	copy(out, g.letters[r*g.cols:(r+1)*g.cols])
	return out
}

// String renders the grid one row per line with cells separated by " | ".
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for r := range g.rows {
		lines[r] = strings.Join(g.letters[r*g.cols:(r+1)*g.cols], " | ")
	}
	return strings.Join(lines, "\n")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
