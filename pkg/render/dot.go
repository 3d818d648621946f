package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/gridwords/pkg/grid"
)

// Options configures grid rendering.
type Options struct {
	// Edges draws every adjacency as a faint line, not just the path.
	Edges bool

	// Title is drawn above the grid when set.
	Title string
}

const (
	cellSpacing = 1.2 // inches between cell centers
	pathColor   = "#e4572e"
	startColor  = "#f3a712"
)

// ToDOT converts g to Graphviz DOT. Cells of path are highlighted and joined
// by numbered edges in path order; a nil path draws the bare grid.
// Indices outside the grid are ignored.
func ToDOT(g *grid.Grid, path []int, opts Options) string {
	step := make(map[int]int, len(path))
	for i, c := range path {
		if g.Contains(c) {
			if _, seen := step[c]; !seen {
				step[c] = i
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, width=0.8, height=0.8, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#cccccc\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=20;\n", opts.Title)
	}
	buf.WriteString("\n")

	for i := range g.Size() {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(i), strings.Join(cellAttrs(g, i, step), ", "))
	}

	if opts.Edges {
		buf.WriteString("\n")
		for i := range g.Size() {
			for _, n := range g.Neighbors(i) {
				if n > i {
					fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(i), nodeID(n))
				}
			}
		}
	}

	if len(path) > 1 {
		buf.WriteString("\n")
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if !g.Contains(a) || !g.Contains(b) {
				continue
			}
			fmt.Fprintf(&buf, "  %s -- %s [color=%q, penwidth=4, dir=forward, label=\"%d\", fontcolor=%q];\n",
				nodeID(a), nodeID(b), pathColor, i, pathColor)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return fmt.Sprintf("c%d", i) }

func cellAttrs(g *grid.Grid, i int, step map[int]int) []string {
	r, c := g.Coord(i)
	// neato's y axis points up, so rows are negated to keep row 0 on top
	attrs := []string{
		fmt.Sprintf("label=%q", g.Letter(i)),
		fmt.Sprintf("pos=\"%.2f,%.2f!\"", float64(c)*cellSpacing, float64(-r)*cellSpacing),
	}
	s, onPath := step[i]
	switch {
	case onPath && s == 0:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", startColor), "penwidth=3")
	case onPath:
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", pathColor), "fontcolor=white", "penwidth=3")
	}
	return attrs
}
