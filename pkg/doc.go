// Package pkg provides the core libraries for gridwords.
//
// # Overview
//
// gridwords finds every dictionary word that can be traced through a grid of
// letters by stepping between neighbouring cells, diagonals included, without
// visiting a cell twice. The pkg directory is organized into three areas:
//
//  1. Domain - [grid], [trie], [search] and [solver]
//  2. Input - [dictionary], [cache] and [config]
//  3. Output - [render] and [server]
//
// # Architecture
//
// The typical data flow through gridwords:
//
//	Word list (file, stdin or URL)
//	         ↓
//	    [dictionary] package (load, download through [cache])
//	         ↓
//	    [solver] package (filter by the grid's alphabet, build the [trie])
//	         ↓
//	    [search] package (pruned breadth-first search per start cell)
//	         ↓
//	    ranked words, JSON, DOT/SVG/PDF/PNG
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/gridwords/pkg/grid"
//	    "github.com/matzehuels/gridwords/pkg/solver"
//	)
//
//	g, _ := grid.ParseRows([]string{"ca", "ts"})
//	res, _ := solver.New(0, nil).Solve(context.Background(), g, words)
//	fmt.Println(res.Words) // [cats scat cat]
//
// # Main Packages
//
// [grid] - Rectangular letter grids with precomputed 8-way adjacency. Cells
// may hold multi-letter tiles such as "qu".
//
// [trie] - Prefix tree over a fixed alphabet derived from the grid, with
// prefix and word lookups.
//
// [search] - Breadth-first search from one start cell that abandons any
// partial path whose letters are not a dictionary prefix. Also provides
// Trace for a single word and an exhaustive BruteForce for cross-checks.
//
// [solver] - Whole-grid solve: dictionary filtering, trie construction and a
// bounded worker pool running one search per cell.
//
// [dictionary] - Word list loading from files, stdin and HTTP with retries.
//
// [cache] - File and Redis backends for downloaded word lists.
//
// [config] - TOML settings file.
//
// [render] - Graphviz drawings of a grid and a word's path.
//
// [server] - HTTP API over the solver.
//
// [observability] - Hooks for solve, cache and HTTP events.
//
// [errors] - Coded errors and input validation.
//
// [buildinfo] - Version information injected at build time.
package pkg
