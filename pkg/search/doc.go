// Package search finds dictionary words traced as paths through a grid.
//
// A path is a sequence of distinct, pairwise-adjacent cells. [Run] performs a
// breadth-first expansion of every path starting at one cell and consults a
// [trie.Trie] at each step:
//
//   - candidates shorter than [MinWordLength] characters are kept unchecked
//   - a candidate whose word is stored is recorded
//   - a candidate with no continuation in the trie is dropped (pruned)
//
// Pruning keeps the frontier proportional to the dictionary rather than to
// the number of simple paths, which grows combinatorially with the grid.
//
// To search the whole grid run once per starting cell and union the results;
// package solver does this concurrently.
//
// [Trace] recovers one path realizing a given word, and [BruteForce] is an
// unpruned reference search used for benchmarking and as a test oracle.
//
// # Concurrency
//
// Grid and trie are only read. Any number of searches may share them; each
// search owns its frontier and result set.
package search
