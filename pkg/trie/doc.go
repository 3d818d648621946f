// Package trie provides a prefix tree over a small, fixed alphabet.
//
// The trie answers two independent questions about a string in a single
// descent of O(len(key)):
//
//   - isWord: the string itself was inserted
//   - hasContinuation: some longer inserted word starts with the string
//
// The second answer is what makes pruned grid search cheap: a search path
// whose letters have no continuation can be abandoned immediately.
//
// # Alphabet
//
// Every trie is built for an [Alphabet], a dense mapping from characters to
// indices [0, Len()). Each node owns exactly Len() child slots, so the
// alphabet should be as small as possible - typically the distinct
// characters of one grid:
//
//	alpha := trie.NewAlphabet(g.Alphabet())
//	t := trie.New(alpha)
//	_ = t.Insert("cat")
//	isWord, more, err := t.Lookup("ca") // false, true, nil
//
// Strings containing characters outside the alphabet are rejected by both
// [Trie.Insert] and [Trie.Lookup] with an UNSUPPORTED_CHARACTER error. Callers
// are expected to filter words with [Alphabet.Contains] before inserting.
//
// # Concurrency
//
// A Trie is not safe for concurrent writes. Once built it may be shared by any
// number of goroutines calling Lookup.
package trie
