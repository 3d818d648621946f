package trie

import (
	"slices"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

// node has one child slot per alphabet character; a nil slot is an absent
// child. Every non-nil child is owned by exactly one parent.
type node struct {
	children []*node
	word     bool
}

func newNode(n int) *node {
	return &node{children: make([]*node, n)}
}

func (n *node) hasChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

// Trie is a prefix tree keyed by the characters of a fixed [Alphabet].
//
// The zero value is not usable - use [New].
type Trie struct {
	alpha Alphabet
	root  *node
	words int
	nodes int
}

// New creates an empty trie for alpha.
func New(alpha Alphabet) *Trie {
	return &Trie{
		alpha: alpha,
		root:  newNode(alpha.Len()),
		nodes: 1,
	}
}

// Alphabet returns the alphabet the trie was built with.
func (t *Trie) Alphabet() Alphabet { return t.alpha }

// Len returns the number of distinct words stored.
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of nodes, including the root.
func (t *Trie) Nodes() int { return t.nodes }

// Insert adds word to the trie.
//
// Every character of word must belong to the trie's alphabet; otherwise an
// UNSUPPORTED_CHARACTER error is returned and the trie is left unchanged.
// The empty word is rejected with INVALID_INPUT. Inserting a word that is
// already present has no observable effect.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return errs.New(errs.ErrCodeInvalidInput, "cannot insert empty word")
	}
	idx, err := t.alpha.Encode(word)
	if err != nil {
		return err
	}

	n := t.root
	for _, i := range idx {
		if n.children[i] == nil {
			n.children[i] = newNode(t.alpha.Len())
			t.nodes++
		}
		n = n.children[i]
	}
	if !n.word {
		n.word = true
		t.words++
	}
	return nil
}

// Lookup reports whether key is a stored word and whether any stored word
// strictly extends it.
//
// If the descent reaches an absent child, Lookup returns (false, false): no
// stored word has key as a prefix. An UNSUPPORTED_CHARACTER error is returned
// when key contains a character outside the alphabet, even if the branch would
// have died earlier.
func (t *Trie) Lookup(key string) (isWord, hasContinuation bool, err error) {
	idx, err := t.alpha.Encode(key)
	if err != nil {
		return false, false, err
	}
	n := t.descend(idx)
	if n == nil {
		return false, false, nil
	}
	return n.word, n.hasChildren(), nil
}

// Contains reports whether word is stored. Unsupported characters simply
// yield false.
func (t *Trie) Contains(word string) bool {
	ok, _, err := t.Lookup(word)
	return err == nil && ok
}

func (t *Trie) descend(idx []int) *node {
	n := t.root
	for _, i := range idx {
		n = n.children[i]
		if n == nil {
			return nil
		}
	}
	return n
}

// Words returns every stored word in lexical order.
func (t *Trie) Words() []string {
	out := make([]string, 0, t.words)
	buf := make([]rune, 0, 16)
	var walk func(n *node)
	walk = func(n *node) {
		if n.word {
			out = append(out, string(buf))
		}
		for i, c := range n.children {
			if c == nil {
				continue
			}
			buf = append(buf, t.alpha.runes[i])
			walk(c)
			buf = buf[:len(buf)-1]
		}
	}
	walk(t.root)
	slices.Sort(out)
	return out
}
