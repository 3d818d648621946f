package trie

import (
	errs "github.com/matzehuels/gridwords/pkg/errors"
)

// Alphabet maps each supported character to a dense index.
//
// The zero value is an empty alphabet that supports no characters.
type Alphabet struct {
	index map[rune]int
	runes []rune
}

// NewAlphabet builds an alphabet from the characters of letters in first-seen
// order. Letters may hold more than one character (a "qu" cell contributes
// both 'q' and 'u'); duplicates are ignored.
func NewAlphabet(letters []string) Alphabet {
	a := Alphabet{index: make(map[rune]int)}
	for _, l := range letters {
		for _, r := range l {
			if _, ok := a.index[r]; ok {
				continue
			}
			a.index[r] = len(a.runes)
			a.runes = append(a.runes, r)
		}
	}
	return a
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int { return len(a.runes) }

// Index returns the dense index of r.
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether every character of word is in the alphabet.
func (a Alphabet) Contains(word string) bool {
	for _, r := range word {
		if _, ok := a.index[r]; !ok {
			return false
		}
	}
	return true
}

// Encode converts word to its sequence of alphabet indices.
// It returns an UNSUPPORTED_CHARACTER error naming the first character that is
// not in the alphabet.
func (a Alphabet) Encode(word string) ([]int, error) {
	out := make([]int, 0, len(word))
	for _, r := range word {
		i, ok := a.index[r]
		if !ok {
			return nil, errs.UnsupportedCharacter(string(r), word)
		}
		out = append(out, i)
	}
	return out, nil
}

// String returns the alphabet's characters in index order.
func (a Alphabet) String() string { return string(a.runes) }
