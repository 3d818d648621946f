package grid

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strings"
	"unicode"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

// DefaultLetters is the alphabet Random draws from when none is given.
const DefaultLetters = "abcdefghijklmnopqrstuvwxyz"

// Parse reads a grid from r, one row per non-blank line.
//
// Cells on a line are separated by whitespace, '|' or ','. A line without any
// separator is split into single characters, so "cat" and "c a t" describe
// the same row. The output of [Grid.String] parses back to the same grid.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read grid")
	}
	return ParseRows(lines)
}

// ParseRows parses each non-blank line as one grid row. See [Parse].
func ParseRows(lines []string) (*Grid, error) {
	var rows [][]string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, splitRow(line))
	}
	return Build(rows)
}

func splitRow(line string) []string {
	if strings.IndexFunc(line, isSeparator) < 0 {
		out := make([]string, 0, len(line))
		for _, r := range line {
			out = append(out, string(r))
		}
		return out
	}
	return strings.FieldsFunc(line, isSeparator)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '|' || r == ','
}

// Random generates a rows×cols grid with cells drawn uniformly from letters.
// An empty letters string selects [DefaultLetters]. Dimensions above
// [errs.MaxGridSide] are clamped; dimensions below 1 are rejected.
func Random(rows, cols int, letters string, rng *rand.Rand) (*Grid, error) {
	rows = min(rows, errs.MaxGridSide)
	cols = min(cols, errs.MaxGridSide)
	if err := errs.ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if letters == "" {
		letters = DefaultLetters
	}
	pool := []rune(letters)

	out := make([][]string, rows)
	for r := range out {
		out[r] = make([]string, cols)
		for c := range out[r] {
			out[r][c] = string(pool[rng.IntN(len(pool))])
		}
	}
	return Build(out)
}
