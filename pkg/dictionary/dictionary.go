package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	errs "github.com/matzehuels/gridwords/pkg/errors"
)

// DefaultURL is a 10,000 word English list used when no dictionary is
// configured.
const DefaultURL = "https://www.mit.edu/~ecprice/wordlist.10000"

// Stdin is the path that makes LoadFile read standard input.
const Stdin = "-"

// maxLineSize bounds a single line of a word list.
const maxLineSize = 1 << 20

// Load reads a word list from r.
func Load(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read word list")
	}
	return words, nil
}

// LoadFile reads a word list from path, or from stdin when path is "-".
func LoadFile(path string) ([]string, error) {
	if path == Stdin {
		return Load(os.Stdin)
	}
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "dictionary %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "open dictionary %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Open loads a word list from source: a URL is fetched through c, anything
// else is treated as a file path. refresh bypasses the download cache.
func Open(ctx context.Context, source string, c *Client, refresh bool) ([]string, error) {
	if !errs.IsURL(source) {
		return LoadFile(source)
	}
	if err := errs.ValidateURL(source); err != nil {
		return nil, err
	}
	if c == nil {
		c = NewClient(nil, nil, 0)
	}
	data, err := c.Fetch(ctx, source, refresh)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}
