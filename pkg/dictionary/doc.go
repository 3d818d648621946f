// Package dictionary loads word lists for the solver.
//
// A word list is plain text with one word per line. Surrounding whitespace is
// trimmed and blank lines are skipped; no case folding is applied, so the
// list must use the same case as the grid.
//
// # Sources
//
//   - [Load] reads from any io.Reader
//   - [LoadFile] reads a file, or stdin when the path is "-"
//   - [Client.Fetch] downloads a list over HTTP, caching the raw bytes and
//     retrying transient failures
//   - [Open] picks one of the above from a source string
//
// # Usage
//
//	c := dictionary.NewClient(fileCache, nil, 24*time.Hour)
//	words, err := dictionary.Open(ctx, dictionary.DefaultURL, c, false)
package dictionary
