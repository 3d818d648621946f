package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/solver"
)

const (
	formatText = "text"
	formatJSON = "json"

	// sampleSize is how many words the text summary shows without --all.
	sampleSize = 20
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	grid    gridOpts
	dict    dictOpts
	format  string // text or json
	output  string // file receiving the found words
	workers int
	all     bool // print every word, not a sample
	browse  bool // open the interactive browser
}

// solveOutput is the JSON document written by solve --format json.
type solveOutput struct {
	Grid  [][]string   `json:"grid"`
	Words []string     `json:"words"`
	Stats solver.Stats `json:"stats"`
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find every dictionary word in a grid",
		Long: `Find every dictionary word in a grid.

A word is found when its letters can be read by walking between neighbouring
cells (horizontally, vertically or diagonally) without visiting a cell twice.
Only words of three or more letters are reported.

The grid comes from --grid, --input or --random; without any of them a random
4x4 grid is generated. The word list comes from --dict or the config file and
may be a file, "-" for stdin, or a URL (downloads are cached).`,
		Example: `  gridwords solve --grid "ca/ts" --dict words.txt
  gridwords solve --random 5x5 --seed 42 --format json --out found.json
  gridwords solve --input board.txt --browse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return errs.New(errs.ErrCodeInvalidFormat, "unknown format %q (want text or json)", opts.format)
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	opts.grid.register(cmd)
	opts.dict.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "also write the found words to this file")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel searches (default: from config, 0 = all CPUs)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "print every found word instead of a sample")
	cmd.Flags().BoolVarP(&opts.browse, "browse", "b", false, "browse the found words interactively")
	cmd.MarkFlagsMutuallyExclusive("browse", "format")

	return cmd
}

// runSolve loads the grid and word list, solves, and reports.
func (c *CLI) runSolve(ctx context.Context, w io.Writer, opts solveOpts) error {
	g, err := opts.grid.load(c.cfg.Letters)
	if err != nil {
		return err
	}
	words, err := c.loadWords(ctx, opts.dict)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers == 0 {
		workers = c.cfg.Workers
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	spinner := newSpinner(ctx, fmt.Sprintf("Searching %dx%d grid...", g.Rows(), g.Cols()))
	if opts.format == formatText && !opts.browse {
		defer spinner.track()()
		spinner.Start()
	}
	res, err := solver.New(workers, c.Logger).Solve(ctx, g, words)
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := writeWords(opts.output, opts.format, g, res); err != nil {
			return err
		}
	}

	switch {
	case opts.browse:
		_, err := tea.NewProgram(NewWordBrowserModel(g, res.Words), tea.WithAltScreen()).Run()
		return err
	case opts.format == formatJSON:
		return encodeJSON(w, newSolveOutput(g, res))
	}

	printSolveText(w, g, res, opts.all)
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

func newSolveOutput(g *grid.Grid, res *solver.Result) solveOutput {
	rows := make([][]string, g.Rows())
	for r := range rows {
		rows[r] = g.Row(r)
	}
	words := res.Words
	if words == nil {
		words = []string{}
	}
	return solveOutput{Grid: rows, Words: words, Stats: res.Stats}
}

func printSolveText(w io.Writer, g *grid.Grid, res *solver.Result, all bool) {
	fmt.Fprintln(w, renderGrid(g, nil))
	printSuccess("Found %d words", len(res.Words))
	printStats(
		fmt.Sprintf("%d cells", res.Stats.Cells),
		fmt.Sprintf("%d letters", res.Stats.Alphabet),
		fmt.Sprintf("%d/%d words usable", res.Stats.Filtered, res.Stats.Dictionary),
		fmt.Sprintf("%d trie nodes", res.Stats.TrieNodes),
		(res.Stats.TrieTime + res.Stats.SearchTime).Round(time.Microsecond).String(),
	)
	if len(res.Words) == 0 {
		return
	}

	shown := res.Words
	if !all && len(shown) > sampleSize {
		shown = shown[:sampleSize]
	}
	fmt.Fprintln(w, renderWordTable(shown))
	if len(shown) < len(res.Words) {
		printNextStep(fmt.Sprintf("Showing the %d longest of %d words, see all with", len(shown), len(res.Words)), "gridwords solve ... --all")
	}
}

// writeWords writes the found words to path, one per line for text or as the
// JSON document.
func writeWords(path, format string, g *grid.Grid, res *solver.Result) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if format == formatJSON {
		return encodeJSON(f, newSolveOutput(g, res))
	}
	if len(res.Words) == 0 {
		return nil
	}
	_, err = io.WriteString(f, strings.Join(res.Words, "\n")+"\n")
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
