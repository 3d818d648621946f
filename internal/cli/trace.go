package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
	"github.com/matzehuels/gridwords/pkg/search"
)

// traceCommand creates the trace command.
func (c *CLI) traceCommand() *cobra.Command {
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "trace WORD",
		Short: "Show where a word lies in a grid",
		Long: `Show where a word lies in a grid.

The word is matched against the grid directly, without a dictionary. When it
can be traced, the grid is printed with the path highlighted and the visited
cells are listed as row,col pairs.`,
		Example: `  gridwords trace cats --grid "ca/ts"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(c.cfg.Letters)
			if err != nil {
				return err
			}
			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()
			return runTrace(ctx, cmd.OutOrStdout(), g, args[0])
		},
	}
	opts.register(cmd)
	return cmd
}

func runTrace(ctx context.Context, w io.Writer, g *grid.Grid, word string) error {
	p, ok, err := search.TraceContext(ctx, g, word)
	if err != nil {
		return errs.Wrap(errs.ErrCodeTimeout, err, "trace interrupted")
	}
	fmt.Fprintln(w, renderGrid(g, p))
	if !ok {
		printWarning("%q cannot be traced in this grid", word)
		return nil
	}
	printSuccess("Traced %q", word)
	printDetail("%s", formatPath(g, p))
	return nil
}

// formatPath lists the cells of p as "(row,col) → (row,col) ...".
func formatPath(g *grid.Grid, p search.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		r, col := g.Coord(c)
		parts[i] = fmt.Sprintf("(%d,%d)", r, col)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
