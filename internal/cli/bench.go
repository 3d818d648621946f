package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/search"
	"github.com/matzehuels/gridwords/pkg/solver"
)

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		gopts gridOpts
		dopts dictOpts
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the pruned search with exhaustive path enumeration",
		Long: fmt.Sprintf(`Compare the pruned search with exhaustive path enumeration.

Both searches run on the same grid and filtered word list. The command fails
if they disagree. Exhaustive enumeration grows factorially, so grids are
limited to %d cells; the default is a random 3x3 grid.`, search.MaxBruteForceCells),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gopts.rows == "" && gopts.input == "" && gopts.random == "" {
				gopts.random = "3x3"
			}
			return c.runBench(cmd.Context(), gopts, dopts)
		},
	}

	gopts.register(cmd)
	dopts.register(cmd)
	return cmd
}

func (c *CLI) runBench(ctx context.Context, gopts gridOpts, dopts dictOpts) error {
	g, err := gopts.load(c.cfg.Letters)
	if err != nil {
		return err
	}
	words, err := c.loadWords(ctx, dopts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Solving, then enumerating every path...")
	defer spinner.track()()
	spinner.Start()
	cmp, err := solver.New(c.cfg.Workers, c.Logger).Compare(ctx, g, words)
	spinner.Stop()
	if err != nil {
		return err
	}

	fmt.Println(renderGrid(g, nil))
	printKeyValue("pruned", cmp.Pruned.String())
	printKeyValue("exhaustive", cmp.Exhaustive.String())
	printKeyValue("speedup", fmt.Sprintf("%.1fx", cmp.Speedup()))
	printKeyValue("words", fmt.Sprint(cmp.Found))

	if !cmp.Agree() {
		printError("Searches disagree")
		if len(cmp.Missing) > 0 {
			printDetail("only exhaustive: %v", cmp.Missing)
		}
		if len(cmp.Extra) > 0 {
			printDetail("only pruned: %v", cmp.Extra)
		}
		return errs.New(errs.ErrCodeInternal, "pruned search missed %d and invented %d words", len(cmp.Missing), len(cmp.Extra))
	}
	printSuccess("Both searches found the same %d words", cmp.Found)
	return nil
}
