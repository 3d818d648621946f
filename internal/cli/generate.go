package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := gridOpts{random: fmt.Sprintf("%dx%d", defaultSide, defaultSide)}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random grid",
		Long: `Print a random grid, one row per line, in the format read by --input.

Sides are clamped to 10. The same --seed always produces the same grid.`,
		Example: `  gridwords generate --random 5x5 --seed 7 > board.txt
  gridwords solve --input board.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(c.cfg.Letters)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), plainGrid(g))
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.random, "random", "r", opts.random, "grid size RxC")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&opts.letters, "letters", "", "letters to draw from (default: from config)")
	return cmd
}
