package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/render"
	"github.com/matzehuels/gridwords/pkg/search"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid   gridOpts
	output string // output file; stdout when empty
	format string // dot, svg, pdf, png
	edges  bool   // draw every adjacency
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(render.FormatSVG)}

	cmd := &cobra.Command{
		Use:   "render [WORD]",
		Short: "Draw a grid and a word's path with Graphviz",
		Long: `Draw a grid, and optionally the path of a word through it, with Graphviz.

Formats: dot (Graphviz source), svg (default), pdf and png. PDF and PNG
require rsvg-convert from librsvg.`,
		Example: `  gridwords render cats --grid "ca/ts" -o cats.svg
  gridwords render --random 5x5 --edges -f dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := ""
			if len(args) == 1 {
				word = args[0]
			}
			return c.runRender(cmd.Context(), word, opts)
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.edges, "edges", false, "draw every adjacency")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, word string, opts renderOpts) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	g, err := opts.grid.load(c.cfg.Letters)
	if err != nil {
		return err
	}

	var path search.Path
	if word != "" {
		tctx, cancel := c.withTimeout(ctx)
		p, ok, err := search.TraceContext(tctx, g, word)
		cancel()
		if err != nil {
			return errs.Wrap(errs.ErrCodeTimeout, err, "trace interrupted")
		}
		if !ok {
			return errs.New(errs.ErrCodeNotFound, "%q cannot be traced in this grid", word)
		}
		path = p
	}

	dot := render.ToDOT(g, path, render.Options{Edges: opts.edges, Title: word})
	data, err := render.Render(ctx, dot, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errs.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess("Rendered %s", format)
	printFile(opts.output)
	return nil
}
