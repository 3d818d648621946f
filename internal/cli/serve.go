package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridwords/pkg/server"
	"github.com/matzehuels/gridwords/pkg/solver"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		dopts  dictOpts
		listen string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP.

The word list is loaded once at startup. Endpoints:

  POST /v1/solve   {"rows": [["c","a"],["t","s"]]} or {"grid": "ca\nts"}
  POST /v1/trace   {"grid": "ca\nts", "word": "cats"}
  GET  /healthz
  GET  /version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			words, err := c.loadWords(ctx, dopts)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = c.cfg.Listen
			}
			srv := server.New(solver.New(c.cfg.Workers, c.Logger), words, server.Options{
				Logger:  c.Logger,
				Timeout: c.cfg.Timeout,
			})
			return srv.ListenAndServe(ctx, listen)
		},
	}

	dopts.register(cmd)
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default: from config)")
	return cmd
}
