package cli

import (
	"github.com/spf13/cobra"

	"github.com/SharadhNaidu/mailcanvas/internal/server"
)

// serveCommand creates the serve command: run the read-only preview server
// over the configured document store.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve document previews over HTTP",
		Long: `Serve document previews over HTTP.

Endpoints:
  GET /documents                   list stored documents
  GET /documents/{name}            document JSON
  GET /documents/{name}/preview    compiled HTML preview
  GET /documents/{name}/warnings   export warnings and diagnostics
  GET /documents/{name}/outline.svg  block hierarchy diagram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			artifacts := c.newCache(ctx, false)
			defer artifacts.Close()

			srv := server.New(st, artifacts, c.Logger)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if listen == "" {
			listen = c.Config.Preview.Listen
		}
	}

	return cmd
}
