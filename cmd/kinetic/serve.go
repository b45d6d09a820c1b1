package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/assist"
)

func newServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog to coding assistants over MCP (stdio)",
		Long: `Run a Model Context Protocol server on stdin/stdout. Assistants can list,
search and fetch components, and read starter code from
kinetic://components/<id> resources.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{ownsTerminal: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := assist.New(app.Catalog, app.Logger, version)
			if err := srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return newCommandError("serve", "running the assistant server", err, "Check the log file for details.")
			}
			return nil
		},
	}

	return cmd
}
