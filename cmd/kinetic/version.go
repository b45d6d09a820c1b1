package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build and catalog information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kinetic %s (%s, built %s, %s)\n", version, commit, date, runtime.Version())
			fmt.Fprintf(out, "catalog: %d components in %d categories\n", app.Catalog.Len(), len(app.Catalog.Categories()))
			return nil
		},
	}
}
