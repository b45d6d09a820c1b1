package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search components by id, name and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, app, strings.Join(args, " "))
		},
	}

	return cmd
}

func runSearch(cmd *cobra.Command, app *AppContext, query string) error {
	if strings.TrimSpace(query) == "" {
		return newCommandError("search", "validating query", errors.New("query cannot be empty"), "Pass a word such as 'timer' or 'button'.")
	}

	matches := app.Catalog.Search(query)
	app.Logger.WithFields(map[string]any{"query": query, "matches": len(matches)}).Debug("search")

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(out, "No components match %q.\n", query)
		fmt.Fprintln(out, "\nRun 'kinetic list' to see every component.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY")
	for _, m := range matches {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", m.Entry.ID, m.Entry.Name, m.Entry.Category)
	}
	return writer.Flush()
}
