package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

type listOptions struct {
	category   string
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only list components in this category")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	entries := app.Catalog.List()
	if opts.category != "" {
		entries = app.Catalog.ByCategory(opts.category)
		if len(entries) == 0 {
			err := kineticerrors.NewNotFoundError("category", opts.category)
			return newCommandError("list", fmt.Sprintf("filtering by category %q", opts.category), err,
				"Known categories: "+strings.Join(app.Catalog.Categories(), ", ")+".")
		}
	}
	app.Logger.WithFields(map[string]any{"count": len(entries), "category": opts.category}).Debug("listing components")

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), entries)
	}
	return renderListTable(cmd.OutOrStdout(), entries)
}

func renderListTable(out io.Writer, entries []catalog.Entry) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tDESCRIPTION")

	descWidth := descriptionWidth(out)
	for _, e := range entries {
		desc := e.Description
		if descWidth > 0 {
			desc = runewidth.Truncate(desc, descWidth, "…")
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, desc)
	}

	return writer.Flush()
}

type listJSONComponent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	ImportPath  string   `json:"import_path"`
	Install     string   `json:"install"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(out io.Writer, entries []catalog.Entry) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, e := range entries {
		payload.Components[i] = listJSONComponent{
			ID:          e.ID,
			Name:        e.Name,
			Category:    e.Category,
			ImportPath:  e.ImportPath(),
			Install:     e.InstallCommand(),
			Description: e.Description,
			Tags:        e.Tags,
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// terminalWidth returns the width of out when it is a terminal, or 0.
func terminalWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// descriptionWidth leaves room for the id, name and category columns.
// Piped output is never truncated.
func descriptionWidth(out io.Writer) int {
	width := terminalWidth(out)
	if width == 0 {
		return 0
	}
	return max(width-60, 20)
}
