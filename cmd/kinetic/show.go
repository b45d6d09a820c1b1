package main

import (
	"fmt"
	"io"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/spf13/cobra"
)

const defaultRenderWidth = 80

type showOptions struct {
	snippet bool
	plain   bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <component-id>",
		Short: "Describe a component and how to install it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.snippet, "snippet", "s", false, "Print the starter code instead of the description")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print markdown source even on a terminal")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, id string, opts *showOptions) error {
	entry, err := app.Catalog.Get(id)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up component %q", id), err, "Run 'kinetic list' or 'kinetic search <query>' to find component ids.")
	}

	out := cmd.OutOrStdout()
	if opts.snippet {
		snippet, err := app.Catalog.Snippet(entry.ID)
		if err != nil {
			return newCommandError("show", "reading starter code for "+entry.ID, err, "This is a bug in kinetic; please report it.")
		}
		_, err = io.WriteString(out, snippet)
		return err
	}

	width := terminalWidth(out)
	if width == 0 || opts.plain {
		_, err = io.WriteString(out, entry.Markdown())
		return err
	}

	if _, err := out.Write(renderMarkdown(entry.Markdown(), width)); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nInstall: %s\n", entry.InstallCommand())
	return nil
}

// renderMarkdown formats md for a terminal width columns wide.
func renderMarkdown(md string, width int) []byte {
	if width <= 0 {
		width = defaultRenderWidth
	}
	return markdown.Render(md, min(width, 100)-4, 2)
}
