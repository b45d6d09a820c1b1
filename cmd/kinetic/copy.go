package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/clip"
)

type copyOptions struct {
	snippet bool
}

func newCopyCmd(app *AppContext) *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy <component-id>",
		Short: "Copy a component's install command to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.snippet, "snippet", "s", false, "Copy the starter code instead")

	return cmd
}

func runCopy(cmd *cobra.Command, app *AppContext, id string, opts *copyOptions) error {
	entry, err := app.Catalog.Get(id)
	if err != nil {
		return newCommandError("copy", fmt.Sprintf("looking up component %q", id), err, "Run 'kinetic list' to see component ids.")
	}

	what, text := "install command", entry.InstallCommand()
	if opts.snippet {
		what = "starter code"
		text, err = app.Catalog.Snippet(entry.ID)
		if err != nil {
			return newCommandError("copy", "reading starter code for "+entry.ID, err, "This is a bug in kinetic; please report it.")
		}
	}

	if err := app.Clipboard.Write(text); err != nil {
		app.Logger.Error(err, "clipboard write failed")
		return newCommandError("copy", "writing to the clipboard", err,
			fmt.Sprintf("Install xclip, xsel or wl-clipboard, or run 'kinetic show %s' and copy by hand.", entry.ID))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s for %s (%s).\n", what, entry.ID, clip.Summary(text))
	return nil
}
