package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/project"
	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

type addOptions struct {
	dir   string
	force bool
}

func newAddCmd(app *AppContext) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <component-id>",
		Short: "Write a component's starter code into the current project",
		Long: `Write the starter program for a component into the git project containing the
current directory. The file is named <component-id>.go and placed in --dir,
relative to the project root. An existing file with different content is only
replaced with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory inside the project to write to")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file with different content")

	return cmd
}

func runAdd(cmd *cobra.Command, app *AppContext, id string, opts *addOptions) error {
	log := app.Logger.WithFields(map[string]any{"component": id, "dir": opts.dir})

	entry, err := app.Catalog.Get(id)
	if err != nil {
		return newCommandError("add", fmt.Sprintf("looking up component %q", id), err, "Run 'kinetic list' to see component ids.")
	}

	snippet, err := app.Catalog.Snippet(entry.ID)
	if err != nil {
		return newCommandError("add", "reading starter code for "+entry.ID, err, "This is a bug in kinetic; please report it.")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return newCommandError("add", "determining the working directory", err, "Run kinetic from inside your project.")
	}

	root, err := project.FindRoot(cwd)
	if err != nil {
		return newCommandError("add", "locating the project root", err, "Run 'git init' first, or cd into a git repository.")
	}
	log.WithFields(map[string]any{"root": root}).Debug("project root found")

	out := cmd.OutOrStdout()
	if dirty, err := project.Dirty(root); err != nil {
		log.Warn("could not read git status: " + err.Error())
	} else if dirty {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: the working tree has uncommitted changes.")
	}

	dir := opts.dir
	if dir != "" && !filepath.IsAbs(dir) {
		// --dir is relative to where the user stands, not to the root.
		if rel, err := filepath.Rel(root, filepath.Join(cwd, dir)); err == nil {
			dir = rel
		}
	}

	result, err := project.Install(root, dir, entry, snippet, opts.force)
	if err != nil {
		var conflict *kineticerrors.ConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(out, conflict.Diff)
			return newCommandError("add", "writing "+conflict.Path, err, "Review the diff above and re-run with --force to overwrite.")
		}
		return newCommandError("add", "writing starter code", err, "Check that --dir points inside the project and is writable.")
	}

	rel, relErr := filepath.Rel(root, result.Path)
	if relErr != nil {
		rel = result.Path
	}

	switch result.Action {
	case project.ActionUnchanged:
		fmt.Fprintf(out, "%s is already up to date.\n", rel)
	case project.ActionOverwritten:
		fmt.Fprintf(out, "Overwrote %s (+%d -%d).\n", rel, result.Added, result.Removed)
	default:
		fmt.Fprintf(out, "Created %s (%d lines).\n", rel, result.Added)
	}
	fmt.Fprintf(out, "\nNext:\n  %s\n  go run ./%s\n", entry.InstallCommand(), filepath.ToSlash(filepath.Dir(rel)))

	log.WithFields(map[string]any{"path": result.Path, "action": string(result.Action)}).Info("starter code written")
	return nil
}
