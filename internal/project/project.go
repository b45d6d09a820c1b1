// Package project places starter code into the user's Go project.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	"github.com/alexisbeaulieu97/kinetic/pkg/diff"
	kineticerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

const fileMode os.FileMode = 0o644

// Action reports what Install did with the destination file.
type Action string

const (
	ActionCreated     Action = "created"
	ActionUnchanged   Action = "unchanged"
	ActionOverwritten Action = "overwritten"
)

// Result describes a completed install.
type Result struct {
	Path   string
	Action Action
	Added   int
	Removed int
}

// FindRoot returns the worktree root of the git repository containing start.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", kineticerrors.NewNotFoundError("git repository", abs)
		}
		return "", fmt.Errorf("open repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// Dirty reports whether the worktree at root has uncommitted changes.
func Dirty(root string) (bool, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return false, fmt.Errorf("open repository at %s: %w", root, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("read status: %w", err)
	}
	return !status.IsClean(), nil
}

// Install writes the starter code for entry to <root>/<dir>/<id>.go.
//
// An existing file with identical content is left alone. A differing file is
// only replaced when force is set; otherwise a ConflictError carrying a
// unified diff is returned.
func Install(root, dir string, entry catalog.Entry, snippet string, force bool) (Result, error) {
	target, err := resolveTarget(root, dir, entry.SnippetFile())
	if err != nil {
		return Result{}, err
	}

	result := Result{Path: target, Action: ActionCreated}

	proposed := []byte(snippet)
	current, err := os.ReadFile(target)
	switch {
	case err == nil:
		if bytes.Equal(current, proposed) {
			result.Action = ActionUnchanged
			return result, nil
		}
		rel, _ := filepath.Rel(root, target)
		if !force {
			return Result{}, kineticerrors.NewConflictError(target, diff.Unified(current, proposed, rel, entry.ID+" starter"))
		}
		result.Action = ActionOverwritten
		result.Added, result.Removed = diff.Stat(current, proposed)
	case errors.Is(err, os.ErrNotExist):
		result.Added, _ = diff.Stat(nil, proposed)
	default:
		return Result{}, fmt.Errorf("read %s: %w", target, err)
	}

	if err := writeAtomic(target, proposed); err != nil {
		return Result{}, err
	}
	return result, nil
}

func resolveTarget(root, dir, name string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if filepath.IsAbs(dir) {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return "", kineticerrors.NewValidationError("dir", "must be inside the project", err)
		}
		dir = rel
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", kineticerrors.NewValidationError("dir", fmt.Sprintf("%s is outside the project", dir), nil)
	}
	return filepath.Join(root, clean, name), nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", tmpPath, err)
	}
	return nil
}
