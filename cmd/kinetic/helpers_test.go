package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/clip"
)

// executeCommand runs the root command with an isolated HOME and settings path.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", filepath.Join(home, "missing.yaml")}, args...))

	err := root.Execute()
	return buf.String(), err
}

// useClipboard swaps the system clipboard for board until the test ends.
func useClipboard(t *testing.T, board clip.Clipboard) {
	t.Helper()

	original := newClipboard
	newClipboard = func() clip.Clipboard { return board }
	t.Cleanup(func() { newClipboard = original })
}

func initGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/app\n"), 0o644))
	_, err = wt.Add("go.mod")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Kinetic",
			Email: "kinetic@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}
