package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified([]byte("a\nb\n"), []byte("a\nb\n"), "old", "new"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	out := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "current", "snippet")

	assert.Contains(t, out, "--- current\n")
	assert.Contains(t, out, "+++ snippet\n")
	assert.Contains(t, out, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, out, " line1\n")
	assert.Contains(t, out, "-line2\n")
	assert.Contains(t, out, "+modified\n")
	assert.Contains(t, out, " line3\n")
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	out := Unified([]byte("package main\n"), []byte("package mine\n"), "a", "b")
	assert.Contains(t, out, "-package main\n")
	assert.Contains(t, out, "+package mine\n")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var a, b strings.Builder
	for i := 0; i < 3000; i++ {
		fmt.Fprintf(&a, "old %d\n", i)
		fmt.Fprintf(&b, "new %d\n", i)
	}
	out := Unified([]byte(a.String()), []byte(b.String()), "a", "b")
	assert.Contains(t, out, truncateMessage)
}

func TestStat(t *testing.T) {
	t.Parallel()

	added, removed := Stat([]byte("a\nb\nc\n"), []byte("a\nx\ny\nc\n"))
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}
