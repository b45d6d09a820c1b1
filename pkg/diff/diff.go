// Package diff renders line diffs between an existing file and the content
// about to replace it.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Unified returns a unified-style diff from current to proposed, or "" when
// they are identical. Lines are compared whole.
func Unified(current, proposed []byte, currentLabel, proposedLabel string) string {
	if bytes.Equal(current, proposed) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(current), string(proposed))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", currentLabel)
	fmt.Fprintf(&buf, "+++ %s\n", proposedLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(current), countLines(proposed))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// Stat counts inserted and deleted lines.
func Stat(current, proposed []byte) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(current), string(proposed))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
