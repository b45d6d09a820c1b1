// Package clip copies install commands and starter code to the system
// clipboard.
package clip

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	Write(text string) error
}

// System is the clipboard of the running desktop session.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() System {
	return System{}
}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard, used in tests and headless sessions.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory returns an empty in-process clipboard. When err is non-nil every
// write fails with it.
func NewMemory(err error) *Memory {
	return &Memory{err: err}
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Summary returns a one-line description of copied text for status lines.
func Summary(text string) string {
	lines := strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
	if lines == 1 {
		return fmt.Sprintf("%q", text)
	}
	return fmt.Sprintf("%d lines", lines)
}
