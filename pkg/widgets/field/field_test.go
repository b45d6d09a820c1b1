package field

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFloatsWhenFocusedOrFilled(t *testing.T) {
	t.Parallel()

	m := New("Email")
	assert.False(t, m.Floating())

	m.Focus()
	assert.True(t, m.Floating())

	m.Blur()
	assert.False(t, m.Floating())

	m.SetValue("ada@example.com")
	assert.True(t, m.Floating(), "a filled field keeps the label up")
}

func TestLabelPositionInView(t *testing.T) {
	t.Parallel()

	m := New("Email")
	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.NotContains(t, lines[0], "Email")
	assert.Contains(t, lines[2], "Email", "the label is the placeholder while resting")

	m.SetValue("x")
	lines = strings.Split(m.View(), "\n")
	assert.Contains(t, lines[0], "Email")
}

func TestTypingUpdatesValue(t *testing.T) {
	t.Parallel()

	m := New("Name")
	m.Focus()
	for _, r := range "ada" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "ada", m.Value())
}

func TestValidationErrorIsShown(t *testing.T) {
	t.Parallel()

	m := New("Email", WithValidator(func(s string) error {
		if !strings.Contains(s, "@") {
			return errors.New("missing @")
		}
		return nil
	}))
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ada")})
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "missing @")
}
