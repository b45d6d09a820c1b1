package chat

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubblesAlignBySide(t *testing.T) {
	t.Parallel()

	m := New([]Message{
		{Side: Incoming, Text: "hi"},
		{Side: Outgoing, Text: "hello"},
	}, WithWidth(30))

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], " hi"), "incoming bubbles hug the left edge: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "hello "), "outgoing bubbles hug the right edge: %q", lines[1])
}

func TestTypingIndicator(t *testing.T) {
	t.Parallel()

	m := New(nil)
	cmd := m.SetTyping(true, "Ada")
	require.NotNil(t, cmd)
	assert.Nil(t, m.SetTyping(true, "Ada"), "the spinner is already running")
	assert.Contains(t, m.View(), "Ada is typing")

	m.Append(Message{Side: Incoming, Author: "Ada", Text: "done"})
	assert.False(t, m.Typing())
	assert.NotContains(t, m.View(), "typing")
	assert.Len(t, m.Messages(), 1)
}

func TestSpinnerTicksStopWhenNotTyping(t *testing.T) {
	t.Parallel()

	m := New(nil)
	m, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)

	m.SetTyping(true, "")
	_, cmd = m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd)
}
