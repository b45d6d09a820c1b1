package showcase

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/clip"
)

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(board clip.Clipboard, what, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{What: what, Text: text, Err: board.Write(text)}
	}
}
