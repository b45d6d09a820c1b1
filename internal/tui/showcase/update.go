package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/clip"
	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.factory = m.factory.WithWidth(m.paneWidth())
		if m.selectedID == "" {
			return m, nil
		}
		return m, m.remount(m.selectedID)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case motion.TickMsg:
		if m.statusTimer.Owns(msg) {
			if m.statusTimer.Accepts(msg) && msg.Kind == kindClearStatus {
				m.status = ""
				m.statusErr = false
			}
			return m, nil
		}

	case CopiedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "copy to clipboard")
			m.status = fmt.Sprintf("copy failed: %v", msg.Err)
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("copied %s: %s", msg.What, clip.Summary(msg.Text))
			m.statusErr = false
		}
		m.statusTimer.Supersede()
		return m, m.statusTimer.Schedule(statusTTL, kindClearStatus)
	}

	return m.forward(msg)
}

// forward hands msg to the mounted preview.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.preview == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.filtering {
		return m.handleFilterKeys(msg)
	}
	if m.preview != nil && m.preview.Capturing() {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
		return m, m.mount()

	case key.Matches(msg, m.keys.Down):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.cursor = (m.cursor + 1) % len(m.entries)
		return m, m.mount()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.ClearFilter):
		if m.filter.Value() == "" {
			return m, nil
		}
		m.filter.SetValue("")
		return m, m.applyFilter()

	case key.Matches(msg, m.keys.Action):
		if m.preview == nil {
			return m, nil
		}
		return m, m.preview.Action()

	case key.Matches(msg, m.keys.CopyInstall):
		entry, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.clipboard, "install command", entry.InstallCommand())

	case key.Matches(msg, m.keys.CopySnippet):
		entry, ok := m.Selected()
		if !ok {
			return m, nil
		}
		snippet, err := m.catalog.Snippet(entry.ID)
		if err != nil {
			return m, func() tea.Msg { return CopiedMsg{What: "starter code", Err: err} }
		}
		return m, copyCmd(m.clipboard, "starter code", snippet)
	}

	return m, nil
}

// handleFilterKeys edits the filter. Enter keeps the filter, esc drops it.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		return m, m.applyFilter()
	case tea.KeyUp, tea.KeyDown:
		m.filtering = false
		m.filter.Blur()
		return m.handleKeyPress(msg)
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.applyFilter())
}
