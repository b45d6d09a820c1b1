package showcase

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the current model state.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderPreview())
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("kinetic showcase"),
		body,
		m.renderFooter(),
	)
}

// renderList renders the filter and the entries grouped by category.
func (m Model) renderList() string {
	var rows []string
	if m.filtering || m.filter.Value() != "" {
		rows = append(rows, m.filter.View())
	}

	if len(m.entries) == 0 {
		rows = append(rows, emptyStateStyle.Render("no matches"))
		return listStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	category := ""
	grouped := m.filter.Value() == ""
	for i, e := range m.entries {
		if grouped && e.Category != category {
			category = e.Category
			rows = append(rows, categoryStyle.Render(strings.ToUpper(category)))
		}
		name := runewidth.Truncate(e.Name, listWidth-4, "…")
		if i == m.cursor {
			rows = append(rows, selectedItemStyle.Render(name))
		} else {
			rows = append(rows, itemStyle.Render(name))
		}
	}
	return listStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderPreview renders the mounted widget with its name and install line.
func (m Model) renderPreview() string {
	entry, ok := m.Selected()
	if !ok || m.preview == nil {
		return previewStyle.Render(emptyStateStyle.Render("nothing selected"))
	}

	width := m.paneWidth()
	parts := []string{
		previewTitleStyle.Render(entry.Name),
		lipgloss.NewStyle().Width(width).Foreground(mutedColor).Render(entry.Description),
		"",
		m.preview.View(),
		installStyle.Render(entry.InstallCommand()),
	}
	if hint := m.preview.Hint(); hint != "" {
		parts = append(parts, hintStyle.Render("space: "+hint))
	}
	return previewStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderFooter renders the status line and key help.
func (m Model) renderFooter() string {
	lines := []string{}
	if m.status != "" {
		style := statusOKStyle
		if m.statusErr {
			style = statusErrStyle
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return footerStyle.Render(strings.Join(lines, "\n"))
}
