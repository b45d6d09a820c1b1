package showcase

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	categoryStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			PaddingLeft(1).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	listStyle = lipgloss.NewStyle().
			Width(listWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(mutedColor)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginBottom(1)

	previewStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(1)

	installStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			MarginTop(1)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingLeft(2).
			PaddingTop(1)
)
