package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

// View renders the current slide inside a card with navigation dots.
func (m Model) View() string {
	slide, ok := m.Current()
	if !ok {
		return components.MutedText("no testimonials").View()
	}
	palette := m.theme.Palette

	quote := lipgloss.NewStyle().Italic(true).Width(max(m.width-4, 10)).Render("“" + slide.Quote + "”")
	author := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base).Render(slide.Author)
	if slide.Role != "" {
		author += lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(" · " + slide.Role)
	}

	dots := make([]string, len(m.slides))
	for i := range m.slides {
		if i == m.index {
			dots[i] = lipgloss.NewStyle().Foreground(palette.Primary.Base).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(palette.Neutral.Muted).Render("○")
		}
	}
	nav := "‹ " + strings.Join(dots, " ") + " ›"
	if m.paused() {
		nav += lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render("  paused")
	}

	body := components.VStack(
		components.NewText(quote),
		components.NewText(author),
		components.NewText(nav),
	).WithGap(1)

	card := components.NewCard(body).WithBorder(components.BorderVariantRounded).WithWidth(m.width)
	return components.Render(card, components.DefaultContext().WithTheme(m.theme))
}
