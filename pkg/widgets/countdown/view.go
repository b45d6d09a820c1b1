package countdown

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const flashVisible = 0.25

// View renders the label, the digit groups and the discount badge.
func (m Model) View() string {
	palette := m.theme.Palette

	if m.state.Ended {
		ended := lipgloss.NewStyle().Bold(true).Foreground(palette.Neutral.Base).Render("Offer ended")
		return m.frame(ended)
	}

	digitColour := palette.Primary.Base
	if m.state.Urgent {
		digitColour = palette.Danger.Base
	}

	groups := make([]string, 0, 5)
	for i, u := range []Unit{Hours, Minutes, Seconds} {
		if i > 0 {
			groups = append(groups, lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(":"))
		}
		style := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(digitColour)
		if m.Flash(u) > flashVisible {
			style = style.Background(palette.Accent.Muted).Foreground(palette.Accent.OnBase)
		}
		groups = append(groups, style.Render(fmt.Sprintf("%02d", m.state.value(u))))
	}
	digits := lipgloss.JoinHorizontal(lipgloss.Center, groups...)

	if m.state.Urgent {
		hurry := lipgloss.NewStyle().Foreground(palette.Danger.Base).Render("hurry!")
		digits = lipgloss.JoinHorizontal(lipgloss.Center, digits, " ", hurry)
	}
	return m.frame(digits)
}

func (m Model) frame(body string) string {
	rows := make([]string, 0, 3)
	if m.label != "" {
		rows = append(rows, components.TypographyStyle(m.theme, components.TypographyVariantSubtitle).Render(m.label))
	}
	rows = append(rows, body)
	if m.discount != "" {
		badge := components.AccentBadge(m.discount)
		rows = append(rows, components.Render(badge, components.DefaultContext().WithTheme(m.theme)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
