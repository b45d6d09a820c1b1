// Package footer renders a site footer with link columns.
package footer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

// Column is a titled group of links.
type Column struct {
	Title string
	Links []string
}

// Footer is a declarative footer description.
type Footer struct {
	Brand     string
	Tagline   string
	Columns   []Column
	Socials   []string
	Copyright string
}

// View renders the footer with the default theme.
func (f Footer) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the footer. Columns stack vertically when they do
// not fit in ctx.MaxWidth.
func (f Footer) ViewWithContext(ctx components.RenderContext) string {
	palette := ctx.Theme.Palette
	muted := lipgloss.NewStyle().Foreground(palette.Neutral.Base)

	brand := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base).Render(f.Brand)
	if f.Tagline != "" {
		brand = lipgloss.JoinVertical(lipgloss.Left, brand, muted.Render(f.Tagline))
	}

	blocks := []string{brand}
	for _, col := range f.Columns {
		rows := []string{lipgloss.NewStyle().Bold(true).Render(col.Title)}
		for _, link := range col.Links {
			rows = append(rows, muted.Render(link))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	const gap = 4
	total := 0
	for _, b := range blocks {
		total += lipgloss.Width(b) + gap
	}

	var top string
	if ctx.MaxWidth > 0 && total-gap > ctx.MaxWidth {
		top = strings.Join(blocks, "\n\n")
	} else {
		spaced := make([]string, 0, len(blocks)*2)
		for i, b := range blocks {
			if i > 0 {
				spaced = append(spaced, strings.Repeat(" ", gap))
			}
			spaced = append(spaced, b)
		}
		top = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	}

	width := lipgloss.Width(top)
	if ctx.MaxWidth > 0 {
		width = ctx.MaxWidth
	}
	bottom := muted.Render(f.Copyright)
	if len(f.Socials) > 0 {
		socials := muted.Render(strings.Join(f.Socials, "  "))
		space := max(width-lipgloss.Width(bottom)-lipgloss.Width(socials), 1)
		bottom += strings.Repeat(" ", space) + socials
	}

	divider := components.Render(components.HorizontalDivider().WithWidth(width), ctx)
	return lipgloss.JoinVertical(lipgloss.Left, top, divider, bottom)
}
