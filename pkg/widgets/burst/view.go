package burst

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

var sparks = []string{"✦", "•", "✧", "·"}

// View renders the button, surrounded by the particles while a burst is visible.
func (m Model) View() string {
	button := m.button()
	if len(m.particles) == 0 {
		return button
	}

	radiusX, radiusY := DefaultMagnitude, DefaultMagnitude/2
	bw := lipgloss.Width(button)
	width := bw + 2*radiusX + 2
	height := 2*radiusY + 1

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	cx := width / 2
	cy := radiusY
	spark := lipgloss.NewStyle().Foreground(m.colour().Base)
	for i, p := range m.particles {
		dx, dy := p.Position()
		x := cx + dx + sign(dx)*bw/2
		y := cy + dy
		if y == cy && abs(x-cx) <= bw/2 {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		grid[y][x] = spark.Render(sparks[i%len(sparks)])
	}

	rows := make([]string, height)
	for y := range grid {
		if y == cy {
			left := strings.Join(grid[y][:cx-bw/2], "")
			right := strings.Join(grid[y][cx-bw/2+bw:], "")
			rows[y] = left + button + right
			continue
		}
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

func (m Model) button() string {
	colours := m.colour()
	style := lipgloss.NewStyle().Padding(0, 1)
	if m.active {
		style = style.Bold(true).Background(colours.Base).Foreground(colours.OnBase)
	} else {
		style = style.Background(m.theme.Palette.Surface.Muted).Foreground(m.theme.Palette.Neutral.Base)
	}
	return style.Render(m.caption())
}

func (m Model) caption() string {
	icon, label := "♡", "Favorite"
	if m.variant == Basket {
		icon, label = "+", "Add to basket"
		if m.active {
			icon, label = "✓", "In basket"
		}
	} else if m.active {
		icon, label = "♥", "Favorited"
	}
	if m.label != "" {
		label = m.label
	}
	return icon + " " + label
}

func (m Model) colour() components.ColourSet {
	if m.variant == Basket {
		return m.theme.Palette.Success
	}
	return m.theme.Palette.Accent
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
