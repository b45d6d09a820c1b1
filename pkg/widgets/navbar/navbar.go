package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const (
	// DefaultBreakpoint is the width below which the mobile menu is used.
	DefaultBreakpoint = 60
	// DefaultSolidThreshold is the scroll offset past which the bar turns solid.
	DefaultSolidThreshold = 10
)

// Solid reports whether the bar should draw its background for a scroll offset.
func Solid(offset, threshold int) bool {
	return offset > threshold
}

// Link is a navigation entry. Children turn it into a dropdown.
type Link struct {
	Label    string
	Href     string
	Children []Link
}

// Option configures a Model.
type Option func(*Model)

// WithBreakpoint sets the mobile breakpoint.
func WithBreakpoint(width int) Option {
	return func(m *Model) { m.breakpoint = width }
}

// WithSolidThreshold sets the scroll offset at which the background appears.
func WithSolidThreshold(offset int) Option {
	return func(m *Model) { m.threshold = offset }
}

// WithWidth sets the initial width.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a navigation bar with dropdowns and a collapsible mobile menu.
type Model struct {
	brand      string
	links      []Link
	width      int
	breakpoint int
	threshold  int
	offset     int
	menuOpen   bool
	dropdown   int
	theme      components.Theme
}

// New creates a navbar.
func New(brand string, links []Link, opts ...Option) Model {
	m := Model{
		brand:      brand,
		links:      append([]Link(nil), links...),
		width:      80,
		breakpoint: DefaultBreakpoint,
		threshold:  DefaultSolidThreshold,
		dropdown:   -1,
		theme:      components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init does nothing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mobile reports whether the collapsed layout is in use.
func (m Model) Mobile() bool {
	return m.width < m.breakpoint
}

// Solid reports the scroll-derived background state.
func (m Model) Solid() bool {
	return Solid(m.offset, m.threshold)
}

// MenuOpen reports whether the mobile menu is expanded.
func (m Model) MenuOpen() bool {
	return m.menuOpen && m.Mobile()
}

// OpenDropdown returns the index of the expanded dropdown, or -1.
func (m Model) OpenDropdown() int {
	return m.dropdown
}

// SetWidth applies a new width. Growing past the breakpoint closes the mobile menu.
func (m *Model) SetWidth(width int) {
	m.width = width
	if !m.Mobile() {
		m.menuOpen = false
	}
}

// SetScroll records the latest scroll offset.
func (m *Model) SetScroll(offset int) {
	m.offset = max(offset, 0)
}

// ToggleMenu opens or closes the mobile menu. It has no effect on wide layouts.
func (m *Model) ToggleMenu() {
	if !m.Mobile() {
		return
	}
	m.menuOpen = !m.menuOpen
}

// ToggleDropdown opens dropdown i, or closes it when already open.
// Links without children have no dropdown.
func (m *Model) ToggleDropdown(i int) {
	if i < 0 || i >= len(m.links) || len(m.links[i].Children) == 0 {
		return
	}
	if m.dropdown == i {
		m.dropdown = -1
		return
	}
	m.dropdown = i
}

// Close collapses every menu.
func (m *Model) Close() {
	m.menuOpen = false
	m.dropdown = -1
}

// Update tracks the window width and wheel scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.SetScroll(m.offset + 3)
		case tea.MouseButtonWheelUp:
			m.SetScroll(m.offset - 3)
		}
	}
	return m, nil
}

// View renders the bar and any open menu.
func (m Model) View() string {
	palette := m.theme.Palette
	bar := lipgloss.NewStyle().Width(m.width)
	if m.Solid() {
		bar = bar.Background(palette.Surface.Muted).Foreground(palette.Surface.OnBase)
	}
	brand := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base).Render(m.brand)

	if m.Mobile() {
		toggle := "☰"
		if m.menuOpen {
			toggle = "✕"
		}
		lines := []string{bar.Render(spread(brand, toggle, m.width))}
		if m.menuOpen {
			for _, link := range m.links {
				lines = append(lines, "  "+link.Label)
				for _, child := range link.Children {
					lines = append(lines, "    "+lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(child.Label))
				}
			}
		}
		return strings.Join(lines, "\n")
	}

	labels := make([]string, len(m.links))
	for i, link := range m.links {
		label := link.Label
		if len(link.Children) > 0 {
			label += " ▾"
		}
		if i == m.dropdown {
			label = lipgloss.NewStyle().Underline(true).Render(label)
		}
		labels[i] = label
	}
	lines := []string{bar.Render(spread(brand, strings.Join(labels, "   "), m.width))}

	if m.dropdown >= 0 {
		column := m.dropdownColumn()
		menu := make([]string, 0, len(m.links[m.dropdown].Children))
		for _, child := range m.links[m.dropdown].Children {
			menu = append(menu, child.Label)
		}
		box := lipgloss.NewStyle().Border(m.theme.Borders.Rounded).
			BorderForeground(palette.Neutral.Muted).Padding(0, 1).
			Render(strings.Join(menu, "\n"))
		lines = append(lines, lipgloss.NewStyle().MarginLeft(column).Render(box))
	}
	return strings.Join(lines, "\n")
}

// dropdownColumn returns where the open dropdown's label starts.
func (m Model) dropdownColumn() int {
	total := 0
	for i, link := range m.links {
		total += runewidth.StringWidth(link.Label)
		if len(link.Children) > 0 {
			total += 2
		}
		if i < len(m.links)-1 {
			total += 3
		}
	}
	column := max(m.width-total, 0)
	for i := 0; i < m.dropdown; i++ {
		column += runewidth.StringWidth(m.links[i].Label) + 3
		if len(m.links[i].Children) > 0 {
			column += 2
		}
	}
	return column
}

// spread places left and right at the two ends of a line of width columns.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
