// Package beam draws an animated connection between two anchors.
package beam

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const kindPulse motion.Kind = 0

const (
	// DefaultInterval is the delay between pulse steps.
	DefaultInterval = 40 * time.Millisecond
	// DefaultCurvature bends the beam by a quarter of its length.
	DefaultCurvature = 0.25
	pulseLength      = 3
)

// Option configures a Model.
type Option func(*Model)

// WithCurvature sets the bend factor. Negative values bend the other way.
func WithCurvature(c float64) Option {
	return func(m *Model) { m.curvature = c }
}

// WithInterval sets the pulse step delay.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a curved beam with a pulse travelling from one anchor to the other.
type Model struct {
	from      Point
	to        Point
	curvature float64
	interval  time.Duration
	path      []Cell
	pulse     int
	theme     components.Theme
	timer     motion.Timer
}

// New creates a beam between two anchors.
func New(from, to Point, opts ...Option) Model {
	m := Model{
		from:      from,
		to:        to,
		curvature: DefaultCurvature,
		interval:  DefaultInterval,
		theme:     components.DefaultTheme(),
		timer:     motion.NewTimer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.path = Trace(m.from, m.to, m.curvature)
	return m
}

// Path returns the traced cells.
func (m Model) Path() []Cell {
	return append([]Cell(nil), m.path...)
}

// Pulse returns the path index of the pulse head.
func (m Model) Pulse() int {
	return m.pulse
}

// Init starts the pulse.
func (m Model) Init() tea.Cmd {
	return m.timer.Schedule(m.interval, kindPulse)
}

// Stop halts the pulse.
func (m *Model) Stop() {
	m.timer.Stop()
}

// Update moves the pulse one cell along the path.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(motion.TickMsg)
	if !ok || tick.Kind != kindPulse || !m.timer.Accepts(tick) {
		return m, nil
	}
	m.pulse = (m.pulse + 1) % (len(m.path) + pulseLength)
	return m, m.timer.Schedule(m.interval, kindPulse)
}

// View draws the path, the pulse and the two anchors.
func (m Model) View() string {
	if len(m.path) == 0 {
		return ""
	}
	minCol, minRow, maxCol, maxRow := bounds(m.path)
	width, height := maxCol-minCol+1, maxRow-minRow+1

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	palette := m.theme.Palette
	trail := lipgloss.NewStyle().Foreground(palette.Neutral.Muted)
	glow := lipgloss.NewStyle().Foreground(palette.Accent.Base)
	anchor := lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base)

	for i, cell := range m.path {
		ch := trail.Render("·")
		if i <= m.pulse && i > m.pulse-pulseLength {
			ch = glow.Render("•")
			if i == m.pulse {
				ch = glow.Render("●")
			}
		}
		grid[cell.Row-minRow][cell.Col-minCol] = ch
	}
	first, last := m.path[0], m.path[len(m.path)-1]
	grid[first.Row-minRow][first.Col-minCol] = anchor.Render("◉")
	grid[last.Row-minRow][last.Col-minCol] = anchor.Render("◉")

	rows := make([]string, height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

func bounds(cells []Cell) (minCol, minRow, maxCol, maxRow int) {
	minCol, minRow = cells[0].Col, cells[0].Row
	maxCol, maxRow = minCol, minRow
	for _, c := range cells[1:] {
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
	}
	return minCol, minRow, maxCol, maxRow
}
