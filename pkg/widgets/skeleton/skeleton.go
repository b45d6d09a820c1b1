// Package skeleton renders placeholder bars with a travelling shimmer.
package skeleton

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const kindShimmer motion.Kind = 0

const (
	// DefaultInterval is the shimmer frame delay.
	DefaultInterval = 60 * time.Millisecond
	bandWidth       = 6
)

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the shimmer frame delay.
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

// Model is a stack of placeholder bars.
type Model struct {
	bars     []int
	offset   int
	interval time.Duration
	theme    components.Theme
	timer    motion.Timer
}

// New creates a skeleton with one bar per width.
func New(widths []int, opts ...Option) Model {
	m := Model{
		bars:     append([]int(nil), widths...),
		interval: DefaultInterval,
		theme:    components.DefaultTheme(),
		timer:    motion.NewTimer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the shimmer.
func (m Model) Init() tea.Cmd {
	return m.timer.Schedule(m.interval, kindShimmer)
}

// Offset returns the shimmer column.
func (m Model) Offset() int {
	return m.offset
}

// Stop halts the shimmer.
func (m *Model) Stop() {
	m.timer.Stop()
}

// Update moves the shimmer one column and schedules the next frame.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(motion.TickMsg)
	if !ok || tick.Kind != kindShimmer || !m.timer.Accepts(tick) {
		return m, nil
	}
	m.offset = (m.offset + 1) % m.span()
	return m, m.timer.Schedule(m.interval, kindShimmer)
}

func (m Model) span() int {
	widest := 0
	for _, w := range m.bars {
		widest = max(widest, w)
	}
	return widest + bandWidth
}

// View renders the bars with the shimmer band at the current offset.
func (m Model) View() string {
	palette := m.theme.Palette
	base := lipgloss.NewStyle().Foreground(palette.Neutral.Muted)
	shine := lipgloss.NewStyle().Foreground(palette.Neutral.Base)

	rows := make([]string, len(m.bars))
	for i, width := range m.bars {
		var b strings.Builder
		start := m.offset - bandWidth
		for col := 0; col < width; col++ {
			if col >= start && col < m.offset {
				b.WriteString(shine.Render("▓"))
			} else {
				b.WriteString(base.Render("░"))
			}
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}
