// Package progress renders a labelled bar whose fill animates toward the
// latest value.
package progress

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is a labelled animated progress bar.
type Model struct {
	label string
	bar   progress.Model
}

// New creates a bar of the given width.
func New(label string, width int) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	if width > 0 {
		bar.Width = width
	}
	return Model{label: label, bar: bar}
}

// Init does nothing until a percentage is set.
func (m Model) Init() tea.Cmd {
	return nil
}

// Percent returns the target fill, between 0 and 1.
func (m Model) Percent() float64 {
	return m.bar.Percent()
}

// SetPercent animates toward p, clamped to [0, 1].
func (m *Model) SetPercent(p float64) tea.Cmd {
	return m.bar.SetPercent(math.Max(0, math.Min(1, p)))
}

// SetRatio animates toward done/total. A zero total shows an empty bar.
func (m *Model) SetRatio(done, total int) tea.Cmd {
	if total <= 0 {
		return m.SetPercent(0)
	}
	return m.SetPercent(float64(done) / float64(total))
}

// Animating reports whether the fill is still moving.
func (m Model) Animating() bool {
	return m.bar.IsAnimating()
}

// Update advances the fill animation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	frame, ok := msg.(progress.FrameMsg)
	if !ok {
		return m, nil
	}
	updated, cmd := m.bar.Update(frame)
	if bar, ok := updated.(progress.Model); ok {
		m.bar = bar
	}
	return m, cmd
}

// View renders the label and the animated bar.
func (m Model) View() string {
	return m.join(m.bar.View())
}

// ViewAs renders the bar at a fixed ratio, bypassing the animation.
func (m Model) ViewAs(ratio float64) string {
	return m.join(m.bar.ViewAs(math.Max(0, math.Min(1, ratio))))
}

func (m Model) join(bar string) string {
	if m.label == "" {
		return bar
	}
	label := lipgloss.NewStyle().Bold(true).Render(m.label)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar)
}

// Counter formats done/total the way the label usually shows it.
func Counter(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}
