package dock

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const (
	// DefaultMaxScale is the scale of an item directly under the pointer.
	DefaultMaxScale = 2.0
	// DefaultThreshold is the distance in columns beyond which items are not magnified.
	DefaultThreshold = 12.0
	// DefaultSpacing is the column pitch of the items.
	DefaultSpacing = 6
)

// Magnification maps the distance between the pointer and an item centre to
// a scale, falling linearly from maxScale at 0 to 1 at threshold and beyond.
func Magnification(distance, maxScale, threshold float64) float64 {
	d := math.Abs(distance)
	if threshold <= 0 || d >= threshold {
		return 1
	}
	return maxScale - (maxScale-1)*d/threshold
}

// Item is one dock entry.
type Item struct {
	Icon  string
	Label string
}

// Option configures a Model.
type Option func(*Model)

// WithMaxScale sets the peak magnification.
func WithMaxScale(scale float64) Option {
	return func(m *Model) {
		if scale >= 1 {
			m.maxScale = scale
		}
	}
}

// WithThreshold sets the falloff distance in columns.
func WithThreshold(threshold float64) Option {
	return func(m *Model) {
		if threshold > 0 {
			m.threshold = threshold
		}
	}
}

// WithOrigin sets the screen column and row where the dock is drawn, used to
// translate mouse events.
func WithOrigin(x, y int) Option {
	return func(m *Model) { m.originX, m.originY = x, y }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a row of icons that swell as the pointer approaches.
// Scales are derived from the latest pointer sample only.
type Model struct {
	items     []Item
	maxScale  float64
	threshold float64
	originX   int
	originY   int
	pointer   float64
	inside    bool
	theme     components.Theme
}

// New creates a dock.
func New(items []Item, opts ...Option) Model {
	m := Model{
		items:     append([]Item(nil), items...),
		maxScale:  DefaultMaxScale,
		threshold: DefaultThreshold,
		theme:     components.DefaultTheme(),
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

// PointerAt records a pointer sample at column x relative to the dock.
func (m *Model) PointerAt(x float64) {
	m.pointer = x
	m.inside = true
}

// Leave resets every item to scale 1.
func (m *Model) Leave() {
	m.inside = false
}

// Width is the number of columns the items occupy.
func (m Model) Width() int {
	return len(m.items) * DefaultSpacing
}

// Centre returns the column of item i's centre.
func (m Model) Centre(i int) float64 {
	return float64(i*DefaultSpacing) + DefaultSpacing/2.0
}

// Scales returns the current magnification of every item.
func (m Model) Scales() []float64 {
	scales := make([]float64, len(m.items))
	for i := range m.items {
		scales[i] = 1
		if m.inside {
			scales[i] = Magnification(m.pointer-m.Centre(i), m.maxScale, m.threshold)
		}
	}
	return scales
}

// Update tracks mouse motion over the dock.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	x := mouse.X - m.originX
	y := mouse.Y - m.originY
	if x < 0 || x >= m.Width() || y < 0 || y > m.height() {
		m.Leave()
		return m, nil
	}
	m.PointerAt(float64(x))
	return m, nil
}

func (m Model) height() int {
	return int(math.Ceil((m.maxScale-1)*2)) + 2
}

// View renders the items bottom-aligned, lifted in proportion to their scale.
func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	palette := m.theme.Palette
	scales := m.Scales()
	cells := make([]string, len(m.items))
	for i, item := range m.items {
		lift := int(math.Round((scales[i] - 1) * 2))
		style := lipgloss.NewStyle().Width(DefaultSpacing).Align(lipgloss.Center)
		icon := style.Render(item.Icon)
		if scales[i] > 1 {
			icon = style.Bold(true).Foreground(palette.Primary.Base).Render(item.Icon)
		}
		rows := []string{icon}
		if lift > 0 {
			rows = append(rows, strings.Repeat("\n", lift-1))
		}
		if scales[i] >= m.maxScale-(m.maxScale-1)/4 && item.Label != "" {
			label := lipgloss.NewStyle().Width(DefaultSpacing).Align(lipgloss.Center).
				Foreground(palette.Neutral.Base).MaxWidth(DefaultSpacing).Render(item.Label)
			rows = append([]string{label}, rows...)
		}
		cells[i] = lipgloss.JoinVertical(lipgloss.Center, rows...)
	}
	shelf := lipgloss.NewStyle().Foreground(palette.Neutral.Muted).Render(strings.Repeat("▔", m.Width()))
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Bottom, cells...), shelf)
}
