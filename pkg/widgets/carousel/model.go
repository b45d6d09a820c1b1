package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const kindAdvance motion.Kind = 0

// DefaultInterval is the auto-advance delay.
const DefaultInterval = 5 * time.Second

// Slide is one testimonial.
type Slide struct {
	Quote  string
	Author string
	Role   string
}

// Option configures a Model.
type Option func(*Model)

// WithInterval sets the auto-advance delay.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithPauseOnHover stops auto-advance while the pointer is over the carousel.
func WithPauseOnHover(pause bool) Option {
	return func(m *Model) { m.pauseOnHover = pause }
}

// WithWidth sets the rendered card width.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is an auto-advancing testimonial rotator.
type Model struct {
	slides       []Slide
	index        int
	interval     time.Duration
	pauseOnHover bool
	hovered      bool
	width        int
	theme        components.Theme
	timer        motion.Timer
}

// New creates a carousel over slides, starting at the first one.
func New(slides []Slide, opts ...Option) Model {
	m := Model{
		slides:       append([]Slide(nil), slides...),
		interval:     DefaultInterval,
		pauseOnHover: true,
		width:        48,
		theme:        components.DefaultTheme(),
		timer:        motion.NewTimer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the instance id.
func (m Model) ID() int {
	return m.timer.ID()
}

// Index returns the current slide index.
func (m Model) Index() int {
	return m.index
}

// Len returns the number of slides.
func (m Model) Len() int {
	return len(m.slides)
}

// Current returns the visible slide. ok is false when there are no slides.
func (m Model) Current() (Slide, bool) {
	if len(m.slides) == 0 {
		return Slide{}, false
	}
	return m.slides[m.index], true
}

// Hovered reports the hover flag.
func (m Model) Hovered() bool {
	return m.hovered
}

// Init starts auto-advance.
func (m Model) Init() tea.Cmd {
	return m.schedule()
}

// Update advances on the widget's own ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(motion.TickMsg)
	if !ok || tick.Kind != kindAdvance || !m.timer.Accepts(tick) {
		return m, nil
	}
	if m.paused() {
		return m, nil
	}
	m.index = (m.index + 1) % len(m.slides)
	return m, m.schedule()
}

// Next shows the following slide and restarts the interval.
func (m *Model) Next() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	return m.JumpTo((m.index + 1) % len(m.slides))
}

// Prev shows the preceding slide and restarts the interval.
func (m *Model) Prev() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	return m.JumpTo((m.index - 1 + len(m.slides)) % len(m.slides))
}

// JumpTo shows slide i and restarts the interval. Out of range indices are ignored.
func (m *Model) JumpTo(i int) tea.Cmd {
	if i < 0 || i >= len(m.slides) {
		return nil
	}
	m.index = i
	m.timer.Supersede()
	return m.schedule()
}

// SetHovered updates the hover flag. With pause-on-hover, entering cancels
// the pending advance and leaving restarts a full interval. Otherwise hover
// does not touch the timer.
func (m *Model) SetHovered(hovered bool) tea.Cmd {
	if m.hovered == hovered {
		return nil
	}
	m.hovered = hovered
	if !m.pauseOnHover {
		return nil
	}
	m.timer.Supersede()
	return m.schedule()
}

// Stop tears the carousel down.
func (m *Model) Stop() {
	m.timer.Stop()
}

func (m Model) paused() bool {
	return m.pauseOnHover && m.hovered
}

func (m Model) schedule() tea.Cmd {
	if len(m.slides) < 2 || m.paused() {
		return nil
	}
	return m.timer.Schedule(m.interval, kindAdvance)
}
