package countdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const (
	kindTick motion.Kind = iota
	kindFlash
)

// DefaultInterval is the delay between recomputations.
const DefaultInterval = time.Second

// EndedMsg is emitted once per activation cycle when the target is reached.
type EndedMsg struct {
	ID int
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the time source.
func WithClock(clock motion.Clock) Option {
	return func(m *Model) { m.clock = clock.OrSystem() }
}

// WithInterval sets the tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithThreshold sets the urgency threshold.
func WithThreshold(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.threshold = d
		}
	}
}

// WithOnEnd registers a callback fired once when the target is reached.
func WithOnEnd(fn func()) Option {
	return func(m *Model) { m.onEnd = fn }
}

// WithLabel sets the caption rendered above the digits.
func WithLabel(label string) Option {
	return func(m *Model) { m.label = label }
}

// WithDiscount sets the promotional badge text.
func WithDiscount(discount string) Option {
	return func(m *Model) { m.discount = discount }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a countdown toward a target instant.
type Model struct {
	target    time.Time
	label     string
	discount  string
	clock     motion.Clock
	interval  time.Duration
	threshold time.Duration
	onEnd     func()
	theme     components.Theme

	state State
	fired bool

	ticker   motion.Timer
	flasher  motion.Timer
	flashing bool
	flashes  [3]motion.Spring
}

// New creates a countdown toward target. The state is computed immediately.
func New(target time.Time, opts ...Option) Model {
	m := Model{
		target:    target,
		clock:     motion.SystemClock,
		interval:  DefaultInterval,
		threshold: DefaultThreshold,
		theme:     components.DefaultTheme(),
		ticker:    motion.NewTimer(),
		flasher:   motion.NewTimer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	for i := range m.flashes {
		m.flashes[i] = motion.NewSpring(20, 1)
	}
	m.state = Compute(m.target, m.clock(), m.threshold)
	return m
}

// ID returns the instance id carried by this widget's ticks.
func (m Model) ID() int {
	return m.ticker.ID()
}

// State returns the last computed state.
func (m Model) State() State {
	return m.state
}

// Target returns the instant being counted down to.
func (m Model) Target() time.Time {
	return m.target
}

// Init delivers the first tick immediately.
func (m Model) Init() tea.Cmd {
	return m.ticker.Immediate(kindTick)
}

// Update handles the widget's own ticks and ignores everything else.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(motion.TickMsg)
	if !ok {
		return m, nil
	}

	switch {
	case tick.Kind == kindTick && m.ticker.Accepts(tick):
		return m.advance()
	case tick.Kind == kindFlash && m.flasher.Accepts(tick):
		return m.stepFlash()
	}
	return m, nil
}

func (m Model) advance() (Model, tea.Cmd) {
	prev := m.state
	m.state = Compute(m.target, m.clock(), m.threshold)
	flash := m.markChanges(prev)

	if !m.state.Ended {
		return m, tea.Batch(flash, m.ticker.Schedule(m.interval, kindTick))
	}

	if m.fired {
		return m, flash
	}
	m.fired = true
	if m.onEnd != nil {
		m.onEnd()
	}
	id := m.ID()
	return m, tea.Batch(flash, func() tea.Msg { return EndedMsg{ID: id} })
}

// SetTarget replaces the target and starts a new activation cycle.
// Ticks scheduled for the previous target are dropped.
func (m *Model) SetTarget(target time.Time) tea.Cmd {
	m.target = target
	m.fired = false
	m.ticker.Supersede()
	m.state = Compute(m.target, m.clock(), m.threshold)
	return m.ticker.Immediate(kindTick)
}

// Stop tears the countdown down. Ticks already in flight are ignored.
func (m *Model) Stop() {
	m.ticker.Stop()
	m.flasher.Stop()
	m.flashing = false
}

// Stopped reports whether Stop was called.
func (m Model) Stopped() bool {
	return m.ticker.Stopped()
}

// Flash returns the flash intensity of u, from 1 right after a change down to 0.
func (m Model) Flash(u Unit) float64 {
	v := m.flashes[u].Value()
	if v < 0 {
		return 0
	}
	return v
}

func (m *Model) markChanges(prev State) tea.Cmd {
	changed := false
	for _, u := range []Unit{Hours, Minutes, Seconds} {
		if prev.value(u) != m.state.value(u) {
			m.flashes[u].Kick(1, 0)
			changed = true
		}
	}
	if !changed || m.flashing {
		return nil
	}
	m.flashing = true
	return m.flasher.Schedule(motion.FrameInterval, kindFlash)
}

func (m Model) stepFlash() (Model, tea.Cmd) {
	settled := true
	for i := range m.flashes {
		if m.flashes[i].Settled() {
			continue
		}
		m.flashes[i].Step()
		if m.flashes[i].Settled() {
			m.flashes[i].Snap()
		} else {
			settled = false
		}
	}
	if settled {
		m.flashing = false
		return m, nil
	}
	return m, m.flasher.Schedule(motion.FrameInterval, kindFlash)
}
