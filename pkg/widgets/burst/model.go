package burst

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const kindClear motion.Kind = 0

const (
	// DefaultCount is the number of particles per burst.
	DefaultCount = 12
	// DefaultWindow is how long a burst stays visible.
	DefaultWindow = 700 * time.Millisecond
	// DefaultMagnitude is the burst radius in columns.
	DefaultMagnitude = 6
)

// Variant selects the button flavour.
type Variant int

const (
	Favorite Variant = iota
	Basket
)

// ToggledMsg reports a click and the new state.
type ToggledMsg struct {
	ID     int
	Active bool
}

// State is the observable state of the button.
type State struct {
	Active    bool
	Particles []Particle
}

// Option configures a Model.
type Option func(*Model)

// WithActive sets the initial state.
func WithActive(active bool) Option {
	return func(m *Model) { m.active = active }
}

// WithOnToggle registers a callback invoked with the new state on every click.
func WithOnToggle(fn func(bool)) Option {
	return func(m *Model) { m.onToggle = fn }
}

// WithCount sets the number of particles per burst.
func WithCount(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.count = n
		}
	}
}

// WithWindow sets how long particles stay visible.
func WithWindow(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.window = d
		}
	}
}

// WithJitter displaces each angle by up to fraction of the spacing.
func WithJitter(fraction float64, seed uint64) Option {
	return func(m *Model) {
		m.jitter = fraction
		m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithVariant selects the favorite or basket flavour.
func WithVariant(v Variant) Option {
	return func(m *Model) { m.variant = v }
}

// WithLabel overrides the button caption.
func WithLabel(label string) Option {
	return func(m *Model) { m.label = label }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a toggle button that bursts into particles when switched on.
//
// Clicking on again while a burst is visible restarts the window and replaces
// the particles. Clicking off clears them at once.
type Model struct {
	active    bool
	particles []Particle
	bursts    int

	onToggle func(bool)
	count    int
	window   time.Duration
	jitter   float64
	rng      *rand.Rand
	variant  Variant
	label    string
	theme    components.Theme
	timer    motion.Timer
}

// New creates a button.
func New(opts ...Option) Model {
	m := Model{
		count:  DefaultCount,
		window: DefaultWindow,
		theme:  components.DefaultTheme(),
		timer:  motion.NewTimer(),
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

// Active reports the toggle state.
func (m Model) Active() bool {
	return m.active
}

// Particles returns the visible particles.
func (m Model) Particles() []Particle {
	return append([]Particle(nil), m.particles...)
}

// State returns a snapshot of the button.
func (m Model) State() State {
	return State{Active: m.active, Particles: m.Particles()}
}

// Init does nothing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Click flips the state, notifies OnToggle and manages the burst.
func (m *Model) Click() tea.Cmd {
	m.active = !m.active
	if m.onToggle != nil {
		m.onToggle(m.active)
	}
	id, active := m.ID(), m.active
	toggled := func() tea.Msg { return ToggledMsg{ID: id, Active: active} }

	m.timer.Supersede()
	if !m.active {
		m.particles = nil
		return toggled
	}

	m.particles = Spread(m.count, DefaultMagnitude, m.jitter, m.bursts*m.count, m.rng)
	m.bursts++
	return tea.Batch(toggled, m.timer.Schedule(m.window, kindClear))
}

// Stop tears the button down and drops any pending clear.
func (m *Model) Stop() {
	m.timer.Stop()
	m.particles = nil
}

// Update clears the particles when the burst window elapses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(motion.TickMsg); ok && tick.Kind == kindClear && m.timer.Accepts(tick) {
		m.particles = nil
	}
	return m, nil
}
