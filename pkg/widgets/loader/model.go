package loader

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

const (
	kindAdvance motion.Kind = iota
	kindSettle
)

const (
	// DefaultStageDelay paces the cosmetic stage advances.
	DefaultStageDelay = 1800 * time.Millisecond
	// DefaultSettleDelay is how long Complete is shown before OnComplete fires.
	DefaultSettleDelay = time.Second
)

// PhaseChangedMsg reports a transition.
type PhaseChangedMsg struct {
	ID   int
	From Phase
	To   Phase
}

// CompletedMsg is emitted once per activation cycle after the settle delay.
type CompletedMsg struct {
	ID int
}

// Option configures a Model.
type Option func(*Model)

// WithStageDelay sets the delay between working stages.
func WithStageDelay(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.stageDelay = d
		}
	}
}

// WithSettleDelay sets the delay between Complete and the reset to Idle.
func WithSettleDelay(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.settleDelay = d
		}
	}
}

// WithOnComplete registers the completion callback.
func WithOnComplete(fn func()) Option {
	return func(m *Model) { m.onComplete = fn }
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a multi-phase loading indicator.
type Model struct {
	phase       Phase
	loading     bool
	stageDelay  time.Duration
	settleDelay time.Duration
	onComplete  func()
	theme       components.Theme
	timer       motion.Timer
}

// New creates an idle loader.
func New(opts ...Option) Model {
	m := Model{
		stageDelay:  DefaultStageDelay,
		settleDelay: DefaultSettleDelay,
		theme:       components.DefaultTheme(),
		timer:       motion.NewTimer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the instance id carried by this loader's ticks.
func (m Model) ID() int {
	return m.timer.ID()
}

// Phase returns the current phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Loading returns the last value passed to SetLoading.
func (m Model) Loading() bool {
	return m.loading
}

// Init does nothing until SetLoading is called.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetLoading reports whether the underlying work is running.
//
// Turning it on from Idle, or while Complete is settling, starts a new cycle
// at ReadingInput and drops any pending timer. Turning it off from a working
// stage forces Complete.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if m.timer.Stopped() {
		return nil
	}

	if loading {
		return m.transition(EventStart, m.stageDelay, kindAdvance)
	}
	return m.transition(EventFinish, m.settleDelay, kindSettle)
}

// Stop tears the loader down without firing OnComplete.
func (m *Model) Stop() {
	m.timer.Stop()
	m.phase, _ = m.phase.Next(EventReset)
}

// Update handles the loader's own ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(motion.TickMsg)
	if !ok || !m.timer.Accepts(tick) {
		return m, nil
	}

	switch tick.Kind {
	case kindAdvance:
		cmd := m.transition(EventAdvance, m.stageDelay, kindAdvance)
		return m, cmd
	case kindSettle:
		from := m.phase
		next, ok := from.Next(EventSettle)
		if !ok {
			return m, nil
		}
		m.timer.Supersede()
		m.phase = next
		if m.onComplete != nil {
			m.onComplete()
		}
		id := m.ID()
		return m, tea.Sequence(
			changed(id, from, next),
			func() tea.Msg { return CompletedMsg{ID: id} },
		)
	}
	return m, nil
}

// transition applies e and, when the new phase waits on a timer, schedules
// kind after delay under a fresh generation.
func (m *Model) transition(e Event, delay time.Duration, kind motion.Kind) tea.Cmd {
	from := m.phase
	next, ok := from.Next(e)
	if !ok {
		return nil
	}
	m.timer.Supersede()
	m.phase = next

	var schedule tea.Cmd
	if _, waits := next.Next(eventAfter(kind)); waits {
		schedule = m.timer.Schedule(delay, kind)
	}
	return tea.Batch(changed(m.ID(), from, next), schedule)
}

func eventAfter(kind motion.Kind) Event {
	if kind == kindSettle {
		return EventSettle
	}
	return EventAdvance
}

func changed(id int, from, to Phase) tea.Cmd {
	return func() tea.Msg {
		return PhaseChangedMsg{ID: id, From: from, To: to}
	}
}
