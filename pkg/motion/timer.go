package motion

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

// NextID returns a process-wide unique widget instance id.
func NextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Kind distinguishes the purposes a widget schedules ticks for.
type Kind int

// TickMsg is delivered when a scheduled delay elapses.
type TickMsg struct {
	ID   int
	Tag  int
	Kind Kind
	At   time.Time
}

// Timer binds scheduled ticks to one widget instance.
type Timer struct {
	id      int
	tag     int
	stopped bool
}

// NewTimer allocates a timer with a fresh id.
func NewTimer() Timer {
	return Timer{id: NextID()}
}

// ID returns the owning instance id.
func (t Timer) ID() int {
	return t.id
}

// Tag returns the current generation.
func (t Timer) Tag() int {
	return t.tag
}

// Stopped reports whether the owner has been torn down.
func (t Timer) Stopped() bool {
	return t.stopped
}

// Schedule returns a command delivering a TickMsg of kind after d.
// A stopped timer schedules nothing.
func (t Timer) Schedule(d time.Duration, kind Kind) tea.Cmd {
	if t.stopped {
		return nil
	}
	id, tag := t.id, t.tag
	return tea.Tick(d, func(at time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, Kind: kind, At: at}
	})
}

// Immediate returns a command delivering a tick of kind without delay.
func (t Timer) Immediate(kind Kind) tea.Cmd {
	if t.stopped {
		return nil
	}
	msg := t.Tick(kind, time.Now())
	return func() tea.Msg {
		return msg
	}
}

// Tick builds the message the current generation would receive for kind.
// Synchronous drivers and tests use it to fast-forward without sleeping.
func (t Timer) Tick(kind Kind, at time.Time) TickMsg {
	return TickMsg{ID: t.id, Tag: t.tag, Kind: kind, At: at}
}

// Owns reports whether msg was addressed to this instance, stale or not.
func (t Timer) Owns(msg TickMsg) bool {
	return msg.ID == t.id
}

// Accepts reports whether msg belongs to the current generation of a live timer.
func (t Timer) Accepts(msg TickMsg) bool {
	return !t.stopped && msg.ID == t.id && msg.Tag == t.tag
}

// Supersede invalidates every tick scheduled so far.
func (t *Timer) Supersede() {
	t.tag++
}

// Stop tears the timer down. In-flight ticks become stale and Schedule returns nil.
func (t *Timer) Stop() {
	t.stopped = true
	t.tag++
}
