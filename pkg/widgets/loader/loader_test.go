package loader

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
)

func TestPhaseNextIsTotal(t *testing.T) {
	t.Parallel()

	phases := []Phase{Idle, ReadingInput, Processing, Delivering, Complete}
	events := []Event{EventStart, EventAdvance, EventFinish, EventSettle, EventReset}

	want := map[Phase]map[Event]Phase{
		Idle:         {EventStart: ReadingInput},
		ReadingInput: {EventAdvance: Processing, EventFinish: Complete, EventReset: Idle},
		Processing:   {EventAdvance: Delivering, EventFinish: Complete, EventReset: Idle},
		Delivering:   {EventFinish: Complete, EventReset: Idle},
		Complete:     {EventStart: ReadingInput, EventSettle: Idle, EventReset: Idle},
	}

	for _, p := range phases {
		for _, e := range events {
			next, ok := p.Next(e)
			expected, allowed := want[p][e]
			if !allowed {
				assert.False(t, ok, "%s on %d", p, e)
				assert.Equal(t, p, next)
				continue
			}
			assert.True(t, ok, "%s on %d", p, e)
			assert.Equal(t, expected, next, "%s on %d", p, e)
		}
	}
}

func TestForwardTransitionsNeverGoBackwards(t *testing.T) {
	t.Parallel()

	for _, p := range []Phase{Idle, ReadingInput, Processing, Delivering} {
		for _, e := range []Event{EventAdvance, EventFinish} {
			next, ok := p.Next(e)
			if ok {
				assert.Greater(t, next, p)
			}
		}
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reading input", ReadingInput.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

// recorder feeds ticks to a loader and records every phase it passes through.
type recorder struct {
	m      Model
	phases []Phase
}

func newRecorder(m Model) *recorder {
	return &recorder{m: m, phases: []Phase{m.Phase()}}
}

func (r *recorder) observe() {
	if p := r.m.Phase(); p != r.phases[len(r.phases)-1] {
		r.phases = append(r.phases, p)
	}
}

func (r *recorder) set(loading bool) tea.Cmd {
	cmd := r.m.SetLoading(loading)
	r.observe()
	return cmd
}

func (r *recorder) elapse(kind motion.Kind) tea.Cmd {
	var cmd tea.Cmd
	r.m, cmd = r.m.Update(r.m.timer.Tick(kind, time.Now()))
	r.observe()
	return cmd
}

func TestPhaseOrderWhenFinishedAfterSecondStage(t *testing.T) {
	t.Parallel()

	completions := 0
	r := newRecorder(New(WithOnComplete(func() { completions++ })))

	require.NotNil(t, r.set(true))
	r.elapse(kindAdvance)
	require.Equal(t, Processing, r.m.Phase())

	require.NotNil(t, r.set(false))
	assert.Zero(t, completions, "completion waits for the settle delay")

	r.elapse(kindSettle)
	assert.Equal(t, []Phase{Idle, ReadingInput, Processing, Complete, Idle}, r.phases)
	assert.Equal(t, 1, completions)
}

func TestStaysDeliveringUntilLoadingStops(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetLoading(true)

	var cmd tea.Cmd
	m, cmd = m.Update(m.timer.Tick(kindAdvance, time.Now()))
	require.NotNil(t, cmd)
	m, cmd = m.Update(m.timer.Tick(kindAdvance, time.Now()))
	require.Equal(t, Delivering, m.Phase())

	msg := cmd()
	changed, ok := msg.(PhaseChangedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, Processing, changed.From)
	assert.Equal(t, Delivering, changed.To)

	m, cmd = m.Update(m.timer.Tick(kindAdvance, time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, Delivering, m.Phase())

	assert.Nil(t, m.SetLoading(true), "already loading")
	assert.Equal(t, Delivering, m.Phase())
}

func TestFinishFromAnyWorkingStageForcesComplete(t *testing.T) {
	t.Parallel()

	for advances := 0; advances < 3; advances++ {
		m := New()
		m.SetLoading(true)
		for i := 0; i < advances; i++ {
			m, _ = m.Update(m.timer.Tick(kindAdvance, time.Now()))
		}
		m.SetLoading(false)
		assert.Equal(t, Complete, m.Phase(), "after %d advances", advances)
	}
}

func TestSetLoadingFalseWhileIdleIsNoop(t *testing.T) {
	t.Parallel()

	m := New()
	assert.Nil(t, m.SetLoading(false))
	assert.Equal(t, Idle, m.Phase())
}

func TestRestartWhileSettlingCancelsCompletion(t *testing.T) {
	t.Parallel()

	completions := 0
	m := New(WithOnComplete(func() { completions++ }))
	m.SetLoading(true)
	m.SetLoading(false)
	require.Equal(t, Complete, m.Phase())

	pendingSettle := m.timer.Tick(kindSettle, time.Now())
	m.SetLoading(true)
	require.Equal(t, ReadingInput, m.Phase())

	m, cmd := m.Update(pendingSettle)
	assert.Nil(t, cmd)
	assert.Zero(t, completions, "the cancelled settle never fires")
	assert.Equal(t, ReadingInput, m.Phase())

	m.SetLoading(false)
	m, _ = m.Update(m.timer.Tick(kindSettle, time.Now()))
	m, _ = m.Update(m.timer.Tick(kindSettle, time.Now()))
	assert.Equal(t, 1, completions)
	assert.Equal(t, Idle, m.Phase())
}

func TestStaleAdvanceAfterFinishIsDropped(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetLoading(true)
	pendingAdvance := m.timer.Tick(kindAdvance, time.Now())
	m.SetLoading(false)

	m, cmd := m.Update(pendingAdvance)
	assert.Nil(t, cmd)
	assert.Equal(t, Complete, m.Phase())
}

func TestStopDropsTimersWithoutCompleting(t *testing.T) {
	t.Parallel()

	completions := 0
	m := New(WithOnComplete(func() { completions++ }))
	m.SetLoading(true)
	m.SetLoading(false)
	pending := m.timer.Tick(kindSettle, time.Now())

	m.Stop()
	assert.Equal(t, Idle, m.Phase())

	m, _ = m.Update(pending)
	assert.Zero(t, completions)
	assert.Nil(t, m.SetLoading(true))
	assert.Equal(t, Idle, m.Phase())
}

func TestSettleReturnsToIdle(t *testing.T) {
	t.Parallel()

	m := New(WithSettleDelay(0))
	m.SetLoading(true)
	m.SetLoading(false)

	m, cmd := m.Update(m.timer.Tick(kindSettle, time.Now()))
	require.NotNil(t, cmd, "settling reports the phase change and completion")
	assert.Equal(t, Idle, m.Phase())
	assert.Contains(t, m.View(), "idle")
}

func TestStagesView(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetLoading(true)
	m, _ = m.Update(m.timer.Tick(kindAdvance, time.Now()))

	stages := m.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, StageDone, stages[0].Status)
	assert.Equal(t, StageActive, stages[1].Status)
	assert.Equal(t, StagePending, stages[2].Status)

	view := m.View()
	assert.Contains(t, view, "✓ reading input")
	assert.Contains(t, view, "● processing")
	assert.Contains(t, view, "○ delivering")
}
