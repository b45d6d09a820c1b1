package burst

import (
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickAlternatesAndCallsBackEveryTime(t *testing.T) {
	t.Parallel()

	for _, initial := range []bool{false, true} {
		var got []bool
		m := New(WithActive(initial), WithOnToggle(func(active bool) { got = append(got, active) }))

		const clicks = 7
		for i := 0; i < clicks; i++ {
			m.Click()
		}

		require.Len(t, got, clicks)
		for i, active := range got {
			want := initial
			if i%2 == 0 {
				want = !initial
			}
			assert.Equal(t, want, active, "click %d from %v", i+1, initial)
		}
		assert.Equal(t, !initial, m.Active())
	}
}

func TestActivationProducesDistinctParticles(t *testing.T) {
	t.Parallel()

	for _, jitter := range []float64{0, 0.3, 5} {
		m := New(WithCount(14), WithJitter(jitter, 42))
		m.Click()

		particles := m.Particles()
		require.Len(t, particles, 14)

		angles := make([]float64, len(particles))
		ids := map[int]bool{}
		for i, p := range particles {
			angles[i] = p.Angle
			ids[p.ID] = true
		}
		sort.Float64s(angles)
		for i := 1; i < len(angles); i++ {
			assert.Greater(t, angles[i]-angles[i-1], 1e-9, "jitter %v", jitter)
		}
		assert.Len(t, ids, 14)
	}
}

func TestEvenSpacingWithoutJitter(t *testing.T) {
	t.Parallel()

	particles := Spread(4, 6, 0, 0, nil)
	require.Len(t, particles, 4)
	for i, p := range particles {
		assert.InDelta(t, float64(i)*math.Pi/2, p.Angle, 1e-9)
	}

	dx, dy := particles[0].Position()
	assert.Equal(t, 6, dx)
	assert.Equal(t, 0, dy)
	dx, dy = particles[1].Position()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 3, dy)

	assert.Nil(t, Spread(0, 6, 0, 0, nil))
}

func TestParticlesClearAfterWindow(t *testing.T) {
	t.Parallel()

	m := New(WithWindow(time.Second))
	cmd := m.Click()
	require.NotNil(t, cmd)
	require.Len(t, m.Particles(), DefaultCount)

	m, _ = m.Update(m.timer.Tick(kindClear, time.Now()))
	assert.Empty(t, m.Particles())
	assert.True(t, m.Active(), "clearing particles does not change the toggle")
}

func TestReactivationRestartsWindowAndReplacesParticles(t *testing.T) {
	t.Parallel()

	m := New()
	m.Click()
	first := m.Particles()
	firstClear := m.timer.Tick(kindClear, time.Now())

	m.Click()
	assert.Empty(t, m.Particles(), "deactivating clears immediately")

	m.Click()
	second := m.Particles()
	require.Len(t, second, DefaultCount)
	assert.NotEqual(t, first[0].ID, second[0].ID, "a new burst replaces the old particles")

	m, _ = m.Update(firstClear)
	assert.Len(t, m.Particles(), DefaultCount, "the first burst's clear no longer applies")

	m, _ = m.Update(m.timer.Tick(kindClear, time.Now()))
	assert.Empty(t, m.Particles())
}

func TestDeactivationSupersedesPendingClear(t *testing.T) {
	t.Parallel()

	m := New()
	m.Click()
	pending := m.timer.Tick(kindClear, time.Now())
	cmd := m.Click()
	require.NotNil(t, cmd)

	msg, ok := cmd().(ToggledMsg)
	require.True(t, ok)
	assert.False(t, msg.Active)
	assert.False(t, m.timer.Accepts(pending))
}

func TestStopDropsPendingClear(t *testing.T) {
	t.Parallel()

	m := New()
	m.Click()
	pending := m.timer.Tick(kindClear, time.Now())
	m.Stop()
	assert.Empty(t, m.Particles())

	m, cmd := m.Update(pending)
	assert.Nil(t, cmd)
	assert.Empty(t, m.State().Particles)
}

func TestViewShowsVariantCaption(t *testing.T) {
	t.Parallel()

	fav := New()
	assert.Contains(t, fav.View(), "Favorite")
	fav.Click()
	view := fav.View()
	assert.Contains(t, view, "Favorited")
	assert.Greater(t, len(strings.Split(view, "\n")), 1, "particles surround the button")

	basket := New(WithVariant(Basket))
	assert.Contains(t, basket.View(), "Add to basket")
	basket.Click()
	assert.Contains(t, basket.View(), "In basket")

	custom := New(WithLabel("Save"))
	assert.Contains(t, custom.View(), "Save")
}
