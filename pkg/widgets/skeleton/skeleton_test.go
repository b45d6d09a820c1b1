package skeleton

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShimmerAdvancesAndWraps(t *testing.T) {
	t.Parallel()

	m := New([]int{10, 4})
	require.NotNil(t, m.Init())

	for i := 1; i <= 16; i++ {
		m, _ = m.Update(m.timer.Tick(kindShimmer, time.Now()))
		assert.Equal(t, i%16, m.Offset())
	}
}

func TestStopDropsFrames(t *testing.T) {
	t.Parallel()

	m := New([]int{5})
	pending := m.timer.Tick(kindShimmer, time.Now())
	m.Stop()
	m, cmd := m.Update(pending)
	assert.Nil(t, cmd)
	assert.Zero(t, m.Offset())
	assert.Nil(t, m.Init())
}

func TestViewDrawsBarsWithBand(t *testing.T) {
	t.Parallel()

	m := New([]int{8, 3})
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("░", 8), lines[0])

	for i := 0; i < 3; i++ {
		m, _ = m.Update(m.timer.Tick(kindShimmer, time.Now()))
	}
	assert.Equal(t, "▓▓▓░░░░░", strings.Split(m.View(), "\n")[0])
}
