package dock

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"at centre", 0, 2},
		{"halfway", 6, 1.5},
		{"halfway on the left", -6, 1.5},
		{"at threshold", 12, 1},
		{"beyond threshold", 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Magnification(tt.distance, 2, 12), 1e-9)
		})
	}

	assert.Equal(t, 1.0, Magnification(0, 2, 0), "a zero threshold disables magnification")
}

func TestMagnificationIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := Magnification(0, 3, 10)
	for d := 0.5; d <= 12; d += 0.5 {
		next := Magnification(d, 3, 10)
		assert.LessOrEqual(t, next, prev)
		assert.GreaterOrEqual(t, next, 1.0)
		prev = next
	}
}

func items() []Item {
	return []Item{{Icon: "⌂", Label: "Home"}, {Icon: "✉", Label: "Mail"}, {Icon: "♫", Label: "Music"}}
}

func TestScalesFollowLatestSampleOnly(t *testing.T) {
	t.Parallel()

	m := New(items())
	for _, s := range m.Scales() {
		assert.Equal(t, 1.0, s)
	}

	m.PointerAt(0)
	m.PointerAt(m.Centre(1))
	scales := m.Scales()
	require.Len(t, scales, 3)
	assert.Equal(t, DefaultMaxScale, scales[1])
	assert.InDelta(t, scales[0], scales[2], 1e-9, "neighbours at equal distance scale equally")
	assert.Less(t, scales[0], scales[1])

	m.Leave()
	for _, s := range m.Scales() {
		assert.Equal(t, 1.0, s)
	}
}

func TestMouseMotionUpdatesPointer(t *testing.T) {
	t.Parallel()

	m := New(items(), WithOrigin(10, 5))
	m, _ = m.Update(tea.MouseMsg{X: 13, Y: 6, Action: tea.MouseActionMotion})
	assert.Equal(t, DefaultMaxScale, m.Scales()[0])

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 6, Action: tea.MouseActionMotion})
	assert.Equal(t, 1.0, m.Scales()[0], "leaving the dock resets the scale")
}

func TestViewShowsLabelOfHoveredItem(t *testing.T) {
	t.Parallel()

	m := New(items())
	assert.NotContains(t, m.View(), "Mail")

	m.PointerAt(m.Centre(1))
	assert.Contains(t, m.View(), "Mail")
	assert.Empty(t, New(nil).View())
}
