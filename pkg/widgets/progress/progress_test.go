package progress

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewAsShowsLabelAndPercentage(t *testing.T) {
	t.Parallel()

	p := New("Upload", 20)
	view := p.ViewAs(0.5)
	assert.True(t, strings.HasPrefix(view, "Upload "))
	assert.Contains(t, view, "50%")

	assert.Contains(t, p.ViewAs(2), "100%", "ratios above one are clamped")
	assert.Contains(t, p.ViewAs(-1), "0%")
}

func TestSetPercentClampsAndAnimates(t *testing.T) {
	t.Parallel()

	p := New("", 10)
	cmd := p.SetPercent(1.5)
	require.NotNil(t, cmd)
	assert.Equal(t, 1.0, p.Percent())

	p.SetRatio(1, 4)
	assert.Equal(t, 0.25, p.Percent())

	p.SetRatio(3, 0)
	assert.Equal(t, 0.0, p.Percent())
}

func TestUpdateIgnoresForeignMessages(t *testing.T) {
	t.Parallel()

	p := New("x", 10)
	p, cmd := p.Update("noise")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, lipgloss.Height(p.View()))
}

func TestCounter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3/7", Counter(3, 7))
}
