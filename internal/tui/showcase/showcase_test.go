package showcase

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	"github.com/alexisbeaulieu97/kinetic/internal/clip"
	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, board clip.Clipboard) Model {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	clock := motion.NewManualClock(epoch)
	return New(cat, Options{Settings: config.Default(), Clipboard: board, Clock: clock.Now})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectID(t *testing.T, m Model, id string) Model {
	t.Helper()

	for range m.Entries() {
		if entry, ok := m.Selected(); ok && entry.ID == id {
			return m
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	entry, _ := m.Selected()
	require.Equal(t, id, entry.ID)
	return m
}

func TestNewMountsFirstEntryGroupedByCategory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))

	entry, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "buttons", entry.Category)
	assert.IsType(t, &burstPreview{}, m.Preview())

	var categories []string
	for _, e := range m.Entries() {
		if len(categories) == 0 || categories[len(categories)-1] != e.Category {
			categories = append(categories, e.Category)
		}
	}
	cat, err := catalog.Default()
	require.NoError(t, err)
	assert.Equal(t, cat.Categories(), categories)
}

func TestNavigationWrapsAround(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	first, _ := m.Selected()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	last, _ := m.Selected()
	assert.Equal(t, m.Entries()[len(m.Entries())-1].ID, last.ID)

	m, _ = update(t, m, runes("j"))
	again, _ := m.Selected()
	assert.Equal(t, first.ID, again.ID)
}

func TestSwitchingSelectionStopsPreviousPreview(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	m = selectID(t, m, "countdown")

	old, ok := m.Preview().(*countdownPreview)
	require.True(t, ok)
	staleTick := old.model.Init()
	require.NotNil(t, staleTick)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, old.model.Stopped())
	assert.IsType(t, &loaderPreview{}, m.Preview())

	// The torn-down countdown's tick reaches the new preview and is ignored.
	loaderBefore := m.Preview().(*loaderPreview).model.Phase()
	m, _ = update(t, m, staleTick())
	assert.Equal(t, loaderBefore, m.Preview().(*loaderPreview).model.Phase())
}

func TestFilterNarrowsAndRestoresList(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	total := len(m.Entries())

	m, _ = update(t, m, runes("/"))
	require.True(t, m.Filtering())
	for _, r := range "dock" {
		m, _ = update(t, m, runes(string(r)))
	}

	require.NotEmpty(t, m.Entries())
	assert.Less(t, len(m.Entries()), total)
	entry, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "dock", entry.ID)
	assert.IsType(t, &dockPreview{}, m.Preview())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Filtering())
	assert.Len(t, m.Entries(), total)
	entry, _ = m.Selected()
	assert.Equal(t, "dock", entry.ID)
}

func TestFilterWithoutMatchesShowsEmptyState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	m, _ = update(t, m, runes("/"))
	for _, r := range "zzzz" {
		m, _ = update(t, m, runes(string(r)))
	}

	assert.Empty(t, m.Entries())
	assert.Nil(t, m.Preview())
	assert.Contains(t, m.View(), "no matches")
}

func TestActionDrivesPreview(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	p := m.Preview().(*burstPreview)
	require.False(t, p.model.Active())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	assert.True(t, p.model.Active())
	assert.NotEmpty(t, p.model.Particles())
}

func TestCopyInstallCommandSetsTransientStatus(t *testing.T) {
	t.Parallel()

	board := clip.NewMemory(nil)
	m := newTestModel(t, board)
	entry, _ := m.Selected()

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, clearCmd := update(t, m, cmd())
	require.NotNil(t, clearCmd)

	assert.Equal(t, entry.InstallCommand(), board.Text())
	assert.Contains(t, m.Status(), "copied install command")

	m, _ = update(t, m, m.statusTimer.Tick(kindClearStatus, epoch))
	assert.Empty(t, m.Status())
}

func TestNewerCopySupersedesStatusClear(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))

	m, _ = update(t, m, CopiedMsg{What: "install command", Text: "go get a"})
	stale := m.statusTimer.Tick(kindClearStatus, epoch)
	m, _ = update(t, m, CopiedMsg{What: "starter code", Text: "package main\n\nfunc main() {}\n"})

	m, _ = update(t, m, stale)
	assert.Equal(t, "copied starter code: 3 lines", m.Status())
}

func TestCopySnippet(t *testing.T) {
	t.Parallel()

	board := clip.NewMemory(nil)
	m := newTestModel(t, board)

	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)
	_, _ = update(t, m, cmd())

	assert.True(t, strings.HasPrefix(board.Text(), "package main"))
}

func TestCopyFailureIsReported(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(errors.New("no display")))

	m, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, "copy failed: no display", m.Status())
	assert.True(t, m.statusErr)
}

func TestCapturingPreviewReceivesKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	m = selectID(t, m, "floating-label-field")
	p := m.Preview().(*fieldPreview)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.Capturing())

	m, _ = update(t, m, runes("j"))
	entry, _ := m.Selected()
	assert.Equal(t, "floating-label-field", entry.ID)
	assert.Equal(t, "j", p.model.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.Capturing())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "copy code")
}

func TestViewShowsSelectionAndInstallLine(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, clip.NewMemory(nil))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	entry, _ := m.Selected()

	view := m.View()
	assert.Contains(t, view, "kinetic showcase")
	assert.Contains(t, view, entry.Name)
	assert.Contains(t, view, "widgets/burst")
	assert.Contains(t, view, "space: toggle")
}

func TestFactoryBuildsEveryCatalogEntry(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Default()
	require.NoError(t, err)

	clock := motion.NewManualClock(epoch)
	f := NewFactory(config.Default(), clock.Now).WithWidth(60)
	for _, e := range cat.List() {
		p := f.Build(e.ID)
		require.NotNil(t, p, e.ID)
		assert.NotContains(t, p.View(), "no preview for", e.ID)
		p.Stop()
	}
	assert.Contains(t, f.Build("unknown").View(), "no preview for unknown")
}
