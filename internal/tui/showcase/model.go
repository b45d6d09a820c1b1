// Package showcase is the interactive catalog browser: a filterable list on
// the left and a live preview of the selected widget on the right.
package showcase

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	"github.com/alexisbeaulieu97/kinetic/internal/clip"
	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	"github.com/alexisbeaulieu97/kinetic/pkg/motion"
)

const (
	listWidth    = 30
	statusTTL    = 3 * time.Second
	minPaneWidth = 30
)

const kindClearStatus motion.Kind = 0

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Settings  config.Settings
	Clipboard clip.Clipboard
	Logger    *logger.Logger
	Clock     motion.Clock
}

// Model is the showcase state.
type Model struct {
	catalog *catalog.Catalog
	entries []catalog.Entry
	cursor  int

	selectedID string
	preview    Preview
	factory    Factory

	filter    textinput.Model
	filtering bool

	keys keyMap
	help help.Model

	clipboard   clip.Clipboard
	status      string
	statusErr   bool
	statusTimer motion.Timer

	log *logger.Logger

	width  int
	height int
}

// New builds the showcase over cat and mounts the first entry.
func New(cat *catalog.Catalog, opts Options) Model {
	settings := opts.Settings
	if settings == (config.Settings{}) {
		settings = config.Default()
	}
	board := opts.Clipboard
	if board == nil {
		board = clip.NewSystem()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter components"
	filter.CharLimit = 40

	m := Model{
		catalog:     cat,
		entries:     grouped(cat),
		factory:     NewFactory(settings, opts.Clock),
		filter:      filter,
		keys:        defaultKeyMap(),
		help:        help.New(),
		clipboard:   board,
		statusTimer: motion.NewTimer(),
		log:         log.WithComponent("showcase"),
		width:       100,
		height:      30,
	}
	m.factory = m.factory.WithWidth(m.paneWidth())
	if len(m.entries) > 0 {
		m.selectedID = m.entries[0].ID
		m.preview = m.factory.Build(m.selectedID)
	}
	return m
}

// Init starts the mounted preview.
func (m Model) Init() tea.Cmd {
	if m.preview == nil {
		return nil
	}
	return m.preview.Init()
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return catalog.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Entries returns the entries that pass the current filter.
func (m Model) Entries() []catalog.Entry {
	return m.entries
}

// Preview returns the mounted preview.
func (m Model) Preview() Preview {
	return m.preview
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

func (m Model) paneWidth() int {
	return max(m.width-listWidth-6, minPaneWidth)
}

// mount tears down the current preview and mounts the one for the entry
// under the cursor. Nothing happens when the selection did not change.
func (m *Model) mount() tea.Cmd {
	entry, ok := m.Selected()
	if !ok {
		if m.preview != nil {
			m.preview.Stop()
		}
		m.preview = nil
		m.selectedID = ""
		return nil
	}
	if entry.ID == m.selectedID && m.preview != nil {
		return nil
	}
	return m.remount(entry.ID)
}

func (m *Model) remount(id string) tea.Cmd {
	if m.preview != nil {
		m.preview.Stop()
	}
	m.log.WithFields(map[string]any{"from": m.selectedID, "to": id}).Debug("mount preview")
	m.selectedID = id
	m.preview = m.factory.Build(id)
	return m.preview.Init()
}

// applyFilter narrows the list and keeps the selection when it survives.
func (m *Model) applyFilter() tea.Cmd {
	matches := catalog.SearchEntries(grouped(m.catalog), m.filter.Value())
	m.entries = m.entries[:0:0]
	m.cursor = 0
	for i, match := range matches {
		m.entries = append(m.entries, match.Entry)
		if match.Entry.ID == m.selectedID {
			m.cursor = i
		}
	}
	return m.mount()
}

// grouped lists the catalog one category after another.
func grouped(cat *catalog.Catalog) []catalog.Entry {
	out := make([]catalog.Entry, 0, cat.Len())
	for _, c := range cat.Categories() {
		out = append(out, cat.ByCategory(c)...)
	}
	return out
}
