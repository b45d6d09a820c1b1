// Package field provides a text input whose label floats above the box once
// the field is focused or holds a value.
package field

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

// Option configures a Model.
type Option func(*Model)

// WithValidator sets a validation function run on every change.
func WithValidator(fn func(string) error) Option {
	return func(m *Model) { m.input.Validate = fn }
}

// WithWidth sets the input width in columns.
func WithWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.input.Width = width
		}
	}
}

// WithPassword masks the input.
func WithPassword() Option {
	return func(m *Model) {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
	}
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a floating-label text field.
type Model struct {
	label string
	input textinput.Model
	theme components.Theme
}

// New creates a blurred, empty field.
func New(label string, opts ...Option) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Width = 30
	m := Model{label: label, input: input, theme: components.DefaultTheme()}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.Placeholder = m.label
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus focuses the field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// Err returns the last validation error.
func (m Model) Err() error {
	return m.input.Err
}

// Floating reports whether the label sits above the box.
func (m Model) Floating() bool {
	return m.Focused() || m.Value() != ""
}

// Update forwards key and blink messages to the input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the label, the box and any validation error.
func (m Model) View() string {
	palette := m.theme.Palette
	accent := palette.Neutral.Muted
	if m.Focused() {
		accent = palette.Primary.Base
	}
	if m.input.Err != nil {
		accent = palette.Danger.Base
	}

	input := m.input
	label := " "
	if m.Floating() {
		input.Placeholder = ""
		label = lipgloss.NewStyle().Foreground(accent).Render(m.label)
	}
	box := lipgloss.NewStyle().Border(m.theme.Borders.Rounded).BorderForeground(accent).
		Padding(0, 1).Render(input.View())

	rows := []string{" " + label, box}
	if m.input.Err != nil {
		rows = append(rows, lipgloss.NewStyle().Foreground(palette.Danger.Base).Render(" "+m.input.Err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
