// Package chat renders a conversation with left and right aligned bubbles
// and an animated typing indicator.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/pkg/ui/components"
)

// Side is the alignment of a message.
type Side int

const (
	Incoming Side = iota
	Outgoing
)

// Message is one chat bubble.
type Message struct {
	Side   Side
	Author string
	Text   string
}

// Option configures a Model.
type Option func(*Model)

// WithWidth sets the conversation width.
func WithWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithTheme sets the render theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// Model is a chat transcript.
type Model struct {
	messages []Message
	typing   bool
	who      string
	spinner  spinner.Model
	width    int
	theme    components.Theme
}

// New creates a transcript seeded with messages.
func New(messages []Message, opts ...Option) Model {
	m := Model{
		messages: append([]Message(nil), messages...),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Points)),
		width:    48,
		theme:    components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init does nothing until someone starts typing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Messages returns the transcript.
func (m Model) Messages() []Message {
	return append([]Message(nil), m.messages...)
}

// Append adds a message and clears the typing indicator.
func (m *Model) Append(msg Message) {
	m.messages = append(m.messages, msg)
	m.typing = false
}

// Typing reports whether the indicator is shown.
func (m Model) Typing() bool {
	return m.typing
}

// SetTyping shows or hides the typing indicator for who.
func (m *Model) SetTyping(typing bool, who string) tea.Cmd {
	wasTyping := m.typing
	m.typing = typing
	m.who = who
	if typing && !wasTyping {
		return m.spinner.Tick
	}
	return nil
}

// Update animates the typing indicator. Spinner ticks stop once typing ends.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !m.typing {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the bubbles and the typing indicator.
func (m Model) View() string {
	palette := m.theme.Palette
	bubbleWidth := m.width * 3 / 4

	rows := make([]string, 0, len(m.messages)+1)
	for _, msg := range m.messages {
		style := lipgloss.NewStyle().Padding(0, 1).MaxWidth(bubbleWidth)
		align := lipgloss.Left
		if msg.Side == Outgoing {
			style = style.Background(palette.Primary.Base).Foreground(palette.Primary.OnBase)
			align = lipgloss.Right
		} else {
			style = style.Background(palette.Surface.Muted).Foreground(palette.Surface.OnBase)
		}
		text := lipgloss.NewStyle().Width(min(lipgloss.Width(msg.Text), bubbleWidth-2)).Render(msg.Text)
		bubble := style.Render(text)
		if msg.Author != "" {
			author := lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(msg.Author)
			bubble = lipgloss.JoinVertical(align, author, bubble)
		}
		rows = append(rows, lipgloss.PlaceHorizontal(m.width, align, bubble))
	}

	if m.typing {
		indicator := m.spinner.View()
		if m.who != "" {
			indicator = m.who + " is typing " + indicator
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(indicator))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
