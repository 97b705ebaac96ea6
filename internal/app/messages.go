package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bethropolis/tide-input/internal/backend/teabackend"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
)

// Mode is the input mode of the messages recorder.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

const messagesLabel = "> "

// MessagesModel records messages typed into a field. In normal mode 'e'
// starts editing and 'q' quits; while editing, Enter records the message
// and clears the field and Esc goes back to normal mode.
type MessagesModel struct {
	field    teabackend.Field
	mode     Mode
	messages []string
	width    int
	th       *theme.Theme

	edit key.Binding
	quit key.Binding
}

// NewMessagesModel creates the recorder in normal mode.
func NewMessagesModel(th *theme.Theme) MessagesModel {
	if th == nil {
		th = theme.Default()
	}
	f := teabackend.NewField("").Blur().SetOrigin(0, 1)
	f.Label = messagesLabel
	f.Styles = teabackend.Styles{
		Field:  th.Lipgloss(theme.StyleField),
		Cursor: th.Lipgloss(theme.StyleCursor),
	}
	f.LabelStyle = th.Lipgloss(theme.StyleLabel)

	return MessagesModel{
		field: f,
		th:    th,
		edit:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "start editing")),
		quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "exit")),
	}
}

func (m MessagesModel) Init() tea.Cmd { return nil }

// Mode returns the current input mode.
func (m MessagesModel) Mode() Mode { return m.mode }

// Messages returns the recorded messages, oldest first.
func (m MessagesModel) Messages() []string { return m.messages }

// Value returns the text currently in the field.
func (m MessagesModel) Value() string { return m.field.Value() }

func (m MessagesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.field.Width = max(msg.Width-lipgloss.Width(messagesLabel), 1)
		return m, nil
	case tea.KeyMsg:
		if m.mode == ModeNormal {
			return m.updateNormal(msg)
		}
		return m.updateEditing(msg)
	case tea.MouseMsg:
		if m.mode == ModeEditing {
			var cmd tea.Cmd
			m.field, cmd = m.field.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m MessagesModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.edit):
		m.mode = ModeEditing
		m.field = m.field.Focus()
	case key.Matches(msg, m.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m MessagesModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.field.KeyMap.Submit):
		recorded := m.field.Buffer().ValueAndReset()
		m.messages = append(m.messages, recorded)
		logger.DebugTagf("app", "MessagesModel: recorded message %d", len(m.messages))
		return m, nil
	case key.Matches(msg, m.field.KeyMap.Escape):
		m.mode = ModeNormal
		m.field = m.field.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m MessagesModel) View() string {
	var b strings.Builder

	help := "Press q to exit, e to start editing."
	if m.mode == ModeEditing {
		help = "Press Esc to stop editing, Enter to record the message"
	}
	b.WriteString(m.clip(help))
	b.WriteString("\n")
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	b.WriteString(m.th.Lipgloss(theme.StyleLabel).Render("Messages"))
	for i, msg := range m.messages {
		b.WriteString("\n")
		b.WriteString(m.clip(fmt.Sprintf("%d: %s", i, msg)))
	}
	return b.String()
}

// clip truncates a line to the window width once the width is known.
func (m MessagesModel) clip(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}

// RunMessages runs the recorder full screen and returns the messages.
func RunMessages(th *theme.Theme) ([]string, error) {
	final, err := tea.NewProgram(NewMessagesModel(th), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return nil, err
	}
	return final.(MessagesModel).Messages(), nil
}
