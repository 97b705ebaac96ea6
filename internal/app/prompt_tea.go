package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bethropolis/tide-input/internal/backend/teabackend"
	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
)

// PromptModel is the prompt as a Bubble Tea program.
type PromptModel struct {
	field  teabackend.Field
	events *event.Manager
	th     *theme.Theme
	result Result
	done   bool
}

// NewPromptModel builds the prompt from the same options as the tcell App.
// Keys and Screen only apply to tcell and are ignored.
func NewPromptModel(opts Options) PromptModel {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	f := teabackend.NewField(opts.Initial)
	f.Label = opts.Label
	f.Width = opts.Width
	if f.Width <= 0 {
		f.Width = config.DefaultWidth
	}
	f.Styles = teabackend.Styles{
		Field:  th.Lipgloss(theme.StyleField),
		Cursor: th.Lipgloss(theme.StyleCursor),
	}
	f.LabelStyle = th.Lipgloss(theme.StyleLabel)

	return PromptModel{field: f, events: event.NewManager(), th: th}
}

func (m PromptModel) Init() tea.Cmd { return nil }

// Events exposes the event bus so callers can observe the field.
func (m PromptModel) Events() *event.Manager { return m.events }

// Result reports how the prompt ended.
func (m PromptModel) Result() Result { return m.result }

// Field returns the embedded field.
func (m PromptModel) Field() teabackend.Field { return m.field }

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case teabackend.SubmittedMsg:
		return m.finish(Result{Value: msg.Value, Accepted: true}, event.TypeSubmitted)
	case teabackend.EscapedMsg:
		return m.finish(Result{Value: msg.Value}, event.TypeEscaped)
	case teabackend.ChangedMsg:
		m.events.Dispatch(event.TypeFor(msg.Response), m.fieldData())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.finish(Result{Value: m.field.Value()}, event.TypeEscaped)
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m PromptModel) finish(r Result, t event.Type) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.done = true
	m.result = r
	m.events.Dispatch(t, m.fieldData())
	m.events.Dispatch(event.TypeAppQuit, event.AppQuitData{Value: r.Value, Accepted: r.Accepted})
	logger.DebugTagf("app", "PromptModel: finished, accepted=%v", r.Accepted)
	return m, tea.Quit
}

func (m PromptModel) fieldData() event.FieldData {
	b := m.field.Buffer()
	return event.FieldData{Value: b.Value(), Cursor: b.Cursor(), VisualCursor: b.VisualCursor()}
}

// View renders the field and a hint line. A finished prompt renders
// nothing so the terminal is left clean.
func (m PromptModel) View() string {
	if m.done {
		return ""
	}
	return m.field.View() + "\n" + m.th.Lipgloss(theme.StyleStatusBarHint).Render(hintLine(m.field.KeyMap))
}

func hintLine(km teabackend.KeyMap) string {
	var parts []string
	for _, b := range km.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// RunPrompt runs the prompt inline on the terminal.
func RunPrompt(opts Options) (Result, error) {
	final, err := tea.NewProgram(NewPromptModel(opts)).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(PromptModel).Result(), nil
}
