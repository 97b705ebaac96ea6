package teabackend

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/buffer"
	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/render"
)

// SubmittedMsg is sent when the field receives the submit key.
type SubmittedMsg struct{ Value string }

// EscapedMsg is sent when the field receives the escape key.
type EscapedMsg struct{ Value string }

// ChangedMsg is sent after a key changed the value or moved the cursor.
type ChangedMsg struct{ Response input.Response }

// Field is an embeddable Bubble Tea component wrapping one buffer.
type Field struct {
	Label      string
	Width      int
	KeyMap     KeyMap
	Styles     Styles
	LabelStyle lipgloss.Style

	buf     *buffer.Buffer
	focused bool
	origin  backend.Origin
}

// NewField creates a focused field holding value with the cursor at its end.
func NewField(value string) Field {
	return Field{
		Width:      15,
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		LabelStyle: lipgloss.NewStyle(),
		buf:        buffer.New(value),
		focused:    true,
	}
}

func (f Field) Init() tea.Cmd { return nil }

func (f Field) Buffer() *buffer.Buffer { return f.buf }
func (f Field) Value() string          { return f.buf.Value() }
func (f Field) Cursor() int            { return f.buf.Cursor() }

func (f Field) Focus() Field {
	f.focused = true
	return f
}

func (f Field) Blur() Field {
	f.focused = false
	return f
}

func (f Field) Focused() bool { return f.focused }

// SetOrigin records where the field's label starts on screen so mouse
// clicks can be translated into cursor positions.
func (f Field) SetOrigin(x, y int) Field {
	f.origin = backend.Origin{X: x, Y: y}
	return f
}

func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.updateKey(msg)
	case tea.MouseMsg:
		return f.updateMouse(msg)
	}
	return f, nil
}

func (f Field) updateKey(msg tea.KeyMsg) (Field, tea.Cmd) {
	var cmds []tea.Cmd
	for _, c := range f.KeyMap.MapAll(msg) {
		resp, ok := f.buf.Handle(c)
		if !ok {
			continue
		}
		value := f.buf.Value()
		switch {
		case resp.Submitted():
			cmds = append(cmds, func() tea.Msg { return SubmittedMsg{Value: value} })
		case resp.Escaped():
			cmds = append(cmds, func() tea.Msg { return EscapedMsg{Value: value} })
		default:
			cmds = append(cmds, changed(resp))
		}
	}
	logger.DebugTagf("keys", "Field: %q -> %d command(s)", msg.String(), len(cmds))
	return f, tea.Batch(cmds...)
}

func (f Field) updateMouse(msg tea.MouseMsg) (Field, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != f.origin.Y {
		return f, nil
	}
	col := msg.X - f.origin.X - lipgloss.Width(f.Label)
	if col < 0 || col >= f.Width {
		return f, nil
	}
	idx := render.IndexAt(f.buf.Value(), f.buf.Cursor(), f.Width, col)
	resp, ok := f.buf.Handle(input.SetCursor(idx))
	if !ok {
		return f, nil
	}
	return f, changed(resp)
}

func changed(resp input.Response) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{Response: resp} }
}

// View renders the label followed by the field. A blurred field shows no
// cursor highlight.
func (f Field) View() string {
	styles := f.Styles
	if !f.focused {
		styles.Cursor = styles.Field
	}
	return f.LabelStyle.Render(f.Label) + View(f.buf.Value(), f.buf.Cursor(), f.Width, styles)
}
