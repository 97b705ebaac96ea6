package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/event"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// feed sends msg to m and then every message its commands produce, the way
// the Bubble Tea runtime would. It reports whether the model asked to quit.
func feed(m tea.Model, msg tea.Msg) (tea.Model, bool) {
	queue := []tea.Msg{msg}
	quit := false
	for len(queue) > 0 {
		var cmd tea.Cmd
		m, cmd = m.Update(queue[0])
		queue = queue[1:]
		for _, out := range expand(cmd) {
			if _, ok := out.(tea.QuitMsg); ok {
				quit = true
				continue
			}
			queue = append(queue, out)
		}
	}
	return m, quit
}

func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, expand(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestPromptModel_Submit(t *testing.T) {
	var m tea.Model = NewPromptModel(Options{Label: "Name: ", Width: 10, Initial: "World"})

	var seen []event.Type
	record := func(e event.Event) bool { seen = append(seen, e.Type); return false }
	events := m.(PromptModel).Events()
	events.Subscribe(event.TypeValueChanged, record)
	events.Subscribe(event.TypeSubmitted, record)
	events.Subscribe(event.TypeAppQuit, record)

	m, _ = feed(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m, _ = feed(m, runes("Ada"))
	view := ansi.Strip(m.View())
	assert.True(t, strings.HasPrefix(view, "Name: Ada"), view)
	assert.Contains(t, view, "enter submit")

	m, quit := feed(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, quit)

	pm := m.(PromptModel)
	assert.Equal(t, Result{Value: "Ada", Accepted: true}, pm.Result())
	assert.Empty(t, pm.View())
	assert.Equal(t, event.TypeSubmitted, seen[len(seen)-2])
	assert.Equal(t, event.TypeAppQuit, seen[len(seen)-1])
	assert.Contains(t, seen, event.TypeValueChanged)
}

func TestPromptModel_EscapeAndCtrlC(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			var m tea.Model = NewPromptModel(Options{Initial: "World"})
			m, quit := feed(m, msg)
			require.True(t, quit)
			assert.Equal(t, Result{Value: "World"}, m.(PromptModel).Result())
		})
	}
}

func TestPromptModel_FinishesOnce(t *testing.T) {
	var m tea.Model = NewPromptModel(Options{Initial: "x"})
	m, _ = feed(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, quit := feed(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, quit)
	assert.Equal(t, Result{Value: "x", Accepted: true}, m.(PromptModel).Result())
}

func TestMessagesModel(t *testing.T) {
	var m tea.Model = NewMessagesModel(nil)
	m, _ = feed(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	// Typing in normal mode does nothing.
	m, _ = feed(m, runes("x"))
	assert.Equal(t, "", m.(MessagesModel).Value())
	assert.Contains(t, m.View(), "Press q to exit, e to start editing.")

	m, _ = feed(m, runes("e"))
	require.Equal(t, ModeEditing, m.(MessagesModel).Mode())
	assert.Contains(t, m.View(), "Press Esc to stop editing")

	m, _ = feed(m, runes("hi"))
	m, quit := feed(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, quit)
	m, _ = feed(m, runes("q"))
	m, _ = feed(m, tea.KeyMsg{Type: tea.KeyEnter})

	mm := m.(MessagesModel)
	assert.Equal(t, []string{"hi", "q"}, mm.Messages())
	assert.Equal(t, "", mm.Value())
	view := ansi.Strip(mm.View())
	assert.Contains(t, view, "0: hi")
	assert.Contains(t, view, "1: q")

	m, _ = feed(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.(MessagesModel).Mode())

	_, quit = feed(m, runes("q"))
	assert.True(t, quit)
}

func TestMessagesModel_ClipsLongMessages(t *testing.T) {
	var m tea.Model = NewMessagesModel(nil)
	m, _ = feed(m, tea.WindowSizeMsg{Width: 8, Height: 10})
	m, _ = feed(m, runes("e"))
	m, _ = feed(m, runes("abcdefghijkl"))
	m, _ = feed(m, tea.KeyMsg{Type: tea.KeyEnter})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	assert.Equal(t, "0: abcd…", lines[len(lines)-1])
}
