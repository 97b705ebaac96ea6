// Package teabackend adapts the editing core to Bubble Tea: key messages
// become commands, and fields render to strings styled with lipgloss.
package teabackend

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bethropolis/tide-input/internal/input"
)

// KeyMap holds the bindings of a field. Bubble Tea only delivers key
// presses and repeats, so every message is eligible for mapping.
type KeyMap struct {
	DeletePrevChar key.Binding
	DeleteNextChar key.Binding
	GoToPrevChar   key.Binding
	GoToNextChar   key.Binding
	GoToPrevWord   key.Binding
	GoToNextWord   key.Binding
	DeletePrevWord key.Binding
	DeleteNextWord key.Binding
	DeleteLine     key.Binding
	DeleteTillEnd  key.Binding
	GoToStart      key.Binding
	GoToEnd        key.Binding
	Submit         key.Binding
	Escape         key.Binding
}

// DefaultKeyMap returns the emacs-style bindings. Tab is not bound.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		DeletePrevChar: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "delete char")),
		DeleteNextChar: key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete next char")),
		GoToPrevChar:   key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		GoToNextChar:   key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		GoToPrevWord:   key.NewBinding(key.WithKeys("ctrl+left", "alt+b"), key.WithHelp("alt+b", "word left")),
		GoToNextWord:   key.NewBinding(key.WithKeys("ctrl+right", "alt+f"), key.WithHelp("alt+f", "word right")),
		DeletePrevWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace", "alt+d"), key.WithHelp("ctrl+w", "delete word")),
		DeleteNextWord: key.NewBinding(key.WithKeys("ctrl+delete"), key.WithHelp("ctrl+del", "delete next word")),
		DeleteLine:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		DeleteTillEnd:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill to end")),
		GoToStart:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		GoToEnd:        key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		Submit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Escape:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp returns the bindings worth advertising in a one-line hint.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Submit, km.Escape, km.DeletePrevWord, km.DeleteLine}
}

func (km KeyMap) table() []struct {
	binding key.Binding
	action  input.Action
} {
	return []struct {
		binding key.Binding
		action  input.Action
	}{
		{km.DeletePrevChar, input.ActionDeletePrevChar},
		{km.DeleteNextChar, input.ActionDeleteNextChar},
		{km.GoToPrevChar, input.ActionGoToPrevChar},
		{km.GoToNextChar, input.ActionGoToNextChar},
		{km.GoToPrevWord, input.ActionGoToPrevWord},
		{km.GoToNextWord, input.ActionGoToNextWord},
		{km.DeletePrevWord, input.ActionDeletePrevWord},
		{km.DeleteNextWord, input.ActionDeleteNextWord},
		{km.DeleteLine, input.ActionDeleteLine},
		{km.DeleteTillEnd, input.ActionDeleteTillEnd},
		{km.GoToStart, input.ActionGoToStart},
		{km.GoToEnd, input.ActionGoToEnd},
		{km.Submit, input.ActionSubmit},
		{km.Escape, input.ActionEscape},
	}
}

// Map translates one key message into a command. A plain typed character
// inserts itself; pasted text spanning several runes needs MapAll.
func (km KeyMap) Map(msg tea.KeyMsg) (input.Command, bool) {
	if msg.Paste {
		return input.Command{}, false
	}
	for _, entry := range km.table() {
		if key.Matches(msg, entry.binding) {
			return input.Cmd(entry.action), true
		}
	}
	if isText(msg) && len(msg.Runes) == 1 {
		return input.InsertChar(msg.Runes[0]), true
	}
	return input.Command{}, false
}

// MapAll is Map extended to pasted or multi-rune input, which expands into
// one insertion per rune. Control characters such as pasted newlines are
// dropped.
func (km KeyMap) MapAll(msg tea.KeyMsg) []input.Command {
	if isText(msg) && (msg.Paste || len(msg.Runes) > 1) {
		cmds := make([]input.Command, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			cmds = append(cmds, input.InsertChar(r))
		}
		return cmds
	}
	if cmd, ok := km.Map(msg); ok {
		return []input.Command{cmd}
	}
	return nil
}

func isText(msg tea.KeyMsg) bool {
	return (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt
}
