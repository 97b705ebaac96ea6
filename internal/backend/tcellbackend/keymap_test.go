package tcellbackend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/buffer"
	"github.com/bethropolis/tide-input/internal/input"
)

func TestKeymap_DefaultBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		mod  tcell.ModMask
		want input.Action
	}{
		{"backspace", tcell.KeyBackspace2, 0, tcell.ModNone, input.ActionDeletePrevChar},
		{"ctrl-h", tcell.KeyCtrlH, 0, tcell.ModCtrl, input.ActionDeletePrevChar},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, input.ActionDeleteNextChar},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, input.ActionGoToPrevChar},
		{"ctrl-b", tcell.KeyCtrlB, 0, tcell.ModCtrl, input.ActionGoToPrevChar},
		{"ctrl-left", tcell.KeyLeft, 0, tcell.ModCtrl, input.ActionGoToPrevWord},
		{"alt-b", tcell.KeyRune, 'b', tcell.ModAlt, input.ActionGoToPrevWord},
		{"meta-b", tcell.KeyRune, 'b', tcell.ModMeta, input.ActionGoToPrevWord},
		{"right", tcell.KeyRight, 0, tcell.ModNone, input.ActionGoToNextChar},
		{"ctrl-f", tcell.KeyCtrlF, 0, tcell.ModCtrl, input.ActionGoToNextChar},
		{"ctrl-right", tcell.KeyRight, 0, tcell.ModCtrl, input.ActionGoToNextWord},
		{"alt-f", tcell.KeyRune, 'f', tcell.ModAlt, input.ActionGoToNextWord},
		{"ctrl-u", tcell.KeyCtrlU, 0, tcell.ModCtrl, input.ActionDeleteLine},
		{"ctrl-w", tcell.KeyCtrlW, 0, tcell.ModCtrl, input.ActionDeletePrevWord},
		{"alt-backspace", tcell.KeyBackspace2, 0, tcell.ModAlt, input.ActionDeletePrevWord},
		{"alt-d", tcell.KeyRune, 'd', tcell.ModAlt, input.ActionDeletePrevWord},
		{"ctrl-delete", tcell.KeyDelete, 0, tcell.ModCtrl, input.ActionDeleteNextWord},
		{"ctrl-k", tcell.KeyCtrlK, 0, tcell.ModCtrl, input.ActionDeleteTillEnd},
		{"ctrl-a", tcell.KeyCtrlA, 0, tcell.ModCtrl, input.ActionGoToStart},
		{"home", tcell.KeyHome, 0, tcell.ModNone, input.ActionGoToStart},
		{"ctrl-e", tcell.KeyCtrlE, 0, tcell.ModCtrl, input.ActionGoToEnd},
		{"end", tcell.KeyEnd, 0, tcell.ModNone, input.ActionGoToEnd},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, input.ActionSubmit},
		{"esc", tcell.KeyEscape, 0, tcell.ModNone, input.ActionEscape},
		// Enter and Backspace are Ctrl-M and Ctrl-H, so Ctrl folds away.
		{"ctrl-enter", tcell.KeyEnter, 0, tcell.ModCtrl, input.ActionSubmit},
		{"ctrl-backspace", tcell.KeyBackspace, 0, tcell.ModCtrl, input.ActionDeletePrevChar},
	}

	k := NewKeymap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := k.Map(tcell.NewEventKey(tt.key, tt.ch, tt.mod))
			require.True(t, ok)
			assert.Equal(t, input.Cmd(tt.want), cmd)
		})
	}
}

func TestKeymap_Runes(t *testing.T) {
	k := NewKeymap()

	cmd, ok := k.Map(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.InsertChar('a'), cmd)

	cmd, ok = k.Map(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift))
	require.True(t, ok)
	assert.Equal(t, input.InsertChar('A'), cmd)

	cmd, ok = k.Map(tcell.NewEventKey(tcell.KeyRune, '語', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.InsertChar('語'), cmd)

	_, ok = k.Map(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	assert.False(t, ok, "alt-modified runes are not text")
}

func TestKeymap_Unmapped(t *testing.T) {
	k := NewKeymap()

	_, ok := k.Map(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.False(t, ok, "tab is left to the caller")

	_, ok = k.Map(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)

	_, ok = k.Map(nil)
	assert.False(t, ok)
}

func TestKeymap_Apply(t *testing.T) {
	k := NewKeymap()

	err := k.Apply(map[string]string{
		"ctrl+u":     "none",
		"ctrl+y":     "delete_line",
		"alt+left":   "go-to-prev-word",
		"alt+space":  "go_to_end",
		"shift+home": "go_to_start",
	})
	require.NoError(t, err)

	_, ok := k.Map(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl))
	assert.False(t, ok)

	cmd, ok := k.Map(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	require.True(t, ok)
	assert.Equal(t, input.Cmd(input.ActionDeleteLine), cmd)

	cmd, ok = k.Map(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt))
	require.True(t, ok)
	assert.Equal(t, input.Cmd(input.ActionGoToPrevWord), cmd)

	cmd, ok = k.Map(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModAlt))
	require.True(t, ok)
	assert.Equal(t, input.Cmd(input.ActionGoToEnd), cmd)

	cmd, ok = k.Map(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModShift))
	require.True(t, ok)
	assert.Equal(t, input.Cmd(input.ActionGoToStart), cmd)
}

func TestKeymap_ApplyReportsEveryError(t *testing.T) {
	k := NewKeymap()

	err := k.Apply(map[string]string{
		"hyper+x":   "delete_line",
		"ctrl+home": "explode",
		"ctrl+r":    "insert_char",
		"ctrl+t":    "delete_line",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hyper+x")
	assert.Contains(t, err.Error(), "ctrl+home")
	assert.Contains(t, err.Error(), "ctrl+r")

	// The valid entry is still applied.
	cmd, ok := k.Map(tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl))
	require.True(t, ok)
	assert.Equal(t, input.Cmd(input.ActionDeleteLine), cmd)
}

func TestHandleEvent_TypingSession(t *testing.T) {
	be := New(nil, DefaultStyles())
	b := buffer.New("")

	for _, r := range "hello world" {
		_, ok := backend.HandleEvent[*tcell.EventKey](b, be, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		require.True(t, ok)
	}
	backend.HandleEvent[*tcell.EventKey](b, be, tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	assert.Equal(t, "hello ", b.Value())

	resp, ok := backend.HandleEvent[*tcell.EventKey](b, be, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.True(t, ok)
	assert.True(t, resp.Submitted())
}
