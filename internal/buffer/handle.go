package buffer

import (
	"slices"

	"github.com/bethropolis/tide-input/internal/input"
)

var (
	valueOnly  = input.Changed(true, false)
	cursorOnly = input.Changed(false, true)
	both       = input.Changed(true, true)
)

// Handle applies cmd to the buffer. The boolean is false when the command
// had no effect (for example GoToStart with the cursor already at 0), in
// which case the buffer is untouched and no redraw is needed.
//
// Submit and Escape never touch the buffer and are always reported.
func (b *Buffer) Handle(cmd input.Command) (input.Response, bool) {
	n := len(b.value)

	switch cmd.Action {
	case input.ActionSetCursor:
		pos := clamp(cmd.Pos, 0, n)
		if pos == b.cursor {
			return input.Response{}, false
		}
		b.cursor = pos
		return cursorOnly, true

	case input.ActionInsertChar:
		b.value = slices.Insert(b.value, b.cursor, cmd.Rune)
		b.cursor++
		return both, true

	case input.ActionDeletePrevChar:
		if b.cursor == 0 {
			return input.Response{}, false
		}
		b.cursor--
		b.value = slices.Delete(b.value, b.cursor, b.cursor+1)
		return both, true

	case input.ActionDeleteNextChar:
		if b.cursor == n {
			return input.Response{}, false
		}
		b.value = slices.Delete(b.value, b.cursor, b.cursor+1)
		return valueOnly, true

	case input.ActionGoToPrevChar:
		if b.cursor == 0 {
			return input.Response{}, false
		}
		b.cursor--
		return cursorOnly, true

	case input.ActionGoToNextChar:
		if b.cursor == n {
			return input.Response{}, false
		}
		b.cursor++
		return cursorOnly, true

	case input.ActionGoToPrevWord:
		if b.cursor == 0 {
			return input.Response{}, false
		}
		b.cursor = prevWordStart(b.value, b.cursor)
		return cursorOnly, true

	case input.ActionGoToNextWord:
		if b.cursor == n {
			return input.Response{}, false
		}
		b.cursor = nextWordStart(b.value, b.cursor)
		return cursorOnly, true

	case input.ActionDeletePrevWord:
		if b.cursor == 0 {
			return input.Response{}, false
		}
		start := prevWordStart(b.value, b.cursor)
		b.value = slices.Delete(b.value, start, b.cursor)
		b.cursor = start
		return both, true

	case input.ActionDeleteNextWord:
		if b.cursor == n {
			return input.Response{}, false
		}
		end := nextWordStart(b.value, b.cursor)
		b.value = slices.Delete(b.value, b.cursor, end)
		return valueOnly, true

	case input.ActionGoToStart:
		if b.cursor == 0 {
			return input.Response{}, false
		}
		b.cursor = 0
		return cursorOnly, true

	case input.ActionGoToEnd:
		if b.cursor == n {
			return input.Response{}, false
		}
		b.cursor = n
		return cursorOnly, true

	case input.ActionDeleteLine:
		if n == 0 {
			return input.Response{}, false
		}
		moved := b.cursor != 0
		b.value = b.value[:0]
		b.cursor = 0
		return input.Changed(true, moved), true

	case input.ActionDeleteTillEnd:
		b.value = b.value[:b.cursor]
		return valueOnly, true

	case input.ActionSubmit:
		return input.Response{Outcome: input.OutcomeSubmitted}, true

	case input.ActionEscape:
		return input.Response{Outcome: input.OutcomeEscaped}, true
	}

	return input.Response{}, false
}
