// internal/input/action.go
package input

// Action identifies one edit operation of a single-line field.
type Action int

// The closed set of actions a field understands.
const (
	ActionUnknown Action = iota // Default/invalid action

	// --- Cursor Movement ---
	ActionSetCursor // Requires Pos argument
	ActionGoToPrevChar
	ActionGoToNextChar
	ActionGoToPrevWord
	ActionGoToNextWord
	ActionGoToStart
	ActionGoToEnd

	// --- Text Manipulation ---
	ActionInsertChar // Requires Rune argument
	ActionDeletePrevChar
	ActionDeleteNextChar
	ActionDeletePrevWord
	ActionDeleteNextWord
	ActionDeleteLine
	ActionDeleteTillEnd

	// --- Terminal ---
	ActionSubmit // Enter
	ActionEscape // Esc
)

// Command is a decoded request for a buffer. Only the payload field its
// Action needs is meaningful.
type Command struct {
	Action Action `json:"action" toml:"action"`
	Rune   rune   `json:"rune,omitempty" toml:"rune,omitempty"` // Used for ActionInsertChar
	Pos    int    `json:"pos,omitempty" toml:"pos,omitempty"`   // Used for ActionSetCursor
}

// Cmd builds a command for an action that carries no payload.
func Cmd(a Action) Command {
	return Command{Action: a}
}

// SetCursor builds an ActionSetCursor command.
func SetCursor(pos int) Command {
	return Command{Action: ActionSetCursor, Pos: pos}
}

// InsertChar builds an ActionInsertChar command.
func InsertChar(r rune) Command {
	return Command{Action: ActionInsertChar, Rune: r}
}

// IsTerminal reports whether the action ends editing rather than mutating
// the buffer.
func (a Action) IsTerminal() bool {
	return a == ActionSubmit || a == ActionEscape
}
