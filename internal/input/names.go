package input

import (
	"fmt"
	"strings"
)

var actionNames = map[Action]string{
	ActionSetCursor:      "set_cursor",
	ActionGoToPrevChar:   "go_to_prev_char",
	ActionGoToNextChar:   "go_to_next_char",
	ActionGoToPrevWord:   "go_to_prev_word",
	ActionGoToNextWord:   "go_to_next_word",
	ActionGoToStart:      "go_to_start",
	ActionGoToEnd:        "go_to_end",
	ActionInsertChar:     "insert_char",
	ActionDeletePrevChar: "delete_prev_char",
	ActionDeleteNextChar: "delete_next_char",
	ActionDeletePrevWord: "delete_prev_word",
	ActionDeleteNextWord: "delete_next_word",
	ActionDeleteLine:     "delete_line",
	ActionDeleteTillEnd:  "delete_till_end",
	ActionSubmit:         "submit",
	ActionEscape:         "escape",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

// String returns the snake_case name used in config files.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction looks up an action by its config name. Case and surrounding
// whitespace are ignored; '-' is accepted in place of '_'.
func ParseAction(name string) (Action, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if a, ok := actionsByName[key]; ok {
		return a, nil
	}
	return ActionUnknown, fmt.Errorf("unknown action %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if _, ok := actionNames[a]; !ok {
		return nil, fmt.Errorf("cannot marshal action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (o Outcome) String() string {
	switch o {
	case OutcomeChanged:
		return "changed"
	case OutcomeSubmitted:
		return "submitted"
	case OutcomeEscaped:
		return "escaped"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if o.String() == "unknown" {
		return nil, fmt.Errorf("cannot marshal outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "changed":
		*o = OutcomeChanged
	case "submitted":
		*o = OutcomeSubmitted
	case "escaped":
		*o = OutcomeEscaped
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}
