// internal/event/event.go
package event

import "github.com/bethropolis/tide-input/internal/input"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Field events
	TypeValueChanged // Fired when the field's text changes
	TypeCursorMoved  // Fired when the cursor moves without a text change
	TypeSubmitted    // Fired when the field is submitted
	TypeEscaped      // Fired when editing is cancelled

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

var typeNames = [...]string{
	TypeUnknown:      "unknown",
	TypeValueChanged: "value_changed",
	TypeCursorMoved:  "cursor_moved",
	TypeSubmitted:    "submitted",
	TypeEscaped:      "escaped",
	TypeAppReady:     "app_ready",
	TypeAppQuit:      "app_quit",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// FieldData describes the field after a change. It is the payload of
// value, cursor, submit and escape events.
type FieldData struct {
	Value        string
	Cursor       int
	VisualCursor int
}

// AppQuitData carries the final field value and whether it was accepted.
type AppQuitData struct {
	Value    string
	Accepted bool
}

// AppReadyData is empty for now.
type AppReadyData struct{}

// TypeFor maps a field response to the event it should fire. A value
// change usually moves the cursor too; only the value event is sent then.
func TypeFor(resp input.Response) Type {
	switch {
	case resp.Submitted():
		return TypeSubmitted
	case resp.Escaped():
		return TypeEscaped
	case resp.Value:
		return TypeValueChanged
	case resp.Cursor:
		return TypeCursorMoved
	}
	return TypeUnknown
}
