// Package backend defines what a terminal library has to provide to drive a
// field: turning its key events into commands and drawing the field onto
// its surface. Each terminal library gets its own implementation in a
// subpackage; the editing core never sees their types.
package backend

import "github.com/bethropolis/tide-input/internal/input"

// EventMapper translates a backend's events into commands. Unhandled
// events (unknown keys, key releases, Tab) yield false.
type EventMapper[E any] interface {
	Map(ev E) (input.Command, bool)
}

// Origin is the top-left cell a field is drawn at.
type Origin struct {
	X, Y int
}

// Renderer draws value, with the cursor at the given character index, into
// width cells of surface starting at the origin.
type Renderer[S any] interface {
	Render(surface S, value string, cursor int, at Origin, width int) error
}

// Backend is the full adapter for one terminal library.
type Backend[E, S any] interface {
	EventMapper[E]
	Renderer[S]
}

// Target is anything that applies commands, normally a *buffer.Buffer.
type Target interface {
	Handle(cmd input.Command) (input.Response, bool)
}

// HandleEvent maps ev and applies the resulting command to t. It reports
// false when the event was unhandled or the command changed nothing.
func HandleEvent[E any](t Target, m EventMapper[E], ev E) (input.Response, bool) {
	cmd, ok := m.Map(ev)
	if !ok {
		return input.Response{}, false
	}
	return t.Handle(cmd)
}
