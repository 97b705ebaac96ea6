package app

import (
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/logger"
)

// handleFieldChangedForStatus keeps the status bar in step with the field.
// Editing the text dismisses any temporary message.
func (a *App) handleFieldChangedForStatus(e event.Event) bool {
	if e.Type == event.TypeValueChanged {
		a.statusBar.ResetTemporaryMessage()
	}
	if data, ok := e.Data.(event.FieldData); ok {
		a.statusBar.SetCursorInfo(data.Cursor, len([]rune(data.Value)), data.VisualCursor)
	}
	return false
}

// handleFinished ends the prompt on submit or escape.
func (a *App) handleFinished(e event.Event) bool {
	data, _ := e.Data.(event.FieldData)
	accepted := e.Type == event.TypeSubmitted
	logger.DebugTagf("app", "App: field %v with %q", e.Type, data.Value)
	a.Finish(Result{Value: data.Value, Accepted: accepted})
	return false
}
