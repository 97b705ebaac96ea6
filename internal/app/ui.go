package app

import (
	"time"

	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
	"github.com/bethropolis/tide-input/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "draw: screen %dx%d, field width %d", width, height, a.fieldWidth())

	a.tuiManager.Clear()
	tui.FillRow(screen, 0, width, a.activeTheme.GetStyle(theme.StyleDefault))
	x := tui.DrawText(screen, 0, 0, width, a.label, a.activeTheme.GetStyle(theme.StyleLabel))
	if err := a.backend.Render(screen, a.buf.Value(), a.buf.Cursor(), backend.Origin{X: x, Y: 0}, a.fieldWidth()); err != nil {
		logger.Warnf("draw: render failed: %v", err)
	}
	if height > 1 {
		a.statusBar.Draw(screen, width, height)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the current field state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetCursorInfo(a.buf.Cursor(), a.buf.Len(), a.buf.VisualCursor())
}

// SetStatusMessage shows a temporary message in the status bar. A redraw is
// scheduled for just after the timeout so the message goes away even when
// no key is pressed.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
	time.AfterFunc(a.messageTimeout+10*time.Millisecond, a.requestRedraw)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
