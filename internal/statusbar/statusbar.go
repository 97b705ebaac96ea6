// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/tui"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StyleHint      tcell.Style // Style for the key hints on the right
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleHint:      tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlue),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the status line under the prompt. It shows the cursor
// position, a temporary message when one is set, and key hints.
type StatusBar struct {
	config Config
	mu     sync.Mutex

	cursor       int
	length       int
	visualCursor int
	hints        string

	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetCursorInfo updates the cursor position shown: the character index,
// the field length and the display column.
func (sb *StatusBar) SetCursorInfo(cursor, length, visual int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor, sb.length, sb.visualCursor = cursor, length, visual
}

// SetHints sets the key hints, e.g. "enter accept", "esc cancel".
func (sb *StatusBar) SetHints(hints ...string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.hints = strings.Join(hints, "  ")
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

func (sb *StatusBar) defaultText() string {
	return fmt.Sprintf(" Char %d/%d  Col %d", sb.cursor, sb.length, sb.visualCursor)
}

// Draw renders the status bar on the last row of a width x height area.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	style, text := sb.config.StyleDefault, sb.defaultText()
	if active {
		style, text = sb.config.StyleMessage, " "+sb.tempMessage
	}
	hints := sb.hints
	sb.mu.Unlock()

	tui.FillRow(screen, y, width, style)
	used := tui.DrawText(screen, 0, y, width, text, style)

	// Hints are right-aligned and only drawn when they fit entirely.
	if hints != "" {
		hw := uniseg.StringWidth(hints) + 1
		if used+1+hw <= width {
			tui.DrawText(screen, width-hw, y, hw, hints, sb.config.StyleHint)
		}
	}
}
