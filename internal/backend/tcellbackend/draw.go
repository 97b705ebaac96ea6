// internal/backend/tcellbackend/draw.go
package tcellbackend

import (
	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/render"
	"github.com/gdamore/tcell/v2"
)

// Styles holds the styles used to draw a field.
type Styles struct {
	Field  tcell.Style
	Cursor tcell.Style
}

// DefaultStyles draws the field in the terminal's colors with a reversed
// cursor cell.
func DefaultStyles() Styles {
	return Styles{
		Field:  tcell.StyleDefault,
		Cursor: tcell.StyleDefault.Reverse(true),
	}
}

// Backend is the tcell adapter: a keymap for *tcell.EventKey and a
// renderer onto a tcell.Screen.
type Backend struct {
	*Keymap
	Styles Styles
}

var _ backend.Backend[*tcell.EventKey, tcell.Screen] = (*Backend)(nil)

// New creates a tcell backend. A nil keymap gets the default bindings.
func New(keys *Keymap, styles Styles) *Backend {
	if keys == nil {
		keys = NewKeymap()
	}
	return &Backend{Keymap: keys, Styles: styles}
}

// Render draws the field at the origin. Exactly width columns are written;
// the cursor cell uses the Cursor style and every other cell the Field
// style. Drawing to a tcell screen cannot fail, so the error is always nil.
func (b *Backend) Render(s tcell.Screen, value string, cursor int, at backend.Origin, width int) error {
	cells := render.Field(value, cursor, width)
	logger.DebugTagf("render", "Render: %d cells at (%d,%d), cursor column %d", len(cells), at.X, at.Y, render.CursorColumn(cells))

	x := at.X
	for _, c := range cells {
		style := b.Styles.Field
		if c.Cursor {
			style = b.Styles.Cursor
		}
		s.SetContent(x, at.Y, c.Rune, c.Combining, style)
		x += c.Width
	}
	return nil
}
