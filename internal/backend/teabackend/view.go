package teabackend

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bethropolis/tide-input/internal/backend"
	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/render"
)

// Styles holds the lipgloss styles used to draw a field.
type Styles struct {
	Field  lipgloss.Style
	Cursor lipgloss.Style
}

// DefaultStyles draws the field unstyled with a reversed cursor cell.
func DefaultStyles() Styles {
	return Styles{
		Field:  lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// View returns the field as one styled line of exactly width columns.
func View(value string, cursor, width int, styles Styles) string {
	cells := render.Field(value, cursor, width)

	var out, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styles.Field.Render(run.String()))
			run.Reset()
		}
	}
	for _, c := range cells {
		text := string(c.Rune) + string(c.Combining)
		if c.Cursor {
			flush()
			out.WriteString(styles.Cursor.Render(text))
			continue
		}
		run.WriteString(text)
	}
	flush()
	return out.String()
}

// Backend is the Bubble Tea adapter. Bubble Tea views are strings, so the
// drawing surface is a strings.Builder.
type Backend struct {
	KeyMap KeyMap
	Styles Styles
}

var _ backend.Backend[tea.KeyMsg, *strings.Builder] = (*Backend)(nil)

// New creates a Bubble Tea backend with the default key map.
func New(styles Styles) *Backend {
	return &Backend{KeyMap: DefaultKeyMap(), Styles: styles}
}

// Map implements backend.EventMapper.
func (b *Backend) Map(msg tea.KeyMsg) (input.Command, bool) {
	return b.KeyMap.Map(msg)
}

// Render writes the field into sb. The origin is expressed as leading
// blank lines and spaces, which is how a string view positions content.
func (b *Backend) Render(sb *strings.Builder, value string, cursor int, at backend.Origin, width int) error {
	logger.DebugTagf("render", "Render: tea field width %d at (%d,%d)", width, at.X, at.Y)
	sb.WriteString(strings.Repeat("\n", max(at.Y, 0)))
	sb.WriteString(strings.Repeat(" ", max(at.X, 0)))
	sb.WriteString(View(value, cursor, width, b.Styles))
	return nil
}
