// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws text at (x, y) cluster by cluster, never past maxWidth
// columns, and returns the number of columns used.
func DrawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if used+w > maxWidth {
			break
		}
		runes := gr.Runes()
		s.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
	return used
}

// FillRow paints a whole row with blanks in style.
func FillRow(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
