// Package render lays out a single-line field into terminal cells without
// depending on any terminal library. Backends draw the resulting cells.
package render

import (
	"unicode"

	"github.com/bethropolis/tide-input/internal/buffer"
)

// Cell is one drawn character. Width is the number of terminal columns it
// covers (1 or 2); Combining holds zero-width runes that follow Rune.
type Cell struct {
	Rune      rune
	Combining []rune
	Width     int
	Cursor    bool
}

// Field lays out value with the cursor at the given character index into a
// row of exactly width columns.
//
// The scroll offset leaves room for the cell under the cursor: one column
// at the end of the content, two for a wide character. Short content is
// padded with spaces and exactly one cell is flagged as the cursor: the
// character at the cursor, or a trailing blank when the cursor sits at the
// end of the content. A wide character cannot be shown in a one-column
// field, so there the cursor falls back to a blank.
func Field(value string, cursor, width int) []Cell {
	if width <= 0 {
		return nil
	}

	b := buffer.New(value).WithCursor(cursor)
	scroll := scrollFor(b, width)
	cursorCol := b.VisualCursor() - scroll

	cells := make([]Cell, 0, width)
	col := 0  // absolute display column of the next character
	used := 0 // columns filled so far
	cursorPlaced := false

	for _, r := range []rune(value) {
		w := buffer.RuneWidth(r)
		if col < scroll {
			col += w
			continue
		}
		if w == 0 {
			// Zero-width runes ride on the previous cell.
			if len(cells) > 0 && !unicode.IsControl(r) {
				last := &cells[len(cells)-1]
				last.Combining = append(last.Combining, r)
			}
			continue
		}
		if used+w > width {
			break
		}
		c := Cell{Rune: r, Width: w}
		if !cursorPlaced && used == cursorCol {
			c.Cursor = true
			cursorPlaced = true
		}
		cells = append(cells, c)
		col += w
		used += w
	}

	if !cursorPlaced && used < width {
		cells = append(cells, Cell{Rune: ' ', Width: 1, Cursor: true})
		used++
	}
	for used < width {
		cells = append(cells, Cell{Rune: ' ', Width: 1})
		used++
	}
	return cells
}

// scrollFor is the scroll offset Field uses for a row width columns wide.
func scrollFor(b *buffer.Buffer, width int) int {
	w := 1
	if b.Cursor() < b.Len() {
		w = max(buffer.RuneWidth([]rune(b.Value())[b.Cursor()]), 1)
	}
	return b.VisualScroll(width - w)
}

// String returns the plain text of a laid out row.
func String(cells []Cell) string {
	rs := make([]rune, 0, len(cells))
	for _, c := range cells {
		rs = append(rs, c.Rune)
		rs = append(rs, c.Combining...)
	}
	return string(rs)
}

// CursorColumn returns the column offset of the cursor cell, or -1 when
// no cell carries the cursor.
func CursorColumn(cells []Cell) int {
	col := 0
	for _, c := range cells {
		if c.Cursor {
			return col
		}
		col += c.Width
	}
	return -1
}

// IndexAt maps a column inside a field laid out by Field back to the
// character index a click on that column should put the cursor at.
// Columns past the content map to the end of the value.
func IndexAt(value string, cursor, width, col int) int {
	rs := []rune(value)
	if width <= 0 || col < 0 {
		return min(max(cursor, 0), len(rs))
	}
	b := buffer.New(value).WithCursor(cursor)
	target := scrollFor(b, width) + col

	pos := 0
	for i, r := range rs {
		w := buffer.RuneWidth(r)
		if w == 0 {
			continue
		}
		if pos+w > target {
			return i
		}
		pos += w
	}
	return len(rs)
}
