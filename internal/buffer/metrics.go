package buffer

import "github.com/mattn/go-runewidth"

// widths does not consult the locale, so ambiguous-width characters are
// always one cell and results do not depend on the user's environment.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns the number of terminal cells r occupies: 0 for
// combining marks and control characters, 2 for wide East Asian
// characters, 1 otherwise.
func RuneWidth(r rune) int {
	return widths.RuneWidth(r)
}

// VisualCursor returns the display column of the cursor: the summed width
// of every character before it.
func (b *Buffer) VisualCursor() int {
	col := 0
	for _, r := range b.value[:b.cursor] {
		col += RuneWidth(r)
	}
	return col
}

// VisualScroll returns the display column at which a viewport width cells
// wide should start so the cursor stays inside it. The result always falls
// on a character boundary: when a wide character straddles the ideal
// offset, the scroll moves past it.
func (b *Buffer) VisualScroll(width int) int {
	target := b.VisualCursor() - max(width, 0)
	if target <= 0 {
		return 0
	}

	scroll := 0
	for _, r := range b.value {
		if scroll >= target {
			break
		}
		scroll += RuneWidth(r)
	}
	return scroll
}
