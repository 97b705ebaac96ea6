package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualMetrics_Multispace(t *testing.T) {
	b := New("Ｈｅｌｌｏ, ｗｏｒｌｄ!")

	assert.Equal(t, 13, b.Cursor())
	assert.Equal(t, 23, b.VisualCursor())
	assert.Equal(t, 18, b.VisualScroll(6))
}

func TestVisualCursor(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		cursor int
		want   int
	}{
		{"empty", "", 0, 0},
		{"start", "hello", 0, 0},
		{"ascii", "hello", 3, 3},
		{"wide", "日本語", 2, 4},
		{"combining mark", "e\u0301x", 2, 1},
		{"mixed", "a日b", 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.value).WithCursor(tt.cursor)
			assert.Equal(t, tt.want, b.VisualCursor())
		})
	}
}

func TestVisualScroll(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		cursor int
		width  int
		want   int
	}{
		{"fits", "hello", 5, 10, 0},
		{"exact fit", "hello", 5, 5, 0},
		{"ascii overflow", "hello world", 11, 4, 7},
		{"zero width viewport", "abc", 3, 0, 3},
		{"negative width", "abc", 2, -4, 2},
		{"cursor at start", "hello world", 0, 3, 0},
		// target is 3 cells; the second wide char spans columns 2-3, so the
		// scroll skips past it to 4 rather than splitting it.
		{"wide straddle", "日本語日本", 5, 7, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.value).WithCursor(tt.cursor)
			assert.Equal(t, tt.want, b.VisualScroll(tt.width))
		})
	}
}

func TestVisualScroll_KeepsCursorInViewport(t *testing.T) {
	b := New("ｗｉｄｅ and narrow 文字 mixed")
	for cursor := 0; cursor <= b.Len(); cursor++ {
		b.WithCursor(cursor)
		for width := 1; width < 12; width++ {
			scroll := b.VisualScroll(width)
			assert.LessOrEqual(t, scroll, b.VisualCursor())
			assert.LessOrEqual(t, b.VisualCursor()-scroll, width)
		}
	}
}

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('Ｈ'))
	assert.Equal(t, 2, RuneWidth('語'))
	assert.Equal(t, 0, RuneWidth('\u0301'))
}
