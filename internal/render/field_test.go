package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/buffer"
)

func totalWidth(cells []Cell) int {
	w := 0
	for _, c := range cells {
		w += c.Width
	}
	return w
}

func cursorCount(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c.Cursor {
			n++
		}
	}
	return n
}

func TestField(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		cursor    int
		width     int
		text      string
		cursorCol int
	}{
		{"cursor at end pads", "hello", 5, 10, "hello     ", 5},
		{"cursor at start", "hello", 0, 10, "hello     ", 0},
		{"scrolled to end", "hello world", 11, 5, "orld ", 4},
		{"truncated at start", "hello world", 0, 5, "hello", 0},
		{"wide scrolled", "日本語", 3, 4, "語  ", 2},
		{"wide cursor scrolls into view", "ab日", 2, 3, "b日", 1},
		{"wide cursor at start", "日本語", 1, 3, "本 ", 0},
		{"wide cursor in one column", "ab日", 2, 1, " ", 0},
		{"combining mark", "e\u0301x", 2, 4, "e\u0301x  ", 1},
		{"empty", "", 0, 3, "   ", 0},
		{"single column", "abc", 3, 1, " ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Field(tt.value, tt.cursor, tt.width)
			assert.Equal(t, tt.text, String(cells))
			assert.Equal(t, tt.cursorCol, CursorColumn(cells))
			assert.Equal(t, tt.width, totalWidth(cells))
			assert.Equal(t, 1, cursorCount(cells))
		})
	}
}

func TestField_ZeroWidth(t *testing.T) {
	assert.Nil(t, Field("abc", 1, 0))
	assert.Equal(t, -1, CursorColumn(nil))
}

func TestField_EveryCursorPositionIsVisible(t *testing.T) {
	value := "mixed 日本 text ｗｉｄｅ end"
	n := len([]rune(value))
	for width := 1; width <= 12; width++ {
		for cursor := 0; cursor <= n; cursor++ {
			cells := Field(value, cursor, width)
			require.Equal(t, width, totalWidth(cells), "width=%d cursor=%d", width, cursor)
			require.Equal(t, 1, cursorCount(cells), "width=%d cursor=%d", width, cursor)
			col := CursorColumn(cells)
			require.GreaterOrEqual(t, col, 0)
			require.Less(t, col, width)

			// The highlighted cell is the character under the cursor
			// unless a wide one cannot fit the field at all.
			if cursor < n && (width > 1 || buffer.RuneWidth([]rune(value)[cursor]) == 1) {
				for _, c := range cells {
					if c.Cursor {
						require.Equal(t, []rune(value)[cursor], c.Rune, "width=%d cursor=%d", width, cursor)
					}
				}
			}
		}
	}
}

func TestIndexAt(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		cursor int
		width  int
		cols   []int
		want   []int
	}{
		{"unscrolled", "hello", 5, 10, []int{0, 2, 4, 5, 9}, []int{0, 2, 4, 5, 5}},
		{"scrolled", "hello world", 11, 5, []int{0, 1, 3, 4}, []int{7, 8, 10, 11}},
		{"wide runes", "日本語", 0, 10, []int{0, 1, 2, 5, 6}, []int{0, 0, 1, 2, 3}},
		{"negative column keeps cursor", "abc", 1, 5, []int{-1}, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]int, 0, len(tt.cols))
			for _, col := range tt.cols {
				got = append(got, IndexAt(tt.value, tt.cursor, tt.width, col))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("IndexAt mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
