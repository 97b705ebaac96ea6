// internal/buffer/buffer.go
package buffer

// Buffer is the value of a single-line field plus its cursor. Content is
// stored as runes so every index is a character index, never a byte offset.
//
// The cursor is a gap position: 0 is before the first character and Len()
// is after the last one. Every method keeps 0 <= cursor <= Len().
//
// The zero value is an empty buffer ready to use. A Buffer is not safe for
// concurrent use; its owner serializes access.
type Buffer struct {
	value  []rune
	cursor int
}

// New creates a buffer holding value with the cursor placed at its end.
func New(value string) *Buffer {
	b := &Buffer{}
	return b.WithValue(value)
}

// WithValue replaces the content and moves the cursor to the end.
func (b *Buffer) WithValue(value string) *Buffer {
	b.value = []rune(value)
	b.cursor = len(b.value)
	return b
}

// WithCursor moves the cursor, clamping it to [0, Len()].
func (b *Buffer) WithCursor(cursor int) *Buffer {
	b.cursor = clamp(cursor, 0, len(b.value))
	return b
}

// Value returns the current content.
func (b *Buffer) Value() string {
	return string(b.value)
}

// Cursor returns the cursor's character index.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.value)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.value = nil
	b.cursor = 0
}

// ValueAndReset empties the buffer and returns what it held.
func (b *Buffer) ValueAndReset() string {
	v := b.Value()
	b.Reset()
	return v
}

// String implements fmt.Stringer and returns the content.
func (b *Buffer) String() string {
	return b.Value()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
