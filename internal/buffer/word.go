package buffer

import "unicode"

// IsWordRune reports whether r belongs to a word: any letter or number,
// in any script. Everything else separates words.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// prevWordStart scans left from cursor over separators and then over one
// word, returning the index where that word starts (0 at the buffer start).
func prevWordStart(rs []rune, cursor int) int {
	i := cursor
	for i > 0 && !IsWordRune(rs[i-1]) {
		i--
	}
	for i > 0 && IsWordRune(rs[i-1]) {
		i--
	}
	return i
}

// nextWordStart scans right from cursor over the word it sits in and the
// separators after it, returning the start of the next word or len(rs).
func nextWordStart(rs []rune, cursor int) int {
	i := cursor
	for i < len(rs) && IsWordRune(rs[i]) {
		i++
	}
	for i < len(rs) && !IsWordRune(rs[i]) {
		i++
	}
	return i
}
