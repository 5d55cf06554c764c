package indexable

import (
	"strings"
	"unicode/utf8"
)

// Text wraps an immutable string with a rune boundary index, so that
// rune positions translate to byte offsets in constant time. It is the
// building block for hand-written lexers and parsers that count
// positions in runes but need to slice the underlying UTF-8 bytes.
//
// A Text is read-only after construction and safe for concurrent
// readers. The zero value is not usable; construct values with New.
type Text struct {
	str string
	// runeOffsets[i] is the byte offset at which the i-th rune starts.
	// The final entry is len(str), so [runeOffsets[i], runeOffsets[i+1])
	// always spans exactly one rune.
	runeOffsets []int
}

// New builds the rune index for s by scanning it once. Construction
// never fails; the empty string is allowed. Text keeps a reference to
// s rather than a copy — Go strings are immutable, so the index can
// never be invalidated.
func New(s string) *Text {
	runeOffsets := make([]int, 0, len(s)+1)
	for i := range s {
		runeOffsets = append(runeOffsets, i)
	}
	runeOffsets = append(runeOffsets, len(s))

	return &Text{
		str:         s,
		runeOffsets: runeOffsets,
	}
}

// RuneCount returns the number of runes (not bytes) in the text.
func (t *Text) RuneCount() int {
	return len(t.runeOffsets) - 1
}

// String returns the full original text.
func (t *Text) String() string {
	return t.str
}

// RuneAt returns the rune at the given rune index.
func (t *Text) RuneAt(index int) (rune, error) {
	if index < 0 || index >= t.RuneCount() {
		return 0, newErrIndexOutOfRange(index, t.RuneCount())
	}

	r, _ := utf8.DecodeRuneInString(t.str[t.runeOffsets[index]:])
	return r, nil
}

// ByteOffset returns the byte offset at which the rune at index
// starts. index may equal RuneCount, in which case the total byte
// length of the text is returned.
func (t *Text) ByteOffset(index int) (int, error) {
	if index < 0 || index > t.RuneCount() {
		return 0, newErrIndexOutOfRange(index, t.RuneCount())
	}

	return t.runeOffsets[index], nil
}

// Slice returns the text covered by the half-open rune range
// [start, end). The result is a view onto the original string — no
// copy is made, and it is always valid UTF-8 because both cut points
// are rune boundaries.
func (t *Text) Slice(start, end int) (string, error) {
	if start < 0 || end < start || end > t.RuneCount() {
		return "", newErrInvalidRange(start, end, t.RuneCount())
	}

	return t.str[t.runeOffsets[start]:t.runeOffsets[end]], nil
}

// SliceFrom returns the text from rune start to the end of the text.
func (t *Text) SliceFrom(start int) (string, error) {
	return t.Slice(start, t.RuneCount())
}

// SliceTo returns the text from the beginning up to rune end
// (exclusive).
func (t *Text) SliceTo(end int) (string, error) {
	return t.Slice(0, end)
}

// SliceInclusive returns the text covered by the closed rune range
// [start, end], equivalent to Slice(start, end+1).
func (t *Text) SliceInclusive(start, end int) (string, error) {
	return t.Slice(start, end+1)
}

// LineColumn converts rune position index into a 1-based line number
// and rune column for diagnostics. index may equal RuneCount to
// describe an end-of-text position.
func (t *Text) LineColumn(index int) (int, int, error) {
	if index < 0 || index > t.RuneCount() {
		return 0, 0, newErrIndexOutOfRange(index, t.RuneCount())
	}

	prefix := t.str[:t.runeOffsets[index]]
	line := strings.Count(prefix, "\n") + 1
	lastNewline := strings.LastIndexByte(prefix, '\n')
	column := utf8.RuneCountInString(prefix[lastNewline+1:]) + 1

	return line, column, nil
}
