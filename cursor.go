package indexable

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Cursor scans a Text rune by rune, the access pattern of hand-written
// lexers. All positions are rune indices; advancing and tail lookups
// go through the rune index of the Text, so the underlying string is
// never rescanned.
//
// A Cursor is not safe for concurrent use. Share the Text instead and
// give each goroutine its own Cursor.
type Cursor struct {
	text *Text
	pos  int
}

// NewCursor returns a cursor positioned at the first rune of t.
func NewCursor(t *Text) *Cursor {
	return &Cursor{text: t}
}

// Text returns the Text the cursor scans.
func (c *Cursor) Text() *Text {
	return c.text
}

// Pos returns the current rune position.
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos moves the cursor to the given rune position. Position
// RuneCount is valid and means end of text.
func (c *Cursor) SetPos(pos int) error {
	if pos < 0 || pos > c.text.RuneCount() {
		return newErrIndexOutOfRange(pos, c.text.RuneCount())
	}

	c.pos = pos
	return nil
}

// AtEnd reports whether the cursor has consumed all runes.
func (c *Cursor) AtEnd() bool {
	return c.pos >= c.text.RuneCount()
}

// Peek returns the rune at the cursor without advancing. The second
// return is false at end of text.
func (c *Cursor) Peek() (rune, bool) {
	r, err := c.text.RuneAt(c.pos)
	if err != nil {
		return 0, false
	}

	return r, true
}

// Next returns the rune at the cursor and advances past it.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}

	return r, ok
}

// Rest returns the unconsumed tail of the text as a view onto the
// original string.
func (c *Cursor) Rest() string {
	return c.text.str[c.text.runeOffsets[c.pos]:]
}

// MatchLiteral reports whether the text at the cursor begins with
// literal, advancing past it when it does.
func (c *Cursor) MatchLiteral(literal string) bool {
	end := c.pos + utf8.RuneCountInString(literal)
	if end > c.text.RuneCount() {
		return false
	}
	if c.text.str[c.text.runeOffsets[c.pos]:c.text.runeOffsets[end]] != literal {
		return false
	}

	c.pos = end
	return true
}

// MatchRegexp matches re against the unconsumed tail of the text. On a
// match the cursor advances past the end of the match and the matched
// string is returned. regexp2 reports match positions in runes, the
// unit the cursor counts in.
func (c *Cursor) MatchRegexp(re *regexp2.Regexp) (string, bool, error) {
	m, err := re.FindStringMatch(c.Rest())
	if err != nil {
		return "", false, err
	}
	if m == nil || len(m.Captures) < 1 {
		return "", false, nil
	}

	capture := m.Captures[0]
	c.pos += capture.Index + capture.Length
	return capture.String(), true, nil
}
