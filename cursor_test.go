package indexable

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
)

func Test_Cursor_Scan(t *testing.T) {
	text := New("a😀b")
	cursor := NewCursor(text)

	assert.Equal(t, text, cursor.Text())
	assert.Equal(t, 0, cursor.Pos())
	assert.False(t, cursor.AtEnd())

	r, ok := cursor.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 0, cursor.Pos())

	var scanned []rune
	for {
		r, ok := cursor.Next()
		if !ok {
			break
		}
		scanned = append(scanned, r)
	}
	assert.Equal(t, []rune{'a', '😀', 'b'}, scanned)
	assert.True(t, cursor.AtEnd())

	_, ok = cursor.Peek()
	assert.False(t, ok)
}

func Test_Cursor_SetPos(t *testing.T) {
	text := New("a😀b")
	cursor := NewCursor(text)

	assert.NoError(t, cursor.SetPos(2))
	r, ok := cursor.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'b', r)

	t.Run("end of text position", func(t *testing.T) {
		assert.NoError(t, cursor.SetPos(text.RuneCount()))
		assert.True(t, cursor.AtEnd())
	})

	t.Run("out of range", func(t *testing.T) {
		err := cursor.SetPos(text.RuneCount() + 1)
		assert.Error(t, err)
		assert.IsType(t, &ErrIndexOutOfRange{}, err)

		err = cursor.SetPos(-1)
		assert.Error(t, err)
	})
}

func Test_Cursor_Rest(t *testing.T) {
	text := New("0😀2345678😀")
	cursor := NewCursor(text)

	assert.Equal(t, "0😀2345678😀", cursor.Rest())

	assert.NoError(t, cursor.SetPos(1))
	assert.Equal(t, "😀2345678😀", cursor.Rest())

	assert.NoError(t, cursor.SetPos(text.RuneCount()))
	assert.Equal(t, "", cursor.Rest())
}

func Test_Cursor_MatchLiteral(t *testing.T) {
	text := New("heigh😀ho")
	cursor := NewCursor(text)

	assert.True(t, cursor.MatchLiteral("heigh"))
	assert.Equal(t, 5, cursor.Pos())

	assert.False(t, cursor.MatchLiteral("ho"))
	assert.Equal(t, 5, cursor.Pos())

	assert.True(t, cursor.MatchLiteral("😀ho"))
	assert.True(t, cursor.AtEnd())

	t.Run("literal longer than the remaining text", func(t *testing.T) {
		assert.False(t, cursor.MatchLiteral("x"))
	})
}

func Test_Cursor_MatchRegexp(t *testing.T) {
	number := regexp2.MustCompile(`[0-9]+`, regexp2.RE2|regexp2.Unicode)

	t.Run("match advances past the match end", func(t *testing.T) {
		text := New("😀123+45")
		cursor := NewCursor(text)

		match, ok, err := cursor.MatchRegexp(number)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "123", match)
		// match positions are rune based, the emoji counts as one
		assert.Equal(t, 4, cursor.Pos())

		assert.True(t, cursor.MatchLiteral("+"))

		match, ok, err = cursor.MatchRegexp(number)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "45", match)
		assert.True(t, cursor.AtEnd())
	})

	t.Run("no match leaves the cursor in place", func(t *testing.T) {
		text := New("abc")
		cursor := NewCursor(text)

		match, ok, err := cursor.MatchRegexp(number)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", match)
		assert.Equal(t, 0, cursor.Pos())
	})
}
