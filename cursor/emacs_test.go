package cursor

import (
	"regexp"
	"testing"

	"github.com/alecthomas/assert/v2"
)

var emptyLineRegex = regexp.MustCompile(`^[ \t]*$`)

func TestLineBeginningPosition(t *testing.T) {
	input := "One\nTwo\nThi\nFo4\nFiv\nSix\n7en"
	c := New(input, 13)

	assert.Equal(t, 12, c.LineBeginningPosition(1))
	assert.Equal(t, 12, c.LineBeginningPosition(1))
	assert.Equal(t, 16, c.LineBeginningPosition(2))
	assert.Equal(t, 20, c.LineBeginningPosition(3))

	assert.Equal(t, 8, c.LineBeginningPosition(0))
	assert.Equal(t, 4, c.LineBeginningPosition(-1))
	assert.Equal(t, 0, c.LineBeginningPosition(-2))

	// Never mutates the cursor.
	assert.Equal(t, 13, c.Pos())
}

func TestLineEndPosition(t *testing.T) {
	input := "One\nTwo\nThi\nFo4\nFiv\nSix\n7en"
	c := New(input, 13)
	assert.Equal(t, 27, len(input))

	assert.Equal(t, 15, c.LineEndPosition(1))
	assert.Equal(t, 19, c.LineEndPosition(2))
	assert.Equal(t, 23, c.LineEndPosition(3))
	assert.Equal(t, 26, c.LineEndPosition(4))

	assert.Equal(t, 11, c.LineEndPosition(0))
	assert.Equal(t, 7, c.LineEndPosition(-1))
	assert.Equal(t, 3, c.LineEndPosition(-2))
	assert.Equal(t, 3, c.LineEndPosition(-3))

	assert.Equal(t, 13, c.Pos())
}

func TestIsBol(t *testing.T) {
	input := "One\nTwo\nThi\nFo4\nFiv\nSix\n7en"
	c := New(input, 0)
	assert.True(t, c.IsBol())
	c.Set(2)
	assert.False(t, c.IsBol())
	c.Set(4)
	assert.True(t, c.IsBol())
	c.Set(len(input))
	assert.False(t, c.IsBol())

	c.Prev(Lines)
	assert.True(t, c.IsBol())
	c.Prev(Lines)
	assert.True(t, c.IsBol())
	c.Next(Lines)
	assert.True(t, c.IsBol())
}

func TestGotoLineBegin(t *testing.T) {
	input := "First line\nSecond line\r\nThird line"
	c := New(input, 13)
	assert.Equal(t, 11, c.GotoLineBegin())
	assert.Equal(t, 11, c.GotoLineBegin())
	assert.Equal(t, 11, c.GotoLineBegin())

	c.Set(26)
	assert.Equal(t, 24, c.GotoLineBegin())
	assert.True(t, c.IsBol())
	r, _ := c.GetNextChar()
	assert.Equal(t, 'T', r)
	assert.Equal(t, 24, c.GotoLineBegin())
	r, _ = c.GetNextChar()
	assert.Equal(t, 'T', r)

	c.Set(3)
	assert.Equal(t, 0, c.GotoLineBegin())
	r, _ = c.GetNextChar()
	assert.Equal(t, 'F', r)
}

func TestSkipWhitespace(t *testing.T) {
	c := New(" \n\t\rorg-mode ", 0)
	c.SkipWhitespace()
	r, _ := c.GetNextChar()
	assert.Equal(t, 'o', r)

	c = New("no_whitespace_for_you!", 0)
	c.SkipWhitespace()
	r, _ = c.GetNextChar()
	assert.Equal(t, 'n', r)

	// Skipping all remaining whitespace leaves an invalid cursor at the
	// end of the buffer.
	c = New(" ", 0)
	c.SkipWhitespace()
	_, ok := c.NextChar()
	assert.False(t, ok)
}

func TestLookingAtEmptyLine(t *testing.T) {
	input := "First line\n   \n\nFourth line"
	c := New(input, 0)

	_, ok := c.LookingAt(emptyLineRegex)
	assert.False(t, ok)
	c.Next(Lines)
	_, ok = c.LookingAt(emptyLineRegex)
	assert.True(t, ok)
	c.Next(Lines)
	_, ok = c.LookingAt(emptyLineRegex)
	assert.True(t, ok)
	c.Next(Lines)
	_, ok = c.LookingAt(emptyLineRegex)
	assert.False(t, ok)
}

func TestLookingAtBoundedToLine(t *testing.T) {
	input := "abc def\nghi"
	c := New(input, 4)

	// The match may not cross the newline for single-line patterns.
	_, ok := c.LookingAt(regexp.MustCompile(`def.ghi`))
	assert.False(t, ok)

	iv, ok := c.LookingAt(regexp.MustCompile(`def`))
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 4, End: 7}, iv)
	assert.Equal(t, 4, c.Pos())

	// Anchored: the match must start at the cursor itself.
	_, ok = c.LookingAt(regexp.MustCompile(`ef`))
	assert.False(t, ok)

	// Patterns flagged multiline see the rest of the buffer.
	iv, ok = c.LookingAt(regexp.MustCompile(`def\nghi`))
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 4, End: 11}, iv)
}

func TestCapturingAt(t *testing.T) {
	input := "#+caption[GIT]: org-rs\nrest"
	c := New(input, 0)

	m := c.CapturingAt(regexp.MustCompile(`(?i)#\+(caption)(?:\[(.*)\])?:`))
	assert.NotZero(t, m)
	g1, ok := m.Group(1)
	assert.True(t, ok)
	assert.Equal(t, "caption", g1)
	g2, ok := m.Group(2)
	assert.True(t, ok)
	assert.Equal(t, "GIT", g2)
	assert.Equal(t, 2, m.Start(1))
	assert.Equal(t, 9, m.End(1))
	assert.Equal(t, 0, c.Pos())

	assert.Zero(t, c.CapturingAt(regexp.MustCompile(`#\+name:`)))
}

func TestCharAfter(t *testing.T) {
	input := "a\nЗb"
	c := New(input, 0)

	r, ok := c.CharAfter(2)
	assert.True(t, ok)
	assert.Equal(t, 'З', r)
	assert.Equal(t, 0, c.Pos())

	_, ok = c.CharAfter(len(input))
	assert.False(t, ok)
}
