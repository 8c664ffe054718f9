package cursor

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestEssentials(t *testing.T) {
	input := "1234567890\nЗдравствуйте"
	c := New(input, 0)

	r, ok := c.GetNextChar()
	assert.True(t, ok)
	assert.Equal(t, '1', r)
	assert.Equal(t, 1, c.Pos())

	r, ok = c.GetNextChar()
	assert.True(t, ok)
	assert.Equal(t, '2', r)
	assert.Equal(t, 2, c.Pos())

	off, ok := c.Next(Lines)
	assert.True(t, ok)
	assert.Equal(t, 11, off)
	assert.True(t, c.IsBoundary(Lines))

	r, ok = c.GetNextChar()
	assert.True(t, ok)
	assert.Equal(t, 'З', r)
	assert.Equal(t, 13, c.Pos())

	c.Set(12)
	assert.False(t, c.IsBoundary(Chars))
}

func TestPrevLine(t *testing.T) {
	input := "First line\nSecond line\r\nThird line\nFour"
	c := New(input, len(input))

	line, ok := c.GetPrevLine()
	assert.True(t, ok)
	assert.Equal(t, "Third line\n", line)
	assert.Equal(t, 24, c.Pos())

	r, ok := c.GetNextChar()
	assert.True(t, ok)
	assert.Equal(t, 'T', r)

	i, ok := c.PrevLine()
	assert.True(t, ok)
	assert.Equal(t, 11, i.Start)
	r, _ = c.GetNextChar()
	assert.Equal(t, 'S', r)

	i, ok = c.PrevLine()
	assert.True(t, ok)
	assert.Equal(t, 0, i.Start)
	r, _ = c.GetNextChar()
	assert.Equal(t, 'F', r)
}

func TestCharMetric(t *testing.T) {
	input := "aЗc"
	assert.True(t, Chars.IsBoundary(input, 0))
	assert.True(t, Chars.IsBoundary(input, 1))
	assert.False(t, Chars.IsBoundary(input, 2))
	assert.True(t, Chars.IsBoundary(input, 3))
	assert.True(t, Chars.IsBoundary(input, 4))

	next, ok := Chars.Next(input, 1)
	assert.True(t, ok)
	assert.Equal(t, 3, next)

	prev, ok := Chars.Prev(input, 3)
	assert.True(t, ok)
	assert.Equal(t, 1, prev)

	_, ok = Chars.Next(input, len(input))
	assert.False(t, ok)
	_, ok = Chars.Prev(input, 0)
	assert.False(t, ok)
}

func TestLineMetricAsymmetry(t *testing.T) {
	input := "One\nTwo\nThi\nFo4"

	// Offset 0 is not a line boundary by this metric.
	assert.False(t, Lines.IsBoundary(input, 0))
	assert.True(t, Lines.IsBoundary(input, 4))

	// From the middle of a line, Prev lands on the line's own start.
	prev, ok := Lines.Prev(input, 13)
	assert.True(t, ok)
	assert.Equal(t, 12, prev)

	// From a line start, Prev skips the newline just before the offset
	// and lands on the previous line.
	prev, ok = Lines.Prev(input, 12)
	assert.True(t, ok)
	assert.Equal(t, 8, prev)

	_, ok = Lines.Prev(input, 4)
	assert.False(t, ok)

	next, ok := Lines.Next(input, 0)
	assert.True(t, ok)
	assert.Equal(t, 4, next)
	_, ok = Lines.Next(input, 12)
	assert.False(t, ok)
}

func TestMetricInverse(t *testing.T) {
	input := "αβγ\nδεζ\nηθι"

	// Chars: Prev undoes Next exactly at every boundary.
	offset := 0
	for {
		next, ok := Chars.Next(input, offset)
		if !ok {
			break
		}
		back, ok := Chars.Prev(input, next)
		assert.True(t, ok)
		assert.Equal(t, offset, back)
		offset = next
	}

	// Lines: Prev from a boundary lands on the preceding boundary, so
	// walking forward then back never loses a boundary.
	offset = 0
	for {
		next, ok := Lines.Next(input, offset)
		if !ok {
			break
		}
		if back, ok := Lines.Prev(input, next); ok {
			assert.True(t, back >= offset)
			assert.True(t, back < next)
		}
		offset = next
	}
}

func TestAtOrNext(t *testing.T) {
	input := "ab\ncd"
	c := New(input, 3)
	off, ok := c.AtOrNext(Lines)
	assert.True(t, ok)
	assert.Equal(t, 3, off)

	c.Set(1)
	off, ok = c.AtOrNext(Lines)
	assert.True(t, ok)
	assert.Equal(t, 3, off)

	c.Set(1)
	off, ok = c.AtOrPrev(Lines)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Pos())
}

func TestIntervalText(t *testing.T) {
	input := "hello world"
	i := NewInterval(6, 11)
	assert.Equal(t, "world", i.Text(input))
	assert.Equal(t, 5, i.Len())
}
