package cursor

import (
	"regexp"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSearchForward(t *testing.T) {
	input := "One\nTwo\nThi\nFo4\nFiv\nSix\n7en"
	c := New(input, 0)

	end, ok := c.SearchForward("Two", NoBound, 1)
	assert.True(t, ok)
	assert.Equal(t, 7, end)
	assert.Equal(t, 7, c.Pos())

	// Counted occurrence, starting from the current position.
	c.Bof()
	end, ok = c.SearchForward("\n", NoBound, 3)
	assert.True(t, ok)
	assert.Equal(t, 12, end)

	// The match end may not exceed the bound.
	c.Bof()
	_, ok = c.SearchForward("Fiv", 10, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Pos())

	// Fewer occurrences than requested.
	c.Bof()
	_, ok = c.SearchForward("One", NoBound, 2)
	assert.False(t, ok)

	// Bound behind the cursor.
	c.Set(20)
	_, ok = c.SearchForward("Six", 10, 1)
	assert.False(t, ok)
	assert.Equal(t, 20, c.Pos())
}

func TestReSearchForward(t *testing.T) {
	input := "One\nTwo\nThi\nFo4\nFiv\nSix\n7en"
	c := New(input, 0)

	iv, ok := c.ReSearchForward(regexp.MustCompile(`T\w+`), NoBound)
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 4, End: 7}, iv)
	assert.Equal(t, 7, c.Pos())

	iv, ok = c.ReSearchForward(regexp.MustCompile(`T\w+`), NoBound)
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 8, End: 11}, iv)

	// Bounded search.
	c.Bof()
	_, ok = c.ReSearchForward(regexp.MustCompile(`Six`), 10)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Pos())

	// Bound at or before the cursor.
	c.Set(10)
	_, ok = c.ReSearchForward(regexp.MustCompile(`One`), 10)
	assert.False(t, ok)
}

func TestSkipCharsForward(t *testing.T) {
	c := New("***** Headline", 0)
	n := c.SkipCharsForward("*", NoBound)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, c.Pos())

	// Not a member at point.
	n = c.SkipCharsForward("*", NoBound)
	assert.Equal(t, 0, n)
	assert.Equal(t, 5, c.Pos())

	// Runs to buffer end when everything matches.
	c = New("aaa", 0)
	n = c.SkipCharsForward("a", NoBound)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, c.Pos())
}

func TestSkipCharsBackward(t *testing.T) {
	c := New("Headline *****", 14)
	n := c.SkipCharsBackward("*", NoBound)
	assert.Equal(t, 5, n)
	assert.Equal(t, 9, c.Pos())

	n = c.SkipCharsBackward("*", NoBound)
	assert.Equal(t, 0, n)
	assert.Equal(t, 9, c.Pos())
}

func TestSkipCharsRoundTrip(t *testing.T) {
	input := "12abca rest"
	c := New(input, 2)
	forward := c.SkipCharsForward("abc", NoBound)
	assert.Equal(t, 4, forward)
	backward := c.SkipCharsBackward("abc", NoBound)
	assert.Equal(t, forward, backward)
	assert.Equal(t, 2, c.Pos())
}
