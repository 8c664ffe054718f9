package cursor

import "unicode/utf8"

// Lexemes decode a user-facing value bounded by metric boundaries. Two
// lexemes exist: a character (bounded by two codepoint boundaries) and a
// line (bounded by beginning-of-buffer, newlines, or end-of-buffer).
//
// The Get variants mirror Emacs' forward-char and friends: GetNextChar
// reads the character under the cursor and leaves the cursor on the next
// character, so repeated calls consume the buffer left to right.

// IsOnChar reports whether the cursor addresses a character.
func (c *Cursor) IsOnChar() bool {
	return c.pos < len(c.data)
}

// IsOnLine reports whether the cursor addresses a line.
func (c *Cursor) IsOnLine() bool {
	return c.pos <= len(c.data)
}

// NextChar moves the cursor to the next character boundary and returns
// its zero-width address.
func (c *Cursor) NextChar() (Interval, bool) {
	beg, ok := Chars.Next(c.data, c.pos)
	if !ok {
		return Interval{}, false
	}
	c.pos = beg
	return Interval{Start: beg, End: beg}, true
}

// PrevChar moves the cursor to the previous character boundary and
// returns its zero-width address.
func (c *Cursor) PrevChar() (Interval, bool) {
	beg, ok := Chars.Prev(c.data, c.pos)
	if !ok {
		return Interval{}, false
	}
	c.pos = beg
	return Interval{Start: beg, End: beg}, true
}

// GetNextChar returns the character under the cursor and advances to
// the next character boundary.
func (c *Cursor) GetNextChar() (rune, bool) {
	beg, ok := Chars.Next(c.data, c.pos)
	if !ok {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.data[c.pos:])
	c.pos = beg
	return r, true
}

// GetPrevChar returns the character before the cursor and moves the
// cursor onto it.
func (c *Cursor) GetPrevChar() (rune, bool) {
	beg, ok := Chars.Prev(c.data, c.pos)
	if !ok {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.data[beg:])
	c.pos = beg
	return r, true
}

// nextLineInterval finds the line following the offset. When the offset
// is already on a line boundary that line itself is found; the interval
// includes the terminating newline, or runs to end-of-buffer for the
// last line.
func nextLineInterval(s string, offset int) (Interval, bool) {
	beg := offset
	if !Lines.IsBoundary(s, offset) {
		b, ok := Lines.Next(s, offset)
		if !ok {
			return Interval{}, false
		}
		beg = b
	}
	end, ok := Lines.Next(s, beg)
	if !ok {
		end = len(s)
	}
	return Interval{Start: beg, End: end}, true
}

// prevLineInterval finds the line preceding the offset. When the offset
// is on a line boundary the previous line ends there; otherwise the
// previous boundary closes the interval and the one before it opens it,
// falling back to beginning-of-buffer.
func prevLineInterval(s string, offset int) (Interval, bool) {
	end := offset
	if !Lines.IsBoundary(s, offset) {
		e, ok := Lines.Prev(s, offset)
		if !ok {
			return Interval{}, false
		}
		end = e
	}
	beg, ok := Lines.Prev(s, end)
	if !ok {
		beg = 0
	}
	return Interval{Start: beg, End: end}, true
}

// NextLine moves the cursor to the start of the next line and returns
// the line's address, newline included.
func (c *Cursor) NextLine() (Interval, bool) {
	i, ok := nextLineInterval(c.data, c.pos)
	if !ok {
		return Interval{}, false
	}
	c.pos = i.Start
	return i, true
}

// PrevLine moves the cursor to the start of the previous line and
// returns the line's address.
func (c *Cursor) PrevLine() (Interval, bool) {
	i, ok := prevLineInterval(c.data, c.pos)
	if !ok {
		return Interval{}, false
	}
	c.pos = i.Start
	return i, true
}

// GetNextLine returns the text of the next line and moves the cursor to
// its start. The result shares memory with the buffer.
func (c *Cursor) GetNextLine() (string, bool) {
	i, ok := c.NextLine()
	if !ok {
		return "", false
	}
	return i.Text(c.data), true
}

// GetPrevLine returns the text of the previous line and moves the
// cursor to its start. The result shares memory with the buffer.
func (c *Cursor) GetPrevLine() (string, bool) {
	i, ok := c.PrevLine()
	if !ok {
		return "", false
	}
	return i.Text(c.data), true
}
