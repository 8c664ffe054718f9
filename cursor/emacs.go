package cursor

import (
	"regexp"
	"strings"
	"unicode"
)

// Match holds the capture groups of a successful CapturingAt call.
// Group indices follow the regexp package convention: group 0 is the
// whole match.
type Match struct {
	data string
	idx  []int
}

// Start returns the absolute start offset of group i, or -1 when the
// group did not participate in the match.
func (m *Match) Start(i int) int {
	return m.idx[2*i]
}

// End returns the absolute end offset of group i, or -1 when the group
// did not participate in the match.
func (m *Match) End(i int) int {
	return m.idx[2*i+1]
}

// Group returns the text of capture group i. The second result is false
// when the group did not participate in the match.
func (m *Match) Group(i int) (string, bool) {
	if 2*i >= len(m.idx) || m.idx[2*i] < 0 {
		return "", false
	}
	return m.data[m.idx[2*i]:m.idx[2*i+1]], true
}

// Groups returns the number of groups, whole match included.
func (m *Match) Groups() int {
	return len(m.idx) / 2
}

// isMultilineRegex reports whether a pattern can plausibly match across
// a line break. This is a textual scan for line-break indicators, not a
// real analysis of the compiled pattern; it both under- and
// over-approximates, and is kept as-is for compatibility with the
// callers written against it.
func isMultilineRegex(pattern string) bool {
	for _, ind := range []string{`\n`, `\r`, `[[:space:]]`} {
		if strings.Contains(pattern, ind) {
			return true
		}
	}
	return false
}

// matchRegion returns the slice bounds looked at by LookingAt and
// CapturingAt: up to (excluding) the current line's newline for
// single-line patterns, the rest of the buffer otherwise.
func (c *Cursor) matchRegion(re *regexp.Regexp) int {
	if isMultilineRegex(re.String()) {
		return len(c.data)
	}
	if next, ok := Lines.Next(c.data, c.pos); ok {
		return next - 1
	}
	return len(c.data)
}

// LookingAt matches re against the text directly following the cursor,
// bounded to the current line unless the pattern can match a line
// break. The match is anchored: it can succeed only starting with the
// first character after the cursor. The returned interval is in
// absolute offsets. The cursor does not move.
func (c *Cursor) LookingAt(re *regexp.Regexp) (Interval, bool) {
	end := c.matchRegion(re)
	loc := re.FindStringIndex(c.data[c.pos:end])
	if loc == nil || loc[0] != 0 {
		return Interval{}, false
	}
	return Interval{Start: c.pos + loc[0], End: c.pos + loc[1]}, true
}

// CapturingAt acts exactly as LookingAt but returns capture groups.
// It is slower than LookingAt, use it only when group data is needed.
// Returns nil when the pattern does not match. The cursor does not
// move.
func (c *Cursor) CapturingAt(re *regexp.Regexp) *Match {
	end := c.matchRegion(re)
	idx := re.FindStringSubmatchIndex(c.data[c.pos:end])
	if idx == nil || idx[0] != 0 {
		return nil
	}
	abs := make([]int, len(idx))
	for i, v := range idx {
		if v < 0 {
			abs[i] = -1
		} else {
			abs[i] = c.pos + v
		}
	}
	return &Match{data: c.data, idx: abs}
}

// CharAfter returns the character at an absolute offset without moving
// the cursor.
func (c *Cursor) CharAfter(offset int) (rune, bool) {
	pos := c.pos
	c.Set(offset)
	r, ok := c.GetNextChar()
	c.Set(pos)
	return r, ok
}

// SkipWhitespace skips over spaces, tabs and newlines. The cursor is
// left before the first non-whitespace character. On an all-whitespace
// buffer the cursor ends past the last character boundary; a following
// NextChar reports false rather than clamping.
func (c *Cursor) SkipWhitespace() int {
	for {
		r, ok := c.GetNextChar()
		if !ok {
			break
		}
		if !unicode.IsSpace(r) {
			c.PrevChar()
			break
		}
	}
	return c.pos
}

// IsBol reports whether the cursor is at the beginning of the buffer or
// at the start of a line.
func (c *Cursor) IsBol() bool {
	if c.pos == 0 {
		return true
	}
	return c.IsBoundary(Lines)
}

// GotoLineBegin moves the cursor to the beginning of the current line.
// Nothing happens when the cursor is already there. Returns the cursor
// position.
func (c *Cursor) GotoLineBegin() int {
	if c.pos != 0 {
		if _, ok := c.AtOrPrev(Lines); !ok {
			c.Set(0)
		}
	}
	return c.pos
}

// LineBeginningPosition returns the offset of the first character on
// the current line. With n other than 1 the scan first moves n-1 lines
// forward (n > 1) or 1-n lines backward (n <= 0), clamping at the
// buffer edges. The cursor does not move.
func (c *Cursor) LineBeginningPosition(n int) int {
	pos := c.pos
	switch {
	case n == 1:
		c.GotoLineBegin()
	case n > 1:
		for i := 0; i < n-1; i++ {
			if _, ok := c.Next(Lines); !ok {
				c.Eof()
				break
			}
		}
	default:
		c.GotoLineBegin()
		if c.pos != 0 {
			for i := 0; i < 1-n; i++ {
				if _, ok := c.Prev(Lines); !ok {
					c.Bof()
					break
				}
			}
		}
	}
	result := c.pos
	c.Set(pos)
	return result
}

// LineEndPosition returns the offset of the last character before the
// current line's terminating newline, or the buffer end for the last
// line, or 0 when no previous character exists. With n other than 1 the
// scan moves across lines first, clamping at the buffer edges. The
// cursor does not move.
func (c *Cursor) LineEndPosition(n int) int {
	pos := c.pos
	switch {
	case n == 1:
		if _, ok := c.Next(Lines); !ok {
			c.Eof()
		}
	case n > 1:
		for i := 0; i < n; i++ {
			if _, ok := c.Next(Lines); !ok {
				c.Eof()
			}
		}
	default:
		if c.pos != 0 {
			for i := 0; i <= -n; i++ {
				if _, ok := c.Prev(Lines); !ok {
					break
				}
			}
		}
	}
	result := 0
	if off, ok := c.Prev(Chars); ok {
		result = off
	}
	c.Set(pos)
	return result
}
