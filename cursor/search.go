package cursor

import (
	"regexp"
	"strings"
)

// NoBound is passed as the bound, limit or count of the search
// operations to select their defaults.
const NoBound = -1

// SkipCharsForward moves the cursor forward over a maximal run of
// characters in set, stopping before the first character not in set or
// at limit. A negative limit means the buffer end. Returns the number
// of characters traveled.
func (c *Cursor) SkipCharsForward(set string, limit int) int {
	pos := c.pos
	if limit < 0 {
		limit = len(c.data)
	}
	if pos >= limit {
		return 0
	}
	count := 0
	for {
		r, ok := c.GetNextChar()
		if !ok {
			break
		}
		if !strings.ContainsRune(set, r) {
			c.Prev(Chars)
			return count
		}
		if count+pos > limit {
			c.Prev(Chars)
			return count
		}
		count++
	}
	return count
}

// SkipCharsBackward moves the cursor backward over a maximal run of
// characters in set, stopping after the first character not in set or
// at limit. A negative limit means the buffer start. Returns the number
// of characters traveled; unlike the Emacs equivalent the count is
// never negative.
func (c *Cursor) SkipCharsBackward(set string, limit int) int {
	if limit < 0 {
		limit = 0
	}
	if c.pos <= limit {
		return 0
	}
	count := 0
	for {
		r, ok := c.GetPrevChar()
		if !ok {
			break
		}
		if !strings.ContainsRune(set, r) {
			c.Next(Chars)
			return count
		}
		if c.pos < limit {
			c.Next(Chars)
			return count
		}
		count++
	}
	return count
}

// SearchForward finds the count-th occurrence of a literal substring at
// or after the cursor. The match must end at or before bound; negative
// bound means the buffer end, count < 1 means 1. On success the cursor
// moves to the match end, which is returned. On failure the cursor does
// not move. Searching backward is not supported.
func (c *Cursor) SearchForward(literal string, bound, count int) (int, bool) {
	if count < 1 {
		count = 1
	}
	if bound < 0 {
		bound = len(c.data)
	}
	pos := c.pos
	if bound < pos {
		return 0, false
	}

	from := pos
	nth := 1
	for {
		j := strings.Index(c.data[from:], literal)
		if j < 0 {
			return 0, false
		}
		end := from + j + len(literal)
		if end > bound {
			return 0, false
		}
		if nth == count {
			c.Set(end)
			return end, true
		}
		nth++
		// Non-overlapping occurrences.
		from = end
		if len(literal) == 0 {
			from++
		}
	}
}

// ReSearchForward finds the first match of re between the cursor and
// bound. A negative bound means the buffer end. On success the cursor
// moves to the match end and the absolute match interval is returned.
// On failure the cursor does not move.
func (c *Cursor) ReSearchForward(re *regexp.Regexp, bound int) (Interval, bool) {
	end := bound
	if end < 0 {
		end = len(c.data)
	}
	if end <= c.pos {
		return Interval{}, false
	}
	loc := re.FindStringIndex(c.data[c.pos:end])
	if loc == nil {
		return Interval{}, false
	}
	res := Interval{Start: c.pos + loc[0], End: c.pos + loc[1]}
	c.Set(res.End)
	return res, true
}
