// Package cursor implements zero-copy navigation over a text buffer.
//
// A Cursor is a mutable byte offset into a borrowed string. Every other
// navigation concept is layered on top of it: metrics locate structural
// boundaries (character starts, line starts), lexemes decode the value
// between boundaries, and the Emacs-flavored helpers reproduce the
// buffer primitives the document parser is written against.
package cursor

// Interval is a half-open [Start, End) byte range into a buffer.
type Interval struct {
	Start int
	End   int
}

// NewInterval returns the interval [start, end).
func NewInterval(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// Text returns the slice of s addressed by the interval. The result
// shares memory with s.
func (i Interval) Text(s string) string {
	return s[i.Start:i.End]
}

// Len returns the byte length of the interval.
func (i Interval) Len() int {
	return i.End - i.Start
}

// Cursor is an owned position into a borrowed text buffer. The buffer is
// never copied; all reads slice into it. The position is unchecked on
// construction and after Set, callers are responsible for handing
// subsequent operations a valid boundary.
type Cursor struct {
	data string
	pos  int
}

// New returns a cursor over data positioned at pos.
func New(data string, pos int) *Cursor {
	return &Cursor{data: data, pos: pos}
}

// Data returns the underlying buffer.
func (c *Cursor) Data() string {
	return c.data
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Set moves the cursor to an absolute offset, unchecked.
func (c *Cursor) Set(pos int) {
	c.pos = pos
}

// Bof resets the cursor to the beginning of the buffer.
func (c *Cursor) Bof() {
	c.pos = 0
}

// Eof moves the cursor past the last byte of the buffer.
func (c *Cursor) Eof() {
	c.pos = len(c.data)
}

// Inc advances the cursor by n bytes.
func (c *Cursor) Inc(n int) {
	c.pos += n
}

// Dec moves the cursor back by n bytes, clamping at 0.
func (c *Cursor) Dec(n int) {
	if n > c.pos {
		c.pos = 0
	} else {
		c.pos -= n
	}
}

// IsBoundary reports whether the cursor sits on a boundary of m.
func (c *Cursor) IsBoundary(m Metric) bool {
	return m.IsBoundary(c.data, c.pos)
}

// Next moves the cursor to the next boundary of m. The cursor is left
// unchanged when no boundary exists.
func (c *Cursor) Next(m Metric) (int, bool) {
	if off, ok := m.Next(c.data, c.pos); ok {
		c.pos = off
		return off, true
	}
	return 0, false
}

// Prev moves the cursor to the previous boundary of m. The cursor is
// left unchanged when no boundary exists.
func (c *Cursor) Prev(m Metric) (int, bool) {
	if off, ok := m.Prev(c.data, c.pos); ok {
		c.pos = off
		return off, true
	}
	return 0, false
}

// AtOrNext is Next, except it stays put when the cursor is already on a
// boundary of m.
func (c *Cursor) AtOrNext(m Metric) (int, bool) {
	if c.IsBoundary(m) {
		return c.pos, true
	}
	return c.Next(m)
}

// AtOrPrev is Prev, except it stays put when the cursor is already on a
// boundary of m.
func (c *Cursor) AtOrPrev(m Metric) (int, bool) {
	if c.IsBoundary(m) {
		return c.pos, true
	}
	return c.Prev(m)
}
