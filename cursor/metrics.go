package cursor

import "strings"

// Metric locates a particular kind of boundary offset in a buffer. A
// metric is an address, not a value; lexemes decode the value between
// two metric boundaries.
//
// Next and Prev never return the query offset itself. They strictly
// advance or retreat, reporting false at the buffer edges.
type Metric interface {
	// IsBoundary reports whether offset is a boundary of this metric.
	IsBoundary(s string, offset int) bool

	// Prev returns the nearest boundary strictly before offset.
	Prev(s string, offset int) (int, bool)

	// Next returns the nearest boundary strictly after offset.
	Next(s string, offset int) (int, bool)
}

// Chars addresses UTF-8 codepoint starts. The address of a character is
// the offset of its first byte.
var Chars Metric = charMetric{}

// Lines addresses line starts. The boundary is the offset immediately
// after a newline byte; offset 0 is deliberately not a line boundary by
// this metric (beginning-of-buffer is handled by Cursor.IsBol).
var Lines Metric = lineMetric{}

// utf8Len returns the byte length of the codepoint whose first byte is b.
func utf8Len(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xe0:
		return 2
	case b < 0xf0:
		return 3
	default:
		return 4
	}
}

type charMetric struct{}

func (charMetric) IsBoundary(s string, offset int) bool {
	if offset == 0 || offset == len(s) {
		return true
	}
	if offset < 0 || offset > len(s) {
		return false
	}
	// A continuation byte has the bit pattern 10xxxxxx.
	return s[offset]&0xc0 != 0x80
}

func (m charMetric) Prev(s string, offset int) (int, bool) {
	if offset == 0 {
		return 0, false
	}
	n := 1
	for !m.IsBoundary(s, offset-n) {
		n++
	}
	return offset - n, true
}

func (charMetric) Next(s string, offset int) (int, bool) {
	if offset == len(s) {
		return 0, false
	}
	return offset + utf8Len(s[offset]), true
}

type lineMetric struct{}

func (lineMetric) IsBoundary(s string, offset int) bool {
	if offset == 0 {
		return false
	}
	return s[offset-1] == '\n'
}

// Prev finds the start of the previous line. The newline immediately
// before offset is skipped on purpose: from a line's own start, Prev
// lands on the preceding line, never re-finding the current one.
// Higher-level operations (GotoLineBegin, LineBeginningPosition) depend
// on this exact asymmetry with Next.
func (lineMetric) Prev(s string, offset int) (int, bool) {
	if offset == 0 {
		return 0, false
	}
	if i := strings.LastIndexByte(s[:offset-1], '\n'); i >= 0 {
		return i + 1, true
	}
	return 0, false
}

func (lineMetric) Next(s string, offset int) (int, bool) {
	if i := strings.IndexByte(s[offset:], '\n'); i >= 0 {
		return offset + i + 1, true
	}
	return 0, false
}
