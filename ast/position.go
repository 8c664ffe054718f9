package ast

import "strings"

// Position is a human-readable location in a source document.
// Line and Column are 1-based; Column counts runes, not bytes.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return positionString(p.Line, p.Column)
	}
	return p.Filename + ":" + positionString(p.Line, p.Column)
}

func positionString(line, col int) string {
	var b strings.Builder
	writeInt(&b, line)
	b.WriteByte(':')
	writeInt(&b, col)
	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	if n >= 10 {
		writeInt(b, n/10)
	}
	b.WriteByte(byte('0' + n%10))
}

// LocatePosition resolves a byte offset in source to a line and column.
// Offsets past the end of source resolve to the position just after the
// last byte.
func LocatePosition(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}

	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1
	line := strings.Count(source[:lineStart], "\n") + 1
	column := len([]rune(source[lineStart:offset])) + 1

	return Position{Line: line, Column: column, Offset: offset}
}
