package ast

import (
	"strconv"
	"strings"
)

// Sexp renders the tree in org-element's printed notation: every node
// becomes (kind (:prop value ...) children...), plain text becomes a
// quoted string. Positional properties are always present; a few kinds
// add their most useful payload fields.
func (n *Node) Sexp() string {
	var b strings.Builder
	writeSexp(&b, n, 0)
	return b.String()
}

func writeSexp(b *strings.Builder, n *Node, depth int) {
	if depth > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", depth))
	}

	if n.Kind == PlainText {
		text, _ := n.Data.(string)
		b.WriteString(strconv.Quote(text))
		return
	}

	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	b.WriteString(" (")
	writeSexpProps(b, n)
	b.WriteByte(')')

	for _, child := range n.Children {
		b.WriteByte(' ')
		writeSexp(b, child, depth+1)
	}

	b.WriteByte(')')
}

func writeSexpProps(b *strings.Builder, n *Node) {
	writeProp(b, ":begin", strconv.Itoa(n.Location.Start))
	b.WriteByte(' ')
	writeProp(b, ":end", strconv.Itoa(n.Location.End))
	if n.ContentLocation != nil {
		b.WriteByte(' ')
		writeProp(b, ":contents-begin", strconv.Itoa(n.ContentLocation.Start))
		b.WriteByte(' ')
		writeProp(b, ":contents-end", strconv.Itoa(n.ContentLocation.End))
	}
	b.WriteByte(' ')
	writeProp(b, ":post-blank", strconv.Itoa(n.PostBlank))

	switch data := n.Data.(type) {
	case *HeadlineData:
		b.WriteByte(' ')
		writeProp(b, ":level", strconv.Itoa(data.Level))
		b.WriteByte(' ')
		writeProp(b, ":raw-value", strconv.Quote(data.RawValue))
		if data.TodoKeyword != "" {
			b.WriteByte(' ')
			writeProp(b, ":todo-keyword", strconv.Quote(data.TodoKeyword))
		}
		if data.Priority != 0 {
			b.WriteByte(' ')
			writeProp(b, ":priority", strconv.QuoteRune(data.Priority))
		}
		if len(data.Tags) > 0 {
			b.WriteByte(' ')
			writeProp(b, ":tags", quoteList(data.Tags))
		}
	case KeywordData:
		b.WriteByte(' ')
		writeProp(b, ":key", strconv.Quote(data.Key))
		b.WriteByte(' ')
		writeProp(b, ":value", strconv.Quote(data.Value))
	case SrcBlockData:
		b.WriteByte(' ')
		writeProp(b, ":language", strconv.Quote(data.Language))
	case *TimestampData:
		b.WriteByte(' ')
		writeProp(b, ":raw-value", strconv.Quote(data.RawValue))
	case *LinkData:
		b.WriteByte(' ')
		writeProp(b, ":path", strconv.Quote(data.Path))
	}
}

func writeProp(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(value)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return "(" + strings.Join(quoted, " ") + ")"
}
