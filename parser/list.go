package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

var (
	reItemCounterSet = regexp.MustCompile(`^\[@([0-9]+|[A-Za-z])\][ \t]*`)
	reItemCheckbox   = regexp.MustCompile(`^\[( |X|x|-)\](?:[ \t]+|$)`)
	reItemTag        = regexp.MustCompile(`^(.*?)[ \t]+::(?:[ \t]+|$)`)
)

// plainListParser parses a whole list. The list structure is computed
// once here; the items find their own extent in it by begin offset.
func (p *Parser) plainListParser(limit, begin int, aff *ast.Affiliated, st *ast.ListStruct) *ast.Node {
	if st == nil {
		st = p.scanListStruct(limit)
	}
	if len(st.Items) == 0 {
		return p.paragraphParser(limit, begin, aff)
	}
	if p.itemStructs == nil {
		p.itemStructs = make(map[int]*ast.ListStruct)
	}
	for _, it := range st.Items {
		p.itemStructs[it.Begin] = st
	}

	first := st.Items[0]
	data := ast.PlainListData{Kind: listKind(p.input, first), Structure: st}
	end := first.End
	for _, it := range st.Items {
		if it.End > end {
			end = it.End
		}
	}

	contents := cursor.NewInterval(first.Begin, end)
	p.cursor.Set(min(end, limit))
	node := p.finishElement(ast.PlainList, begin, limit, aff)
	node.Data = data
	node.ContentLocation = &contents
	return node
}

// itemParser parses one list item, bullet line through the last line
// of its own contents.
func (p *Parser) itemParser(limit int, st *ast.ListStruct) *ast.Node {
	begin := p.cursor.Pos()
	if st == nil {
		st = p.itemStructs[begin]
	}
	var entry ast.ListItem
	if st != nil {
		for _, it := range st.Items {
			if it.Begin == begin {
				entry = it
				break
			}
		}
	}
	end := entry.End
	if end == 0 || end > limit {
		end = limit
	}

	data := &ast.ItemData{Bullet: entry.Bullet, Structure: st}
	m := p.cursor.CapturingAt(p.reItem)
	if m != nil {
		p.cursor.Set(m.End(0))
	}
	if m := p.cursor.CapturingAt(reItemCounterSet); m != nil {
		v, _ := m.Group(1)
		data.Counter = counterValue(v)
		p.cursor.Set(m.End(0))
	}
	if m := p.cursor.CapturingAt(reItemCheckbox); m != nil {
		v, _ := m.Group(1)
		switch v {
		case "X", "x":
			data.Checkbox = ast.CheckboxOn
		case " ":
			data.Checkbox = ast.CheckboxOff
		case "-":
			data.Checkbox = ast.CheckboxTrans
		}
		p.cursor.Set(m.End(0))
	}
	if m := p.cursor.CapturingAt(reItemTag); m != nil {
		tag, _ := m.Group(1)
		data.RawTag = tag
		if p.granularity == GranularityObject {
			data.Tag = p.parseTitleObjects(m.Start(1), m.End(1), ast.Item)
		}
		p.cursor.Set(m.End(0))
	}

	contentsBegin := p.cursor.Pos()
	if _, blank := p.cursor.LookingAt(reEmptyLine); blank {
		// Nothing after the bullet: contents start on the next
		// non-blank line.
		c := cursor.New(p.input, lineEndIncNL(p.input, contentsBegin))
		c.SkipCharsForward(" \r\t\n", end)
		contentsBegin = c.GotoLineBegin()
		data.PreBlank = countLines(p.input, lineEndIncNL(p.input, begin), contentsBegin)
	}

	contentsEnd := end
	c := cursor.New(p.input, end)
	c.SkipCharsBackward(" \r\t\n", contentsBegin)
	if c.Pos() > contentsBegin {
		contentsEnd = min(lineEndIncNL(p.input, c.Pos()-1), end)
	} else {
		contentsEnd = contentsBegin
	}

	p.cursor.Set(end)
	node := &ast.Node{
		Kind:      ast.Item,
		Data:      data,
		Location:  cursor.NewInterval(begin, end),
		PostBlank: countLines(p.input, contentsEnd, end),
	}
	if contentsBegin < contentsEnd {
		iv := cursor.NewInterval(contentsBegin, contentsEnd)
		node.ContentLocation = &iv
	}
	return node
}

// scanListStruct walks the lines of the list starting at the cursor
// and records every item it sees, at any depth. The list ends at two
// consecutive blank lines, at a non-blank line indented at or left of
// the first bullet that is not an item, or at limit.
func (p *Parser) scanListStruct(limit int) *ast.ListStruct {
	st := &ast.ListStruct{}
	start := p.cursor.Pos()
	topIndent := lineIndent(p.input, start)
	listEnd := limit

	c := cursor.New(p.input, start)
	blankStart := -1
scan:
	for c.Pos() < limit {
		lineBegin := c.Pos()
		switch {
		case p.isBlankLineAt(lineBegin):
			if blankStart >= 0 {
				listEnd = blankStart
				break scan
			}
			blankStart = lineBegin
		case (headlineMetric{}).IsBoundary(p.input, lineBegin):
			listEnd = lineBegin
			break scan
		default:
			blankStart = -1
			ind := lineIndent(p.input, lineBegin)
			if iv, ok := c.LookingAt(p.reItem); ok {
				if ind < topIndent {
					listEnd = lineBegin
					break scan
				}
				st.Items = append(st.Items, ast.ListItem{
					Begin:  lineBegin,
					Indent: ind,
					Bullet: strings.TrimSpace(iv.Text(p.input)),
				})
			} else if ind <= topIndent && lineBegin != start {
				listEnd = lineBegin
				break scan
			}
		}
		next, ok := c.Next(cursor.Lines)
		if !ok {
			break
		}
		c.Set(next)
	}

	// A trailing blank line before the terminator belongs to the list.
	if blankStart >= 0 && listEnd == limit {
		listEnd = min(blankStart, limit)
	}

	for i := range st.Items {
		st.Items[i].End = listEnd
		for j := i + 1; j < len(st.Items); j++ {
			if st.Items[j].Indent <= st.Items[i].Indent {
				st.Items[i].End = st.Items[j].Begin
				break
			}
		}
	}
	return st
}

func (p *Parser) isBlankLineAt(pos int) bool {
	c := cursor.New(p.input, pos)
	_, ok := c.LookingAt(reEmptyLine)
	return ok
}

// listKind classifies a list by its first item: a counter bullet makes
// it ordered, a tag on the first item makes it descriptive.
func listKind(s string, first ast.ListItem) ast.ListKind {
	b := first.Bullet
	if b != "" && (b[0] >= '0' && b[0] <= '9' || len(b) > 1 && isAlpha(b[0])) {
		return ast.ListOrdered
	}
	line := s[first.Begin:lineEnd(s, first.Begin)]
	if strings.Contains(line, " :: ") || strings.HasSuffix(line, " ::") {
		return ast.ListDescriptive
	}
	return ast.ListUnordered
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// counterValue resolves a [@3] or [@c] counter to its number.
func counterValue(s string) int {
	if s == "" {
		return 0
	}
	if s[0] >= '0' && s[0] <= '9' {
		return atoi(s)
	}
	b := s[0]
	if b >= 'a' && b <= 'z' {
		return int(b-'a') + 1
	}
	return int(b-'A') + 1
}

// lineIndent measures the leading whitespace of the line at pos, tabs
// counting as eight columns.
func lineIndent(s string, pos int) int {
	n := 0
	for i := pos; i < len(s); i++ {
		switch s[i] {
		case ' ':
			n++
		case '\t':
			n += 8 - n%8
		default:
			return n
		}
	}
	return n
}
