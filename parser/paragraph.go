package parser

import (
	"regexp"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

func blockEndRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*#\+END_` + regexp.QuoteMeta(name) + `[ \t]*$`)
}

func latexEndRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)\\end\{` + regexp.QuoteMeta(name) + `\}[ \t]*$`)
}

// paragraphParser parses text up to the next blank line or the first
// line that starts another element. Several parsers fall back to it
// when their construct turns out to be unterminated.
func (p *Parser) paragraphParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	contentsBegin := p.cursor.Pos()
	contentsEnd := limit

	c := cursor.New(p.input, lineEndIncNL(p.input, contentsBegin))
	for c.Pos() < limit {
		if p.separatesParagraph(c.Pos(), limit) {
			contentsEnd = c.Pos()
			break
		}
		next, ok := c.Next(cursor.Lines)
		if !ok {
			break
		}
		c.Set(next)
	}
	if contentsEnd > limit {
		contentsEnd = limit
	}

	p.cursor.Set(contentsEnd)
	node := p.finishElement(ast.Paragraph, begin, limit, aff)
	iv := cursor.NewInterval(contentsBegin, contentsEnd)
	node.ContentLocation = &iv
	return node
}

// separatesParagraph reports whether the line starting at pos ends a
// running paragraph. Unterminated blocks, drawers and latex
// environments do not: their opening line reads as plain text.
func (p *Parser) separatesParagraph(pos, limit int) bool {
	c := cursor.New(p.input, pos)
	lookingAt := func(re *regexp.Regexp) bool {
		_, ok := c.LookingAt(re)
		return ok
	}

	switch {
	case lookingAt(reEmptyLine),
		(headlineMetric{}).IsBoundary(p.input, pos),
		lookingAt(p.reItem),
		lookingAt(reTableBorder),
		lookingAt(reHorizontalRule),
		lookingAt(reFixedWidth),
		lookingAt(reFootnoteDefinition),
		lookingAt(reDiarySexp):
		return true
	}

	if m := c.CapturingAt(reLatexBegin); m != nil {
		name, _ := m.Group(1)
		if m.End(0) > limit {
			return false
		}
		return latexEndRegex(name).MatchString(p.input[m.End(0):limit])
	}
	if lookingAt(reDrawer) {
		from := lineEndIncNL(p.input, pos)
		return from <= limit && reDrawerEnd.MatchString(p.input[from:limit])
	}
	if iv, ok := c.LookingAt(reHashLine); ok {
		after := cursor.New(p.input, iv.End)
		if _, ok := after.LookingAt(reSpaceOrEol); ok {
			return true
		}
		if m := after.CapturingAt(reBlockBegin); m != nil {
			name, _ := m.Group(1)
			from := lineEndIncNL(p.input, pos)
			return from <= limit && blockEndRegex(name).MatchString(p.input[from:limit])
		}
		if _, ok := after.LookingAt(reBabelCall); ok {
			return true
		}
		if _, ok := after.LookingAt(reDynamicBlock); ok {
			from := lineEndIncNL(p.input, pos)
			return from <= limit && reDynamicEnd.MatchString(p.input[from:limit])
		}
		if _, ok := after.LookingAt(reKeywordLine); ok {
			return true
		}
	}
	return false
}
