package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

var (
	reCommentLine    = regexp.MustCompile(`^[ \t]*#(?: |$)`)
	reFixedWidthLine = regexp.MustCompile(`^[ \t]*:(?: |$)`)
)

// commentParser parses a run of "# ..." lines into one comment
// element. The value drops the comment markers but keeps the line
// breaks.
func (p *Parser) commentParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	value := p.collectPrefixedLines(reCommentLine, limit)
	node := p.finishElement(ast.Comment, begin, limit, aff)
	node.Data = ast.CommentData{Value: value}
	return node
}

// fixedWidthParser parses a run of ": ..." lines.
func (p *Parser) fixedWidthParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	value := p.collectPrefixedLines(reFixedWidthLine, limit)
	node := p.finishElement(ast.FixedWidth, begin, limit, aff)
	node.Data = ast.FixedWidthData{Value: value}
	return node
}

// collectPrefixedLines consumes the consecutive lines matching marker
// and returns their text with the marker prefix stripped. The cursor
// ends after the last matching line.
func (p *Parser) collectPrefixedLines(marker *regexp.Regexp, limit int) string {
	var b strings.Builder
	for p.cursor.Pos() < limit {
		iv, ok := p.cursor.LookingAt(marker)
		if !ok {
			break
		}
		eol := lineEnd(p.input, p.cursor.Pos())
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.input[iv.End:eol])
		next := min(lineEndIncNL(p.input, p.cursor.Pos()), limit)
		p.cursor.Set(next)
		if next >= limit {
			break
		}
	}
	return b.String()
}

// horizontalRuleParser parses one line of five or more hyphens.
func (p *Parser) horizontalRuleParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	p.cursor.Set(min(lineEndIncNL(p.input, p.cursor.Pos()), limit))
	return p.finishElement(ast.HorizontalRule, begin, limit, aff)
}

// diarySexpParser parses one "%%(...)" line.
func (p *Parser) diarySexpParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	value := strings.TrimRight(p.input[pos:lineEnd(p.input, pos)], " \t")
	p.cursor.Set(min(lineEndIncNL(p.input, pos), limit))
	node := p.finishElement(ast.DiarySexp, begin, limit, aff)
	node.Data = ast.DiarySexpData{Value: value}
	return node
}

// latexEnvironmentParser parses a \begin{name} ... \end{name} region.
// The whole region, delimiters included, becomes the value.
func (p *Parser) latexEnvironmentParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	m := p.cursor.CapturingAt(reLatexBegin)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	name, _ := m.Group(1)
	loc := latexEndRegex(name).FindStringIndex(p.input[m.End(0):limit])
	if loc == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	valueEnd := m.End(0) + loc[1]

	p.cursor.Set(min(lineEndIncNL(p.input, valueEnd-1), limit))
	node := p.finishElement(ast.LatexEnvironment, begin, limit, aff)
	node.Data = ast.LatexEnvironmentData{Value: p.input[pos:valueEnd]}
	return node
}

// footnoteDefinitionParser parses a "[fn:label] ..." definition, which
// runs until the next definition, the next headline, a run of two
// blank lines or limit.
func (p *Parser) footnoteDefinitionParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	m := p.cursor.CapturingAt(reFootnoteDefinition)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	label, _ := m.Group(1)

	end := limit
	blankRun := 0
	c := cursor.New(p.input, lineEndIncNL(p.input, pos))
	for c.Pos() < limit {
		if (headlineMetric{}).IsBoundary(p.input, c.Pos()) {
			end = c.Pos()
			break
		}
		if _, ok := c.LookingAt(reFootnoteDefinition); ok {
			end = c.Pos()
			break
		}
		if _, ok := c.LookingAt(reEmptyLine); ok {
			blankRun++
			if blankRun >= 2 {
				end = c.LineBeginningPosition(0)
				break
			}
		} else {
			blankRun = 0
		}
		next, ok := c.Next(cursor.Lines)
		if !ok {
			break
		}
		c.Set(next)
	}

	contentsBegin := m.End(0)
	data := ast.FootnoteDefinitionData{Label: label}
	cc := cursor.New(p.input, contentsBegin)
	cc.SkipCharsForward(" \r\t\n", end)
	contentsBegin = cc.Pos()
	data.PreBlank = countLines(p.input, m.End(0), contentsBegin)

	contentsEnd := end
	cc.Set(end)
	cc.SkipCharsBackward(" \r\t\n", contentsBegin)
	if cc.Pos() > contentsBegin {
		contentsEnd = min(lineEndIncNL(p.input, cc.Pos()-1), end)
	}

	p.cursor.Set(end)
	node := p.finishElement(ast.FootnoteDefinition, begin, limit, aff)
	node.Data = data
	// Blank lines between the contents and a following definition sit
	// inside this node's extent.
	node.PostBlank += countLines(p.input, contentsEnd, end)
	if contentsBegin < contentsEnd {
		iv := cursor.NewInterval(contentsBegin, contentsEnd)
		node.ContentLocation = &iv
	}
	return node
}
