package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

var (
	reBlockHeader   = regexp.MustCompile(`(?i)^[ \t]*#\+BEGIN_(\S+)(?:[ \t]+(.*?))?[ \t]*$`)
	reDynamicEnd    = regexp.MustCompile(`(?im)^[ \t]*#\+END:?[ \t]*$`)
	// Switch values are either quoted (-l "fmt") or numeric (-n 20);
	// anything else already belongs to the parameters.
	reSrcSwitch = regexp.MustCompile(`(?:^|[ \t])([-+][A-Za-z])(?:[ \t]+("[^"]*"|\d+))?`)
	reKeywordParse  = regexp.MustCompile(`^[ \t]*#\+(\S+?):[ \t]*(.*?)[ \t]*$`)
	reBabelCallLine = regexp.MustCompile(`(?i)^[ \t]*#\+CALL:[ \t]*(.*?)[ \t]*$`)
	reBabelCallBody = regexp.MustCompile(`^([^\[\(\s]+)(?:\[([^\]]*)\])?(?:\(([^\)]*)\))?(?:\[([^\]]*)\])?`)
)

// blockBounds locates the matching #+END_NAME line. It returns the
// content interval and the position after the END line, or ok false
// when the block never closes.
func (p *Parser) blockBounds(name string, limit int) (contents cursor.Interval, end int, ok bool) {
	begin := p.cursor.Pos()
	contentsBegin := lineEndIncNL(p.input, begin)
	if contentsBegin > limit {
		return cursor.Interval{}, 0, false
	}
	loc := blockEndRegex(name).FindStringIndex(p.input[contentsBegin:limit])
	if loc == nil {
		return cursor.Interval{}, 0, false
	}
	contentsEnd := contentsBegin + loc[0]
	end = min(lineEndIncNL(p.input, contentsBegin+loc[1]-1), limit)
	return cursor.NewInterval(contentsBegin, contentsEnd), end, true
}

// greaterBlockParser parses center, quote and special blocks, whose
// contents are elements of their own.
func (p *Parser) greaterBlockParser(limit, begin int, aff *ast.Affiliated, kind ast.Kind) *ast.Node {
	m := p.cursor.CapturingAt(reBlockHeader)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	name, _ := m.Group(1)
	contents, end, ok := p.blockBounds(name, limit)
	if !ok {
		return p.paragraphParser(limit, begin, aff)
	}

	p.cursor.Set(end)
	node := p.finishElement(kind, begin, limit, aff)
	if kind == ast.SpecialBlock {
		node.Data = ast.SpecialBlockData{Type: name, RawValue: contents.Text(p.input)}
	}
	if contents.Start < contents.End {
		node.ContentLocation = &contents
	}
	return node
}

// literalBlockParser parses the blocks whose contents stay raw text:
// comment, example, export, src and verse blocks.
func (p *Parser) literalBlockParser(limit, begin int, aff *ast.Affiliated, kind ast.Kind) *ast.Node {
	m := p.cursor.CapturingAt(reBlockHeader)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	name, _ := m.Group(1)
	args, _ := m.Group(2)
	contents, end, ok := p.blockBounds(name, limit)
	if !ok {
		return p.paragraphParser(limit, begin, aff)
	}
	value := contents.Text(p.input)

	p.cursor.Set(end)
	node := p.finishElement(kind, begin, limit, aff)
	switch kind {
	case ast.CommentBlock:
		node.Data = ast.CommentBlockData{Value: value}
	case ast.ExampleBlock:
		data := ast.ExampleBlockData{Value: value}
		data.Switches, data.Parameters = splitSwitches(args)
		applySwitches(data.Switches, &data.NumberLines, &data.PreserveIndent, &data.RetainLabels, &data.UseLabels, &data.LabelFmt)
		node.Data = data
	case ast.ExportBlock:
		backend, _, _ := strings.Cut(args, " ")
		node.Data = ast.ExportBlockData{Type: backend, Value: value}
	case ast.SrcBlock:
		data := ast.SrcBlockData{Value: value}
		lang, rest, _ := strings.Cut(args, " ")
		data.Language = lang
		data.Switches, data.Parameters = splitSwitches(rest)
		applySwitches(data.Switches, &data.NumberLines, &data.PreserveIndent, &data.RetainLabels, &data.UseLabels, &data.LabelFmt)
		node.Data = data
	case ast.VerseBlock:
		if contents.Start < contents.End {
			node.ContentLocation = &contents
		}
	}
	return node
}

// dynamicBlockParser parses a "#+BEGIN: name args" block closed by a
// bare "#+END:" line.
func (p *Parser) dynamicBlockParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	m := p.cursor.CapturingAt(reDynamicHeader)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	name, _ := m.Group(1)
	args, _ := m.Group(3)

	contentsBegin := lineEndIncNL(p.input, pos)
	if contentsBegin > limit {
		return p.paragraphParser(limit, begin, aff)
	}
	loc := reDynamicEnd.FindStringIndex(p.input[contentsBegin:limit])
	if loc == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	contentsEnd := contentsBegin + loc[0]

	p.cursor.Set(min(lineEndIncNL(p.input, contentsBegin+loc[1]-1), limit))
	node := p.finishElement(ast.DynamicBlock, begin, limit, aff)
	node.Data = ast.DynamicBlockData{Name: name, Arguments: args}
	if contentsBegin < contentsEnd {
		iv := cursor.NewInterval(contentsBegin, contentsEnd)
		node.ContentLocation = &iv
	}
	return node
}

// keywordParser parses one "#+KEY: value" line.
func (p *Parser) keywordParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	eol := lineEnd(p.input, pos)
	data := ast.KeywordData{}
	if m := reKeywordParse.FindStringSubmatch(p.input[pos:eol]); m != nil {
		data.Key = strings.ToUpper(m[1])
		data.Value = m[2]
	}

	p.cursor.Set(min(lineEndIncNL(p.input, pos), limit))
	node := p.finishElement(ast.Keyword, begin, limit, aff)
	node.Data = data
	return node
}

// babelCallParser parses one "#+CALL: name[header](args)[header]"
// line.
func (p *Parser) babelCallParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	eol := lineEnd(p.input, pos)
	data := ast.BabelCallData{}
	if m := reBabelCallLine.FindStringSubmatch(p.input[pos:eol]); m != nil {
		data.Value = m[1]
		if b := reBabelCallBody.FindStringSubmatch(data.Value); b != nil {
			data.Call = b[1]
			data.InsideHeader = b[2]
			data.Arguments = b[3]
			data.EndHeader = b[4]
		}
	}

	p.cursor.Set(min(lineEndIncNL(p.input, pos), limit))
	node := p.finishElement(ast.BabelCall, begin, limit, aff)
	node.Data = data
	return node
}

// splitSwitches separates the "-n 20 -r" style switch run from the
// remaining header parameters.
func splitSwitches(s string) (switches, params string) {
	s = strings.TrimSpace(s)
	end := 0
	for _, m := range reSrcSwitch.FindAllStringIndex(s, -1) {
		if m[0] > end+1 {
			break
		}
		end = m[1]
	}
	return strings.TrimSpace(s[:end]), strings.TrimSpace(s[end:])
}

func applySwitches(switches string, numbering *ast.LineNumbering, preserve, retain, use *bool, labelFmt *string) {
	*retain = true
	*use = true
	for _, m := range reSrcSwitch.FindAllStringSubmatch(switches, -1) {
		switch m[1] {
		case "-n":
			*numbering = ast.LineNumberingNew
		case "+n":
			*numbering = ast.LineNumberingContinued
		case "-i":
			*preserve = true
		case "-r":
			*retain = false
			*use = false
		case "-k":
			*use = false
		case "-l":
			*labelFmt = strings.Trim(m[2], `"`)
		}
	}
}
