package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

var reNodeProperty = regexp.MustCompile(`^[ \t]*:(\S+):(?:[ \t]+(.*))?$`)

// drawerParser parses a named drawer. A drawer without its :END: line
// is no drawer at all and reparses as a paragraph.
func (p *Parser) drawerParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	pos := p.cursor.Pos()
	m := p.cursor.CapturingAt(reDrawer)
	if m == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	name, _ := m.Group(1)

	contentsBegin := lineEndIncNL(p.input, pos)
	loc := reDrawerEnd.FindStringIndex(p.input[contentsBegin:limit])
	if loc == nil {
		return p.paragraphParser(limit, begin, aff)
	}
	contentsEnd := contentsBegin + loc[0]

	p.cursor.Set(min(lineEndIncNL(p.input, contentsEnd), limit))
	node := p.finishElement(ast.Drawer, begin, limit, aff)
	node.Data = ast.DrawerData{Name: name}
	if contentsBegin < contentsEnd {
		iv := cursor.NewInterval(contentsBegin, contentsEnd)
		node.ContentLocation = &iv
	}
	return node
}

// propertyDrawerParser parses the :PROPERTIES: drawer directly below a
// headline or its planning line.
func (p *Parser) propertyDrawerParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	iv, ok := p.cursor.LookingAt(rePropertyDrawer)
	if !ok || iv.End > limit {
		return p.paragraphParser(limit, begin, nil)
	}

	contentsBegin := lineEndIncNL(p.input, begin)
	contentsEnd := lineStart(p.input, iv.End)

	p.cursor.Set(min(lineEndIncNL(p.input, iv.End), limit))
	node := p.finishElement(ast.PropertyDrawer, begin, limit, nil)
	if contentsBegin < contentsEnd {
		ivc := cursor.NewInterval(contentsBegin, contentsEnd)
		node.ContentLocation = &ivc
	}
	return node
}

// nodePropertyParser parses one :KEY: value line inside a property
// drawer.
func (p *Parser) nodePropertyParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	eol := lineEnd(p.input, begin)
	data := ast.NodePropertyData{}
	if m := reNodeProperty.FindStringSubmatch(p.input[begin:eol]); m != nil {
		data.Key = m[1]
		data.Value = strings.TrimRight(m[2], " \t")
	}

	p.cursor.Set(min(lineEndIncNL(p.input, begin), limit))
	node := p.finishElement(ast.NodeProperty, begin, limit, nil)
	node.Data = data
	return node
}
