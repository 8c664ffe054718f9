package parser

import (
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

// tableParser parses a run of "|" lines plus any #+TBLFM: lines
// directly below them. The rows become children through the table row
// mode.
func (p *Parser) tableParser(limit, begin int, aff *ast.Affiliated) *ast.Node {
	rowsBegin := p.cursor.Pos()
	rowsEnd := rowsBegin
	c := cursor.New(p.input, rowsBegin)
	for c.Pos() < limit {
		if _, ok := c.LookingAt(reTableBorder); !ok {
			break
		}
		rowsEnd = min(lineEndIncNL(p.input, c.Pos()), limit)
		c.Set(rowsEnd)
	}

	var formulas []string
	end := rowsEnd
	for c.Pos() < limit {
		m := c.CapturingAt(reTblFm)
		if m == nil {
			break
		}
		f, _ := m.Group(1)
		formulas = append(formulas, f)
		end = min(lineEndIncNL(p.input, c.Pos()), limit)
		c.Set(end)
	}

	contents := cursor.NewInterval(rowsBegin, rowsEnd)
	p.cursor.Set(end)
	node := p.finishElement(ast.Table, begin, limit, aff)
	node.Data = ast.TableData{TblFm: strings.Join(formulas, "\n")}
	node.ContentLocation = &contents
	return node
}

// tableRowParser parses a single row line. Rows starting with "|-"
// are rules and hold no cells.
func (p *Parser) tableRowParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	eol := lineEnd(p.input, begin)
	data := ast.TableRowData{Type: ast.TableRowStandard}

	var contents *cursor.Interval
	if _, rule := p.cursor.LookingAt(reTableRule); rule {
		data.Type = ast.TableRowRule
	} else {
		bar := strings.IndexByte(p.input[begin:eol], '|')
		cbeg := begin + bar + 1
		cend := eol
		if p.input[cend-1] == '|' {
			cend--
		}
		if cbeg < cend {
			iv := cursor.NewInterval(cbeg, cend)
			contents = &iv
		}
	}

	p.cursor.Set(min(lineEndIncNL(p.input, begin), limit))
	node := &ast.Node{
		Kind:            ast.TableRow,
		Data:            data,
		Location:        cursor.NewInterval(begin, p.cursor.Pos()),
		ContentLocation: contents,
	}
	return node
}
