package parser

import (
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

// Keyword names that translate to another affiliated keyword.
var affiliatedTranslations = map[string]string{
	"DATA":    "NAME",
	"LABEL":   "NAME",
	"RESNAME": "NAME",
	"SOURCE":  "NAME",
	"SRCNAME": "NAME",
	"TBLNAME": "NAME",
	"RESULT":  "RESULTS",
	"HEADERS": "HEADER",
}

// collectAffiliated reads the run of affiliated keyword lines at the
// cursor and leaves the cursor on the first line after them. It
// returns the offset where the run started and the collected values,
// or (origin, nil) when there were none or when the keywords turn out
// to be orphaned by a blank line; in the orphaned case the cursor
// rewinds to the origin so the keywords parse as regular elements.
func (p *Parser) collectAffiliated(limit int) (int, *ast.Affiliated) {
	origin := p.cursor.Pos()
	if !p.cursor.IsBol() {
		return origin, nil
	}

	out := &ast.Affiliated{}
	for p.cursor.Pos() < limit {
		m := p.cursor.CapturingAt(reAffiliated)
		if m == nil {
			break
		}
		key, dualOK := m.Group(1)
		if !dualOK {
			if g, ok := m.Group(3); ok {
				key = g
			} else {
				key, _ = m.Group(4)
			}
		}
		key = strings.ToUpper(key)
		if t, ok := affiliatedTranslations[key]; ok {
			key = t
		}
		value := strings.TrimRight(p.input[m.End(0):lineEnd(p.input, m.End(0))], " \t")

		switch {
		case key == "CAPTION":
			dv := ast.DualValue{Value: value}
			if sec, ok := m.Group(2); ok {
				dv.Secondary = sec
				dv.HasSecondary = true
			}
			out.Caption = append(out.Caption, dv)
		case key == "RESULTS":
			dv := ast.DualValue{Value: value}
			if sec, ok := m.Group(2); ok {
				dv.Secondary = sec
				dv.HasSecondary = true
			}
			out.Results = &dv
		case key == "HEADER":
			out.Header = append(out.Header, value)
		case key == "NAME":
			out.Name = value
		case key == "PLOT":
			out.Plot = value
		case strings.HasPrefix(key, "ATTR_"):
			if out.Attr == nil {
				out.Attr = make(map[string][]string)
			}
			out.Attr[key] = append(out.Attr[key], value)
		}

		if pos, ok := p.cursor.Next(cursor.Lines); ok {
			p.cursor.Set(pos)
		} else {
			p.cursor.Eof()
			break
		}
	}

	if out.IsZero() {
		p.cursor.Set(origin)
		return origin, nil
	}
	// Keywords followed by a blank line attach to nothing.
	if _, blank := p.cursor.LookingAt(reEmptyLine); blank {
		p.cursor.Set(origin)
		return origin, nil
	}
	return origin, out
}
