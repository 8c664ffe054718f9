package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
)

var reClockDuration = regexp.MustCompile(`[ \t]+=>[ \t]*(\d+:\d{2})[ \t]*$`)

// planningParser parses the CLOSED/DEADLINE/SCHEDULED line directly
// below a headline.
func (p *Parser) planningParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	eol := lineEnd(p.input, begin)
	line := p.input[begin:eol]

	data := &ast.PlanningData{}
	for _, m := range reTimeNotClock.FindAllStringSubmatchIndex(line, -1) {
		ts, _ := parseTimestampRaw(line[m[4]-1:])
		if ts == nil {
			// The bracket pair did not parse as a date; skip it.
			continue
		}
		switch line[m[2] : m[3]-1] {
		case "CLOSED":
			data.Closed = ts
		case "DEADLINE":
			data.Deadline = ts
		case "SCHEDULED":
			data.Scheduled = ts
		}
	}

	p.cursor.Set(min(lineEndIncNL(p.input, begin), limit))
	node := p.finishElement(ast.Planning, begin, limit, nil)
	node.Data = data
	return node
}

// clockParser parses a CLOCK: line. A clock without a closing duration
// is still running.
func (p *Parser) clockParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	eol := lineEnd(p.input, begin)
	line := p.input[begin:eol]

	data := &ast.ClockData{Status: ast.ClockRunning}
	rest := strings.TrimLeft(line, " \t")
	rest = rest[len("CLOCK:"):]
	rest = strings.TrimLeft(rest, " \t")
	if ts, n := parseTimestampRaw(rest); ts != nil {
		data.Value = ts
		rest = rest[n:]
	}
	if m := reClockDuration.FindStringSubmatch(rest); m != nil {
		data.Duration = m[1]
		data.Status = ast.ClockClosed
	}

	p.cursor.Set(min(lineEndIncNL(p.input, begin), limit))
	node := p.finishElement(ast.Clock, begin, limit, nil)
	node.Data = data
	return node
}
