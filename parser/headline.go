package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

// headlineMetric treats the start of every headline line as a
// boundary, which lets the engine hop between headlines with the same
// cursor operations it uses for characters and lines.
type headlineMetric struct{}

// IsBoundary holds for every offset inside a headline line, not only
// at its start. Prev and Next still resolve to line starts.
func (headlineMetric) IsBoundary(s string, offset int) bool {
	if offset >= len(s) {
		return false
	}
	ls := lineStart(s, offset)
	return reHeadlineShort.MatchString(s[ls:lineEndIncNL(s, ls)])
}

func (m headlineMetric) Prev(s string, offset int) (int, bool) {
	if offset == 0 {
		return 0, false
	}
	// Line starts are the only candidates.
	line := lineStart(s, offset)
	for {
		if line < offset && m.IsBoundary(s, line) {
			return line, true
		}
		if line == 0 {
			return 0, false
		}
		line = lineStart(s, line-1)
	}
}

func (m headlineMetric) Next(s string, offset int) (int, bool) {
	if offset >= len(s) {
		return 0, false
	}
	search := offset
	if !isLineStart(s, offset) || m.IsBoundary(s, offset) {
		nl := strings.IndexByte(s[offset:], '\n')
		if nl < 0 {
			return 0, false
		}
		search = offset + nl + 1
	}
	loc := reHeadlineMultiline.FindStringIndex(s[search:])
	if loc == nil {
		return 0, false
	}
	return search + loc[0], true
}

func isLineStart(s string, offset int) bool {
	return offset == 0 || s[offset-1] == '\n'
}

// lineStart returns the offset of the first byte of the line holding
// offset.
func lineStart(s string, offset int) int {
	if offset >= len(s) {
		offset = len(s)
	}
	return strings.LastIndexByte(s[:offset], '\n') + 1
}

// lineEndIncNL returns the offset just past the newline of the line
// holding offset, or the buffer end for the last line.
func lineEndIncNL(s string, offset int) int {
	if nl := strings.IndexByte(s[offset:], '\n'); nl >= 0 {
		return offset + nl + 1
	}
	return len(s)
}

// lineEnd returns the offset of the newline of the line holding
// offset, or the buffer end for the last line.
func lineEnd(s string, offset int) int {
	if nl := strings.IndexByte(s[offset:], '\n'); nl >= 0 {
		return offset + nl
	}
	return len(s)
}

// headlineParser parses the headline at the cursor together with its
// whole subtree extent. Contents, when present, run from the first
// non-blank line under the headline to the line after the last
// non-blank one.
func (p *Parser) headlineParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	data := &ast.HeadlineData{}
	data.Level = p.cursor.SkipCharsForward("*", cursor.NoBound)
	p.cursor.SkipCharsForward(" \t", cursor.NoBound)

	if m := p.cursor.CapturingAt(p.reTodo); m != nil {
		data.TodoKeyword, _ = m.Group(1)
		data.TodoType = p.todoType(data.TodoKeyword)
		p.cursor.Set(m.End(0))
		p.cursor.SkipCharsForward(" \t", cursor.NoBound)
	}
	if iv, ok := p.cursor.LookingAt(reHeadlinePriority); ok {
		if r, ok := p.cursor.CharAfter(iv.Start + 2); ok {
			data.Priority = r
		}
		p.cursor.Set(iv.End)
	}
	if iv, ok := p.cursor.LookingAt(reHeadlineComment); ok {
		data.Commented = true
		p.cursor.Set(iv.End)
		p.cursor.SkipCharsForward(" \t", cursor.NoBound)
	}

	titleStart := p.cursor.Pos()
	eol := lineEnd(p.input, titleStart)
	titleEnd := eol
	if m := reHeadlineTags.FindStringSubmatchIndex(p.input[titleStart:eol]); m != nil {
		raw := p.input[titleStart+m[2] : titleStart+m[3]]
		data.Tags = splitTags(raw)
		titleEnd = titleStart + m[0]
	}
	data.RawValue = p.input[titleStart:titleEnd]
	for _, tag := range data.Tags {
		if tag == "ARCHIVE" {
			data.Archived = true
		}
	}
	data.FootnoteSection = data.RawValue == "Footnotes"

	end := p.subtreeEnd(data.Level, eol, limit)

	var contents *cursor.Interval
	p.cursor.Set(min(lineEndIncNL(p.input, begin), end))
	p.cursor.SkipCharsForward(" \r\t\n", end)
	if p.cursor.Pos() != end {
		cbeg := p.cursor.GotoLineBegin()
		p.cursor.Set(end)
		p.cursor.SkipCharsBackward(" \r\t\n", 0)
		cend := min(p.cursor.LineBeginningPosition(2), end)
		if cbeg < cend {
			iv := cursor.NewInterval(cbeg, cend)
			contents = &iv
		}
		data.PreBlank = countLines(p.input, lineEndIncNL(p.input, begin), cbeg)
	}

	postBlank := 0
	if contents != nil {
		postBlank = countLines(p.input, contents.End, end)
	} else {
		postBlank = countLines(p.input, lineEndIncNL(p.input, begin), end)
	}

	if p.granularity == GranularityObject {
		data.Title = p.parseTitleObjects(titleStart, titleEnd, ast.Headline)
	}

	p.cursor.Set(end)
	return &ast.Node{
		Kind:            ast.Headline,
		Data:            data,
		Location:        cursor.NewInterval(begin, end),
		ContentLocation: contents,
		PostBlank:       postBlank,
	}
}

// subtreeEnd finds where the subtree of a headline with the given
// level ends: at the next headline with the same or fewer stars, or at
// limit.
func (p *Parser) subtreeEnd(level, eol, limit int) int {
	from := eol
	if from < len(p.input) {
		from++
	}
	if from >= limit {
		return limit
	}
	re := regexp.MustCompile(`(?m)^\*{1,` + strconv.Itoa(level) + `}\s`)
	if loc := re.FindStringIndex(p.input[from:limit]); loc != nil {
		if isLineStart(p.input, from+loc[0]) {
			return from + loc[0]
		}
	}
	return limit
}

// inlineTaskParser parses a deep headline as an inline task. A task
// ends either at its END line or, degenerate, at the end of its own
// headline line.
func (p *Parser) inlineTaskParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	node := p.headlineParser(limit)
	node.Kind = ast.InlineTask
	data := node.Data.(*ast.HeadlineData)

	// A deep subtree makes no sense here: the task is either closed by
	// an END line or spans the headline alone.
	end := lineEndIncNL(p.input, begin)
	var contents *cursor.Interval
	c := cursor.New(p.input, end)
	for c.Pos() < limit {
		iv, ok := c.LookingAt(reHeadlineShort)
		if ok {
			if _, isEnd := c.LookingAt(reInlineTaskEnd); isEnd {
				cbeg := end
				cend := iv.Start
				if cbeg < cend {
					ivc := cursor.NewInterval(cbeg, cend)
					contents = &ivc
				}
				end = lineEndIncNL(p.input, iv.Start)
			}
			break
		}
		next, ok := c.Next(cursor.Lines)
		if !ok {
			break
		}
		c.Set(next)
	}

	p.cursor.Set(end)
	blank := p.skipBlankLines(limit)
	node.Location = cursor.NewInterval(begin, p.cursor.Pos())
	node.ContentLocation = contents
	node.PostBlank = blank
	data.PreBlank = 0
	return node
}

// sectionParser parses the run of elements before the next headline.
func (p *Parser) sectionParser(limit int) *ast.Node {
	begin := p.cursor.Pos()
	end := limit
	if pos, ok := p.cursor.Next(headlineMetric{}); ok && pos < end {
		end = pos
	}
	contents := cursor.NewInterval(begin, end)
	p.cursor.Set(end)
	return &ast.Node{
		Kind:            ast.Section,
		Location:        cursor.NewInterval(begin, end),
		ContentLocation: &contents,
	}
}

func (p *Parser) todoType(keyword string) ast.TodoType {
	done := slices.ContainsFunc(p.env.DoneKeywords(), func(w string) bool {
		return strings.EqualFold(w, keyword)
	})
	if done {
		return ast.TodoTypeDone
	}
	return ast.TodoTypeTodo
}

// splitTags splits the raw ":a:b:" tag chunk of a headline.
func splitTags(raw string) []string {
	parts := strings.Split(strings.Trim(raw, ":"), ":")
	tags := make([]string, 0, len(parts))
	for _, t := range parts {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// countLines counts the line starts in [from, to).
func countLines(s string, from, to int) int {
	if from >= to {
		return 0
	}
	return strings.Count(s[from:to], "\n")
}
