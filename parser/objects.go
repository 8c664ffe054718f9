package parser

import (
	"regexp"
	"strings"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

// An objectMatcher locates candidate starts for one object kind and
// tries to build the object there. A build may fail: markup characters
// are only objects when their surroundings agree.
type objectMatcher struct {
	kind  ast.Kind
	re    *regexp.Regexp
	build func(p *Parser, start, end int) *ast.Node
}

var objectMatchers = []objectMatcher{
	{ast.LineBreak, regexp.MustCompile(`\\\\[ \t]*\n`), buildLineBreak},
	{ast.Entity, regexp.MustCompile(`\\[A-Za-z(\[]`), buildBackslash},
	{ast.LatexFragment, regexp.MustCompile(`\$`), buildDollarFragment},
	{ast.ExportSnippet, regexp.MustCompile(`@@`), buildExportSnippet},
	{ast.FootnoteReference, regexp.MustCompile(`\[fn:`), buildFootnoteReference},
	{ast.InlineBabelCall, regexp.MustCompile(`call_`), buildInlineBabelCall},
	{ast.InlineSrcBlock, regexp.MustCompile(`src_`), buildInlineSrcBlock},
	{ast.Macro, regexp.MustCompile(`\{\{\{`), buildMacro},
	{ast.Link, regexp.MustCompile(`\[\[`), buildBracketLink},
	{ast.RadioTarget, regexp.MustCompile(`<<<`), buildRadioTarget},
	{ast.Target, regexp.MustCompile(`<<`), buildTarget},
	{ast.Timestamp, regexp.MustCompile(`<%%\(|[<\[]\d{4}-`), buildTimestamp},
	{ast.Link, regexp.MustCompile(`<[A-Za-z]`), buildAngleLink},
	{ast.Link, regexp.MustCompile(`[A-Za-z]+:[^ \t\n]`), buildPlainLink},
	{ast.StatisticsCookie, regexp.MustCompile(`\[[0-9]*%\]|\[[0-9]*/[0-9]*\]`), buildStatisticsCookie},
	{ast.Bold, regexp.MustCompile(`\*`), emphasisBuilder('*', ast.Bold)},
	{ast.Italic, regexp.MustCompile(`/`), emphasisBuilder('/', ast.Italic)},
	{ast.Underline, regexp.MustCompile(`_`), emphasisBuilder('_', ast.Underline)},
	{ast.StrikeThrough, regexp.MustCompile(`\+`), emphasisBuilder('+', ast.StrikeThrough)},
	{ast.Code, regexp.MustCompile(`~`), emphasisBuilder('~', ast.Code)},
	{ast.Verbatim, regexp.MustCompile(`=`), emphasisBuilder('=', ast.Verbatim)},
	{ast.Subscript, regexp.MustCompile(`_`), scriptBuilder('_', ast.Subscript)},
	{ast.Superscript, regexp.MustCompile(`\^`), scriptBuilder('^', ast.Superscript)},
}

// parseObjects scans [beg, end) for the objects parent may contain and
// fills parent's children, wrapping the unmatched spans in plain text
// nodes.
func (p *Parser) parseObjects(parent *ast.Node, beg, end int) {
	if parent.Kind == ast.TableRow {
		p.parseTableCells(parent, beg, end)
		return
	}

	var children []*ast.Node
	plainStart := beg
	pos := beg
	for pos < end {
		node := p.matchObject(parent.Kind, pos, end)
		if node == nil {
			break
		}
		if node.Location.Start > plainStart {
			children = append(children, plainTextNode(p.input, plainStart, node.Location.Start))
		}
		if node.Kind.IsRecursiveObject() && node.ContentLocation != nil {
			p.parseObjects(node, node.ContentLocation.Start, node.ContentLocation.End)
		}
		children = append(children, node)
		pos = node.Location.End
		plainStart = pos
	}
	if plainStart < end {
		children = append(children, plainTextNode(p.input, plainStart, end))
	}
	for _, c := range children {
		parent.AppendChild(c)
	}
}

// matchObject finds the earliest object allowed inside parentKind that
// starts at or after from. When several kinds are possible at the same
// offset the matcher order above decides.
func (p *Parser) matchObject(parentKind ast.Kind, from, end int) *ast.Node {
	for from < end {
		best := -1
		for i := range objectMatchers {
			m := &objectMatchers[i]
			if !parentKind.CanContain(m.kind) {
				continue
			}
			loc := m.re.FindStringIndex(p.input[from:end])
			if loc != nil && (best == -1 || from+loc[0] < best) {
				best = from + loc[0]
			}
		}
		if best == -1 {
			return nil
		}
		for i := range objectMatchers {
			m := &objectMatchers[i]
			if !parentKind.CanContain(m.kind) {
				continue
			}
			loc := m.re.FindStringIndex(p.input[best:end])
			if loc == nil || loc[0] != 0 {
				continue
			}
			if node := m.build(p, best, end); node != nil {
				return node
			}
		}
		from = best + 1
	}
	return nil
}

// parseTitleObjects parses a secondary string, like a headline title
// or an item tag, and returns the orphaned object list.
func (p *Parser) parseTitleObjects(beg, end int, restriction ast.Kind) []*ast.Node {
	holder := &ast.Node{Kind: restriction}
	p.parseObjects(holder, beg, end)
	for _, c := range holder.Children {
		c.Parent = nil
	}
	return holder.Children
}

// parseTableCells splits a row's contents at the pipes and parses each
// cell's text.
func (p *Parser) parseTableCells(row *ast.Node, beg, end int) {
	segStart := beg
	for segStart <= end {
		sep := strings.IndexByte(p.input[segStart:end], '|')
		segEnd := end
		cellEnd := end
		if sep >= 0 {
			segEnd = segStart + sep
			cellEnd = segEnd + 1
		}

		cell := &ast.Node{
			Kind:     ast.TableCell,
			Location: cursor.NewInterval(segStart, cellEnd),
		}
		inner := strings.TrimSpace(p.input[segStart:segEnd])
		if inner != "" {
			off := segStart + strings.Index(p.input[segStart:segEnd], inner)
			iv := cursor.NewInterval(off, off+len(inner))
			cell.ContentLocation = &iv
			p.parseObjects(cell, iv.Start, iv.End)
		}
		row.AppendChild(cell)

		if sep < 0 {
			break
		}
		segStart = segEnd + 1
	}
}

func plainTextNode(input string, start, end int) *ast.Node {
	return &ast.Node{
		Kind:     ast.PlainText,
		Data:     input[start:end],
		Location: cursor.NewInterval(start, end),
	}
}

func objectNode(kind ast.Kind, start, end int, data any) *ast.Node {
	return &ast.Node{
		Kind:     kind,
		Data:     data,
		Location: cursor.NewInterval(start, end),
	}
}

func withContent(n *ast.Node, start, end int) *ast.Node {
	iv := cursor.NewInterval(start, end)
	n.ContentLocation = &iv
	return n
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

var reBlankInside = regexp.MustCompile(`\n[ \t]*\n`)

// Emphasis boundaries follow the usual markup components: what may
// precede an opening marker and what may follow a closing one.
func isEmphasisPre(b byte) bool {
	return isSpaceByte(b) || b == '-' || b == '(' || b == '\'' || b == '"' || b == '{'
}

func isEmphasisPost(b byte) bool {
	return isSpaceByte(b) || strings.IndexByte(`-.,:!?;'")}[\`, b) >= 0
}

func emphasisBuilder(marker byte, kind ast.Kind) func(*Parser, int, int) *ast.Node {
	return func(p *Parser, start, end int) *ast.Node {
		if start > 0 && !isEmphasisPre(p.input[start-1]) {
			return nil
		}
		if start+1 >= end || isSpaceByte(p.input[start+1]) || p.input[start+1] == marker {
			return nil
		}
		for i := start + 2; i < end; i++ {
			if p.input[i] != marker {
				continue
			}
			if isSpaceByte(p.input[i-1]) {
				continue
			}
			if i+1 < end && !isEmphasisPost(p.input[i+1]) {
				continue
			}
			if reBlankInside.MatchString(p.input[start+1 : i]) {
				return nil
			}
			switch kind {
			case ast.Code:
				return objectNode(kind, start, i+1, ast.CodeData{Value: p.input[start+1 : i]})
			case ast.Verbatim:
				return objectNode(kind, start, i+1, ast.VerbatimData{Value: p.input[start+1 : i]})
			}
			return withContent(objectNode(kind, start, i+1, nil), start+1, i)
		}
		return nil
	}
}

var reLineBreakAt = regexp.MustCompile(`^\\\\[ \t]*\n`)

func buildLineBreak(p *Parser, start, end int) *ast.Node {
	loc := reLineBreakAt.FindStringIndex(p.input[start:end])
	if loc == nil {
		return nil
	}
	return objectNode(ast.LineBreak, start, start+loc[1], nil)
}

var (
	reEntityAt       = regexp.MustCompile(`^\\([A-Za-z]+)(\{\})?`)
	reLatexCommandAt = regexp.MustCompile(`^\\[A-Za-z]+(?:\[[^\]\n]*\]|\{[^{}\n]*\})+`)
	reLatexParenAt   = regexp.MustCompile(`^\\\((?s:.+?)\\\)`)
	reLatexsquareAt  = regexp.MustCompile(`^\\\[(?s:.+?)\\\]`)
)

// buildBackslash resolves a backslash sequence into a latex fragment
// or an entity.
func buildBackslash(p *Parser, start, end int) *ast.Node {
	s := p.input[start:end]
	if m := reLatexParenAt.FindString(s); m != "" {
		return objectNode(ast.LatexFragment, start, start+len(m), ast.LatexFragmentData{Value: m})
	}
	if m := reLatexsquareAt.FindString(s); m != "" {
		return objectNode(ast.LatexFragment, start, start+len(m), ast.LatexFragmentData{Value: m})
	}
	entity := reEntityAt.FindStringSubmatch(s)
	// An explicit "{}" always closes an entity; otherwise a command
	// with real arguments takes precedence.
	if entity != nil && entity[2] != "" {
		return objectNode(ast.Entity, start, start+len(entity[0]), ast.EntityData{
			Name:        entity[1],
			UseBrackets: true,
		})
	}
	if m := reLatexCommandAt.FindString(s); m != "" {
		return objectNode(ast.LatexFragment, start, start+len(m), ast.LatexFragmentData{Value: m})
	}
	if entity != nil {
		return objectNode(ast.Entity, start, start+len(entity[0]), ast.EntityData{Name: entity[1]})
	}
	return nil
}

var (
	reDollarDouble = regexp.MustCompile(`^\$\$(?s:.+?)\$\$`)
	reDollarSingle = regexp.MustCompile(`^\$([^$ \t\n](?:[^$\n]*[^$ \t\n])?)\$`)
)

func buildDollarFragment(p *Parser, start, end int) *ast.Node {
	if start > 0 && p.input[start-1] == '$' {
		return nil
	}
	s := p.input[start:end]
	if m := reDollarDouble.FindString(s); m != "" {
		return objectNode(ast.LatexFragment, start, start+len(m), ast.LatexFragmentData{Value: m})
	}
	m := reDollarSingle.FindString(s)
	if m == "" {
		return nil
	}
	after := start + len(m)
	if after < end && (isWordByte(p.input[after]) || p.input[after] == '$') {
		return nil
	}
	return objectNode(ast.LatexFragment, start, start+len(m), ast.LatexFragmentData{Value: m})
}

var reExportSnippetAt = regexp.MustCompile(`^@@([-A-Za-z0-9]+):`)

func buildExportSnippet(p *Parser, start, end int) *ast.Node {
	m := reExportSnippetAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	rest := p.input[start+len(m[0]) : end]
	closing := strings.Index(rest, "@@")
	if closing < 0 || strings.Contains(rest[:closing], "\n") {
		return nil
	}
	stop := start + len(m[0]) + closing + 2
	return objectNode(ast.ExportSnippet, start, stop, ast.ExportSnippetData{
		Backend: m[1],
		Value:   rest[:closing],
	})
}

var reFootnoteLabelAt = regexp.MustCompile(`^\[fn:([-_\w]*)([\]:])`)

func buildFootnoteReference(p *Parser, start, end int) *ast.Node {
	m := reFootnoteLabelAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	if m[2] == "]" {
		if m[1] == "" {
			return nil
		}
		return objectNode(ast.FootnoteReference, start, start+len(m[0]), ast.FootnoteReferenceData{Label: m[1]})
	}
	// Inline definition: find the closing bracket, pairs may nest.
	depth := 1
	for i := start + 1; i < end; i++ {
		switch p.input[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				defStart := start + len(m[0])
				node := objectNode(ast.FootnoteReference, start, i+1, ast.FootnoteReferenceData{
					Label:  m[1],
					Inline: true,
				})
				if defStart < i {
					withContent(node, defStart, i)
				}
				return node
			}
		case '\n':
			if i+1 < end && p.input[i+1] == '\n' {
				return nil
			}
		}
	}
	return nil
}

var reInlineBabelAt = regexp.MustCompile(`^call_([-\w]+)(?:\[([^\]\n]*)\])?\(([^)\n]*)\)(?:\[([^\]\n]*)\])?`)

func buildInlineBabelCall(p *Parser, start, end int) *ast.Node {
	if start > 0 && isWordByte(p.input[start-1]) {
		return nil
	}
	m := reInlineBabelAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	return objectNode(ast.InlineBabelCall, start, start+len(m[0]), ast.InlineBabelCallData{
		Call:         m[1],
		InsideHeader: m[2],
		Arguments:    m[3],
		EndHeader:    m[4],
		Value:        m[0],
	})
}

var reInlineSrcAt = regexp.MustCompile(`^src_([A-Za-z0-9-]+)(?:\[([^\]\n]*)\])?\{([^{}\n]*)\}`)

func buildInlineSrcBlock(p *Parser, start, end int) *ast.Node {
	if start > 0 && isWordByte(p.input[start-1]) {
		return nil
	}
	m := reInlineSrcAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	return objectNode(ast.InlineSrcBlock, start, start+len(m[0]), ast.InlineSrcBlockData{
		Language:   m[1],
		Parameters: m[2],
		Value:      m[3],
	})
}

var reMacroAt = regexp.MustCompile(`^\{\{\{([A-Za-z][-A-Za-z0-9_]*)(?:\(((?s:.*?))\))?\}\}\}`)

func buildMacro(p *Parser, start, end int) *ast.Node {
	m := reMacroAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	data := ast.MacroData{Key: strings.ToLower(m[1]), Value: m[0]}
	if m[2] != "" {
		for _, a := range strings.Split(m[2], ",") {
			data.Args = append(data.Args, strings.TrimSpace(a))
		}
	}
	return objectNode(ast.Macro, start, start+len(m[0]), data)
}

var reBracketLinkAt = regexp.MustCompile(`^\[\[([^\[\]]+)\](?:\[((?:[^\[\]]|\[[^\[\]]*\])+)\])?\]`)

func buildBracketLink(p *Parser, start, end int) *ast.Node {
	m := reBracketLinkAt.FindStringSubmatchIndex(p.input[start:end])
	if m == nil {
		return nil
	}
	path := p.input[start+m[2] : start+m[3]]
	data := classifyLink(path)
	data.Format = ast.LinkFormatBracket
	node := objectNode(ast.Link, start, start+m[1], data)
	if m[4] >= 0 {
		withContent(node, start+m[4], start+m[5])
	}
	return node
}

var reAngleLinkAt = regexp.MustCompile(`^<([A-Za-z][-A-Za-z0-9]*):([^>\n]*)>`)

func buildAngleLink(p *Parser, start, end int) *ast.Node {
	m := reAngleLinkAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	data := classifyLink(m[1] + ":" + m[2])
	data.Format = ast.LinkFormatAngle
	return objectNode(ast.Link, start, start+len(m[0]), data)
}

var (
	plainLinkSchemes = map[string]bool{
		"http": true, "https": true, "ftp": true, "mailto": true,
		"file": true, "news": true, "shell": true, "elisp": true,
		"doi": true, "info": true, "irc": true,
	}
	rePlainLinkAt = regexp.MustCompile(`^([A-Za-z]+):([^ \t\n<>\[\]]+)`)
)

func buildPlainLink(p *Parser, start, end int) *ast.Node {
	if start > 0 && isWordByte(p.input[start-1]) {
		return nil
	}
	m := rePlainLinkAt.FindStringSubmatch(p.input[start:end])
	if m == nil || !plainLinkSchemes[strings.ToLower(m[1])] {
		return nil
	}
	raw := strings.TrimRight(m[0], `.,;:!?')`)
	data := classifyLink(raw)
	data.Format = ast.LinkFormatPlain
	return objectNode(ast.Link, start, start+len(raw), data)
}

// classifyLink splits a raw link path into its type, protocol, payload
// and search option.
func classifyLink(raw string) *ast.LinkData {
	data := &ast.LinkData{RawLink: raw, Path: raw, Type: ast.LinkTypeFuzzy}
	switch {
	case strings.HasPrefix(raw, "#"):
		data.Type = ast.LinkTypeCustomID
		data.Path = raw[1:]
	case strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")"):
		data.Type = ast.LinkTypeCoderef
		data.Path = raw[1 : len(raw)-1]
	case strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../"):
		data.Type = ast.LinkTypeFile
		data.Path, data.SearchOption, _ = strings.Cut(raw, "::")
	default:
		if proto, rest, ok := strings.Cut(raw, ":"); ok && !strings.Contains(proto, " ") {
			switch strings.ToLower(proto) {
			case "file":
				data.Type = ast.LinkTypeFile
				data.Protocol = proto
				data.Path, data.SearchOption, _ = strings.Cut(rest, "::")
			case "id":
				data.Type = ast.LinkTypeID
				data.Protocol = proto
				data.Path = rest
			default:
				data.Type = ast.LinkTypeProtocol
				data.Protocol = proto
				data.Path = rest
			}
		}
	}
	return data
}

var (
	reRadioTargetAt = regexp.MustCompile(`^<<<([^<>\n]+)>>>`)
	reTargetAt      = regexp.MustCompile(`^<<([^<>\n]+)>>`)
)

func buildRadioTarget(p *Parser, start, end int) *ast.Node {
	m := reRadioTargetAt.FindStringSubmatchIndex(p.input[start:end])
	if m == nil {
		return nil
	}
	inner := p.input[start+m[2] : start+m[3]]
	if isSpaceByte(inner[0]) || isSpaceByte(inner[len(inner)-1]) {
		return nil
	}
	node := objectNode(ast.RadioTarget, start, start+m[1], ast.RadioTargetData{RawValue: inner})
	return withContent(node, start+m[2], start+m[3])
}

func buildTarget(p *Parser, start, end int) *ast.Node {
	m := reTargetAt.FindStringSubmatch(p.input[start:end])
	if m == nil {
		return nil
	}
	if isSpaceByte(m[1][0]) || isSpaceByte(m[1][len(m[1])-1]) {
		return nil
	}
	return objectNode(ast.Target, start, start+len(m[0]), ast.TargetData{Value: m[1]})
}

var reStatisticsAt = regexp.MustCompile(`^\[([0-9]*%|[0-9]*/[0-9]*)\]`)

func buildStatisticsCookie(p *Parser, start, end int) *ast.Node {
	m := reStatisticsAt.FindString(p.input[start:end])
	if m == "" {
		return nil
	}
	return objectNode(ast.StatisticsCookie, start, start+len(m), ast.StatisticsCookieData{Value: m})
}

func buildTimestamp(p *Parser, start, end int) *ast.Node {
	ts, n := parseTimestampRaw(p.input[start:end])
	if ts == nil {
		return nil
	}
	return objectNode(ast.Timestamp, start, start+n, ts)
}

var reScriptPlainAt = regexp.MustCompile(`^[-+]?[\w.,\\]*\w`)

func scriptBuilder(marker byte, kind ast.Kind) func(*Parser, int, int) *ast.Node {
	return func(p *Parser, start, end int) *ast.Node {
		if start == 0 || isSpaceByte(p.input[start-1]) {
			return nil
		}
		if p.input[start] != marker || start+1 >= end {
			return nil
		}
		after := start + 1
		if p.input[after] == '{' {
			depth := 0
			for i := after; i < end; i++ {
				switch p.input[i] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						node := objectNode(kind, start, i+1, ast.ScriptData{UseBrackets: true})
						return withContent(node, after+1, i)
					}
				case '\n':
					return nil
				}
			}
			return nil
		}
		m := reScriptPlainAt.FindString(p.input[after:end])
		if m == "" {
			return nil
		}
		node := objectNode(kind, start, after+len(m), ast.ScriptData{})
		return withContent(node, after, after+len(m))
	}
}
