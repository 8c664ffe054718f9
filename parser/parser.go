// Package parser turns Org mode text into a syntax tree.
//
// Parsing runs in two phases over a shared cursor. The element phase
// walks the buffer line by line and recognizes elements by looking at
// the beginning of each line, recursing into greater elements. The
// object phase then scans the text held by paragraphs, headline titles,
// verse blocks and table rows for markup objects, restricted by what
// each container may hold.
//
// All node locations are byte intervals into the input; no text is
// copied while parsing.
package parser

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

// Granularity bounds how deep a parse descends.
type Granularity uint8

const (
	// GranularityHeadline stops at headlines and sections.
	GranularityHeadline Granularity = iota

	// GranularityGreaterElement also parses the greater elements
	// directly inside sections.
	GranularityGreaterElement

	// GranularityElement parses every element but leaves the text
	// inside paragraphs unexplored.
	GranularityElement

	// GranularityObject parses everything, down to the objects inside
	// paragraphs, headline titles and table cells.
	GranularityObject
)

// parserMode biases element recognition on the context the previous
// element established. A planning line, for example, is only
// recognized directly below a headline.
type parserMode uint8

const (
	modeNone parserMode = iota
	modeFirstSection
	modeSection
	modePlanning
	modeItem
	modeNodeProperty
	modeTableRow
	modePropertyDrawer
)

// Headlines with at least this many stars parse as inline tasks.
const inlineTaskMinLevel = 15

// Parser holds the state of a single parse over one input buffer.
type Parser struct {
	cursor      *cursor.Cursor
	input       string
	granularity Granularity
	env         Environment

	reTodo *regexp.Regexp
	reItem *regexp.Regexp

	// Structures of the lists met so far, keyed by item begin offset,
	// so an item parsed through the engine can find its extent.
	itemStructs map[int]*ast.ListStruct
}

// New prepares a parser over input. A nil env falls back to
// DefaultEnvironment.
func New(input string, granularity Granularity, env Environment) *Parser {
	if env == nil {
		env = DefaultEnvironment{}
	}
	p := &Parser{
		cursor:      cursor.New(input, 0),
		input:       input,
		granularity: granularity,
		env:         env,
	}
	p.reTodo = compileTodoRegex(env)
	p.reItem = compileItemRegex(env)
	return p
}

// Parse parses the whole buffer and returns the root of the tree. The
// root node spans the entire input.
func (p *Parser) Parse() *ast.Node {
	root := ast.NewRoot()
	root.Location = cursor.NewInterval(0, len(p.input))
	if len(p.input) > 0 {
		content := root.Location
		root.ContentLocation = &content
		p.parseElements(root, 0, len(p.input), modeFirstSection)
	}
	return root
}

// ParseString is the package entry point for a one-shot parse down to
// objects with the default environment.
func ParseString(input string) *ast.Node {
	return New(input, GranularityObject, nil).Parse()
}

// nextMode returns the mode to parse with after an element of the
// given kind: either on entering the element's contents (parent true)
// or after it as a sibling.
func nextMode(kind ast.Kind, parent bool) parserMode {
	if parent {
		switch kind {
		case ast.Headline:
			return modeSection
		case ast.InlineTask:
			return modePlanning
		case ast.PlainList:
			return modeItem
		case ast.PropertyDrawer:
			return modeNodeProperty
		case ast.Section:
			return modePlanning
		case ast.Table:
			return modeTableRow
		}
		return modeNone
	}
	switch kind {
	case ast.Item:
		return modeItem
	case ast.NodeProperty:
		return modeNodeProperty
	case ast.Planning:
		return modePropertyDrawer
	case ast.TableRow:
		return modeTableRow
	}
	return modeNone
}

// parseElements parses the elements between beg and end and appends
// them to parent, recursing into greater elements when the granularity
// asks for it. The cursor position is restored before returning.
func (p *Parser) parseElements(parent *ast.Node, beg, end int, mode parserMode) {
	saved := p.cursor.Pos()
	defer p.cursor.Set(saved)
	p.cursor.Set(beg)

	if p.granularity == GranularityHeadline && !p.onHeadline() {
		if pos, ok := p.cursor.Next(headlineMetric{}); ok && pos <= end {
			p.cursor.Set(pos)
		} else {
			p.cursor.Set(end)
		}
	}

	for p.cursor.Pos() < end {
		p.skipBlankLines(end)
		if p.cursor.Pos() >= end {
			break
		}
		el := p.currentElement(end, mode)
		if el == nil {
			break
		}
		p.cursor.Set(el.Location.End)

		if el.ContentLocation != nil {
			switch {
			case el.Kind == ast.Headline || el.Kind == ast.Section || el.Kind.IsGreaterElement():
				recurse := el.Kind == ast.Headline ||
					p.granularity == GranularityElement ||
					p.granularity == GranularityObject ||
					el.Kind == ast.Section && p.granularity == GranularityGreaterElement
				if recurse {
					p.parseElements(el, el.ContentLocation.Start, el.ContentLocation.End, nextMode(el.Kind, true))
					if el.Kind == ast.Headline || el.Kind == ast.InlineTask {
						liftHeadlineMeta(el)
					}
				}
			case el.Kind.IsObjectContainer() && p.granularity == GranularityObject:
				p.parseObjects(el, el.ContentLocation.Start, el.ContentLocation.End)
			}
		}

		parent.AppendChild(el)
		mode = nextMode(el.Kind, false)
	}
}

// currentElement recognizes the element starting at the cursor and
// returns its fully parsed node, or nil when nothing starts before
// limit. The cursor position is restored before returning.
func (p *Parser) currentElement(limit int, mode parserMode) *ast.Node {
	if p.cursor.Pos() >= limit {
		return nil
	}
	saved := p.cursor.Pos()
	defer p.cursor.Set(saved)

	begin := saved

	switch mode {
	case modeItem:
		return p.itemParser(limit, nil)
	case modeTableRow:
		return p.tableRowParser(limit)
	case modeNodeProperty:
		return p.nodePropertyParser(limit)
	}

	if p.onHeadline() {
		if p.headlineLevel() < inlineTaskMinLevel {
			return p.headlineParser(limit)
		}
	} else {
		switch mode {
		case modeSection:
			return p.sectionParser(limit)
		case modeFirstSection:
			end := limit
			if pos, ok := (headlineMetric{}).Next(p.input, p.cursor.Pos()); ok && pos < end {
				end = pos
			}
			return p.sectionParser(end)
		}
	}

	if mode == modePlanning && p.charAtLineStart(0) == '*' {
		if _, ok := p.cursor.LookingAt(rePlanningLine); ok {
			return p.planningParser(limit)
		}
	}
	if mode == modePlanning || mode == modePropertyDrawer {
		n := -1
		if mode == modePlanning {
			n = 0
		}
		if p.charAtLineStart(n) == '*' {
			if _, ok := p.cursor.LookingAt(rePropertyDrawer); ok {
				return p.propertyDrawerParser(limit)
			}
		}
	}

	if !p.cursor.IsBol() {
		return p.paragraphParser(limit, begin, nil)
	}
	if _, ok := p.cursor.LookingAt(reClockLine); ok {
		return p.clockParser(limit)
	}
	if p.onHeadline() {
		return p.inlineTaskParser(limit)
	}

	affStart, aff := p.collectAffiliated(limit)
	begin = affStart
	if aff != nil && p.cursor.Pos() >= limit {
		p.cursor.Set(affStart)
		return p.keywordParser(limit, affStart, nil)
	}

	switch {
	case p.lookingAtP(reLatexBegin):
		return p.latexEnvironmentParser(limit, begin, aff)
	case p.lookingAtP(reDrawer):
		return p.drawerParser(limit, begin, aff)
	case p.lookingAtP(reFixedWidth):
		return p.fixedWidthParser(limit, begin, aff)
	case p.lookingAtP(reHashLine):
		return p.hashDispatch(limit, begin, aff)
	case p.lookingAtP(reFootnoteDefinition):
		return p.footnoteDefinitionParser(limit, begin, aff)
	case p.lookingAtP(reHorizontalRule):
		return p.horizontalRuleParser(limit, begin, aff)
	case p.lookingAtP(reDiarySexp):
		return p.diarySexpParser(limit, begin, aff)
	case p.lookingAtP(reTableBorder):
		return p.tableParser(limit, begin, aff)
	case p.lookingAtP(p.reItem):
		return p.plainListParser(limit, begin, aff, nil)
	}
	return p.paragraphParser(limit, begin, aff)
}

// hashDispatch resolves a line starting with "#" into a comment, a
// block, a babel call or a keyword.
func (p *Parser) hashDispatch(limit, begin int, aff *ast.Affiliated) *ast.Node {
	iv, _ := p.cursor.LookingAt(reHashLine)
	after := cursor.New(p.input, iv.End)

	if _, ok := after.LookingAt(reSpaceOrEol); ok {
		return p.commentParser(limit, begin, aff)
	}
	if m := after.CapturingAt(reBlockBegin); m != nil {
		name, _ := m.Group(1)
		switch strings.ToUpper(name) {
		case "CENTER":
			return p.greaterBlockParser(limit, begin, aff, ast.CenterBlock)
		case "QUOTE":
			return p.greaterBlockParser(limit, begin, aff, ast.QuoteBlock)
		case "COMMENT":
			return p.literalBlockParser(limit, begin, aff, ast.CommentBlock)
		case "EXAMPLE":
			return p.literalBlockParser(limit, begin, aff, ast.ExampleBlock)
		case "EXPORT":
			return p.literalBlockParser(limit, begin, aff, ast.ExportBlock)
		case "SRC":
			return p.literalBlockParser(limit, begin, aff, ast.SrcBlock)
		case "VERSE":
			return p.literalBlockParser(limit, begin, aff, ast.VerseBlock)
		}
		return p.greaterBlockParser(limit, begin, aff, ast.SpecialBlock)
	}
	if _, ok := after.LookingAt(reBabelCall); ok {
		return p.babelCallParser(limit, begin, aff)
	}
	if _, ok := after.LookingAt(reDynamicBlock); ok {
		return p.dynamicBlockParser(limit, begin, aff)
	}
	if _, ok := after.LookingAt(reKeywordLine); ok {
		return p.keywordParser(limit, begin, aff)
	}
	return p.paragraphParser(limit, begin, aff)
}

func (p *Parser) lookingAtP(re *regexp.Regexp) bool {
	_, ok := p.cursor.LookingAt(re)
	return ok
}

// onHeadline reports whether the cursor sits at the start of a
// headline line.
func (p *Parser) onHeadline() bool {
	return headlineMetric{}.IsBoundary(p.input, p.cursor.Pos())
}

// headlineLevel counts the stars of the headline at the cursor without
// moving it.
func (p *Parser) headlineLevel() int {
	n := 0
	for i := p.cursor.Pos(); i < len(p.input) && p.input[i] == '*'; i++ {
		n++
	}
	return n
}

// charAtLineStart returns the first byte of the line n-1 lines above
// the current one (n as in LineBeginningPosition), or 0 at the buffer
// edge.
func (p *Parser) charAtLineStart(n int) byte {
	pos := p.cursor.LineBeginningPosition(n)
	if pos >= len(p.input) {
		return 0
	}
	return p.input[pos]
}

// skipBlankLines moves the cursor over consecutive blank lines, never
// past limit, and returns how many it crossed.
func (p *Parser) skipBlankLines(limit int) int {
	count := 0
	for p.cursor.Pos() < limit {
		if _, ok := p.cursor.LookingAt(reEmptyLine); !ok {
			break
		}
		count++
		if pos, ok := p.cursor.Next(cursor.Lines); ok {
			p.cursor.Set(pos)
		} else {
			p.cursor.Eof()
			break
		}
	}
	if p.cursor.Pos() > limit {
		p.cursor.Set(limit)
	}
	return count
}

// finishElement absorbs the blank lines following the construct that
// ends at the cursor and builds the common parts of its node.
func (p *Parser) finishElement(kind ast.Kind, begin, limit int, aff *ast.Affiliated) *ast.Node {
	blank := p.skipBlankLines(limit)
	return &ast.Node{
		Kind:       kind,
		Location:   cursor.NewInterval(begin, p.cursor.Pos()),
		PostBlank:  blank,
		Affiliated: aff,
	}
}

// liftHeadlineMeta copies the planning references and the property
// drawer entries parsed at the start of a headline's section into the
// headline's own data.
func liftHeadlineMeta(hl *ast.Node) {
	data, ok := hl.Data.(*ast.HeadlineData)
	if !ok {
		return
	}
	leading := hl.Children
	if hl.Kind == ast.Headline {
		if len(leading) == 0 || leading[0].Kind != ast.Section {
			return
		}
		leading = leading[0].Children
	}
	for _, c := range leading {
		switch c.Kind {
		case ast.Planning:
			pd := c.Data.(*ast.PlanningData)
			data.Closed = pd.Closed
			data.Deadline = pd.Deadline
			data.Scheduled = pd.Scheduled
		case ast.PropertyDrawer:
			for _, np := range c.Children {
				pd, ok := np.Data.(ast.NodePropertyData)
				if !ok {
					continue
				}
				if data.Properties == nil {
					data.Properties = make(map[string]string)
				}
				data.Properties[strings.ToUpper(pd.Key)] = pd.Value
			}
		default:
			return
		}
	}
}

func compileTodoRegex(env Environment) *regexp.Regexp {
	words := make([]string, 0, len(env.TodoKeywords())+len(env.DoneKeywords()))
	for _, w := range env.TodoKeywords() {
		words = append(words, regexp.QuoteMeta(w))
	}
	for _, w := range env.DoneKeywords() {
		words = append(words, regexp.QuoteMeta(w))
	}
	if len(words) == 0 {
		words = append(words, `\x{FFFD}never`)
	}
	// Longer keywords first so "DONETODAY" is not eaten by "DONE".
	slices.SortFunc(words, func(a, b string) int {
		return len(b) - len(a)
	})
	return regexp.MustCompile(`(?i)(` + strings.Join(words, "|") + `)[ \t]`)
}

// compileItemRegex builds the bullet recognizer for list items. The
// alternatives depend on whether alphabetic counters are allowed and
// which terminator may close an ordered counter.
func compileItemRegex(env Environment) *regexp.Regexp {
	counter := `[0-9]+`
	if env.ListAllowAlphabetical() {
		counter = `(?:[0-9]+|[A-Za-z])`
	}
	var term string
	switch env.OrderedListTerminator() {
	case TerminatorPeriod:
		term = `\.`
	case TerminatorParen:
		term = `\)`
	default:
		term = `[.)]`
	}
	return regexp.MustCompile(`(?:[ \t]*(?:[-+]|(?:(` + counter + `)` + term + `))|[ \t]+\*)(?:[ \t]|$)`)
}
