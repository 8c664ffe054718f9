package parser

import "regexp"

// Line-start recognizers for the element phase. All of them are meant
// to be anchored at the cursor through LookingAt or CapturingAt;
// patterns that must cross line breaks carry an explicit (?m) or \n so
// the cursor widens the match region for them.
var (
	reEmptyLine = regexp.MustCompile(`^[ \t]*$`)

	reHeadlineShort     = regexp.MustCompile(`^\*+\s`)
	reHeadlineMultiline = regexp.MustCompile(`(?m)^\*+\s`)
	rePlanningLine      = regexp.MustCompile(`^[ \t]*((?:CLOSED|DEADLINE|SCHEDULED):)`)
	rePropertyDrawer    = regexp.MustCompile(`(?i)^[ \t]*:PROPERTIES:[ \t]*\n(?:[ \t]*:\S+:(?: .*)?[ \t]*\n)*?[ \t]*:END:[ \t]*`)
	reClockLine         = regexp.MustCompile(`(?i)^[ \t]*CLOCK:`)
	reHeadlinePriority  = regexp.MustCompile(`\[#.\][ \t]*`)
	reHeadlineComment   = regexp.MustCompile(`COMMENT(?:[ \t]|$)`)
	reHeadlineTags      = regexp.MustCompile(`[ \t]+(:[[:alnum:]_@#%:]+:)[ \t]*$`)
	reTimeNotClock      = regexp.MustCompile(`((?:CLOSED|DEADLINE|SCHEDULED):) *[\[<]([^\]>]+)[\]>]`)
	reInlineTaskEnd     = regexp.MustCompile(`^\*+[ \t]+END[ \t]*$`)

	reHashLine   = regexp.MustCompile(`[ \t]*#`)
	reSpaceOrEol = regexp.MustCompile(`(?: |$)`)

	reBlockBegin    = regexp.MustCompile(`(?i)\+BEGIN_(\S+)`)
	reDynamicBlock  = regexp.MustCompile(`(?i)\+BEGIN:? `)
	reBabelCall     = regexp.MustCompile(`(?i)\+CALL:`)
	reKeywordLine   = regexp.MustCompile(`\+\S+:`)
	reDynamicHeader = regexp.MustCompile(`(?i)^[ \t]*#\+BEGIN:?[ \t]+(\S+)([ \t]+(.*))?[ \t]*$`)

	reDrawer     = regexp.MustCompile(`^[ \t]*:((?:\w|[-_])+):[ \t]*$`)
	reDrawerEnd  = regexp.MustCompile(`(?im)^[ \t]*:END:[ \t]*$`)
	reLatexBegin = regexp.MustCompile(`^[ \t]*\\begin\{([A-Za-z0-9*]+)\}`)

	reFixedWidth         = regexp.MustCompile(`[ \t]*:( |$)`)
	reFootnoteDefinition = regexp.MustCompile(`^\[fn:([-_\w]+)\]`)
	reDiarySexp          = regexp.MustCompile(`%%\(`)
	reHorizontalRule     = regexp.MustCompile(`[ \t]*-{5,}[ \t]*$`)

	reTableBorder = regexp.MustCompile(`[ \t]*\|`)
	reTableRule   = regexp.MustCompile(`[ \t]*\|-`)
	reTblFm       = regexp.MustCompile(`(?i)^[ \t]*#\+TBLFM:[ \t]*(.*?)[ \t]*$`)

	// Affiliated keywords: group 1 holds a dual keyword, group 2 its
	// optional secondary value, group 3 a regular keyword and group 4
	// an export attribute keyword.
	reAffiliated = regexp.MustCompile(`(?i)[ \t]*#\+(?:((?:CAPTION|RESULTS))(?:\[(.*)\])?|((?:DATA|HEADERS?|LABEL|NAME|PLOT|RES(?:NAME|ULT)|(?:S(?:OURC|RCNAM)|TBLNAM)E))|(ATTR_[-_A-Za-z0-9]+)):[ \t]*`)
)
