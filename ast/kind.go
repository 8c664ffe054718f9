package ast

// Kind identifies the syntax category of a node. The discriminant alone
// is enough to drive containment rules; payload data never participates
// in classification.
type Kind uint8

const (
	// OrgData is the synthetic root of a parse tree.
	OrgData Kind = iota

	// Elements.
	BabelCall
	Clock
	Comment
	CommentBlock
	DiarySexp
	ExampleBlock
	ExportBlock
	FixedWidth
	HorizontalRule
	Keyword
	LatexEnvironment
	NodeProperty
	Paragraph
	Planning
	SrcBlock
	TableRow
	VerseBlock

	// Greater elements.
	CenterBlock
	Drawer
	DynamicBlock
	FootnoteDefinition
	Headline
	InlineTask
	Item
	PlainList
	PropertyDrawer
	QuoteBlock
	Section
	SpecialBlock
	Table

	// Objects.
	Bold
	Code
	Entity
	ExportSnippet
	FootnoteReference
	InlineBabelCall
	InlineSrcBlock
	Italic
	LatexFragment
	LineBreak
	Link
	Macro
	PlainText
	RadioTarget
	StatisticsCookie
	StrikeThrough
	Subscript
	Superscript
	TableCell
	Target
	Timestamp
	Underline
	Verbatim
)

var kindNames = map[Kind]string{
	OrgData:            "org-data",
	BabelCall:          "babel-call",
	Clock:              "clock",
	Comment:            "comment",
	CommentBlock:       "comment-block",
	DiarySexp:          "diary-sexp",
	ExampleBlock:       "example-block",
	ExportBlock:        "export-block",
	FixedWidth:         "fixed-width",
	HorizontalRule:     "horizontal-rule",
	Keyword:            "keyword",
	LatexEnvironment:   "latex-environment",
	NodeProperty:       "node-property",
	Paragraph:          "paragraph",
	Planning:           "planning",
	SrcBlock:           "src-block",
	TableRow:           "table-row",
	VerseBlock:         "verse-block",
	CenterBlock:        "center-block",
	Drawer:             "drawer",
	DynamicBlock:       "dynamic-block",
	FootnoteDefinition: "footnote-definition",
	Headline:           "headline",
	InlineTask:         "inlinetask",
	Item:               "item",
	PlainList:          "plain-list",
	PropertyDrawer:     "property-drawer",
	QuoteBlock:         "quote-block",
	Section:            "section",
	SpecialBlock:       "special-block",
	Table:              "table",
	Bold:               "bold",
	Code:               "code",
	Entity:             "entity",
	ExportSnippet:      "export-snippet",
	FootnoteReference:  "footnote-reference",
	InlineBabelCall:    "inline-babel-call",
	InlineSrcBlock:     "inline-src-block",
	Italic:             "italic",
	LatexFragment:      "latex-fragment",
	LineBreak:          "line-break",
	Link:               "link",
	Macro:              "macro",
	PlainText:          "plain-text",
	RadioTarget:        "radio-target",
	StatisticsCookie:   "statistics-cookie",
	StrikeThrough:      "strike-through",
	Subscript:          "subscript",
	Superscript:        "superscript",
	TableCell:          "table-cell",
	Target:             "target",
	Timestamp:          "timestamp",
	Underline:          "underline",
	Verbatim:           "verbatim",
}

// String returns the element's name in org-element notation.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
