package ast

// Payload structs for the node kinds that carry semantic fields beyond
// their location. All string fields are slices of the parsed buffer.

// TodoType classifies a headline's TODO keyword.
type TodoType uint8

const (
	TodoTypeNone TodoType = iota
	TodoTypeTodo
	TodoTypeDone
)

// HeadlineData is the payload of Headline and InlineTask nodes.
type HeadlineData struct {
	// Reduced level of the headline, the number of leading stars.
	Level int

	// Raw headline text without the stars and the tags.
	RawValue string

	// Title as parsed objects, nil below Object granularity.
	Title []*Node

	// TODO keyword, if any, and its class.
	TodoKeyword string
	TodoType    TodoType

	// Priority cookie character, 0 when absent.
	Priority rune

	// Tags in order of appearance, the archive tag included.
	Tags []string

	// Number of blank lines between the headline and the first
	// non-blank line of its contents.
	PreBlank int

	// Planning references, if any.
	Closed    *TimestampData
	Deadline  *TimestampData
	Scheduled *TimestampData

	// Properties from an attached property drawer, keys upcased.
	Properties map[string]string

	Archived        bool
	Commented       bool
	FootnoteSection bool
}

// NodePropertyData is a single KEY/VALUE row of a property drawer.
type NodePropertyData struct {
	Key   string
	Value string
}

// KeywordData is the payload of a #+KEY: VALUE keyword line.
type KeywordData struct {
	Key   string
	Value string
}

// BabelCallData is the payload of a #+CALL: line.
type BabelCallData struct {
	// Name of the code block being called.
	Call string

	// Header arguments applied to the named code block.
	InsideHeader string

	// Arguments passed to the code block.
	Arguments string

	// Header arguments applied to the calling instance.
	EndHeader string

	// Raw call, as Org syntax.
	Value string
}

// ClockStatus tells whether a clock line is still running.
type ClockStatus uint8

const (
	ClockClosed ClockStatus = iota
	ClockRunning
)

// ClockData is the payload of a CLOCK: line.
type ClockData struct {
	// Duration for a closed clock, "" otherwise.
	Duration string

	Status ClockStatus

	// Timestamp associated with the clock keyword.
	Value *TimestampData
}

// CommentData holds a comment's text, pound signs included.
type CommentData struct {
	Value string
}

// CommentBlockData holds comment block contents without the block
// boundaries.
type CommentBlockData struct {
	Value string
}

// DiarySexpData holds the full sexp of a %%(...) line.
type DiarySexpData struct {
	Value string
}

// DrawerData is the payload of a generic drawer.
type DrawerData struct {
	Name string
}

// DynamicBlockData is the payload of a #+BEGIN: block.
type DynamicBlockData struct {
	Name      string
	Arguments string
}

// LineNumbering selects how example and source block lines are
// numbered on export.
type LineNumbering uint8

const (
	LineNumberingOff LineNumbering = iota
	LineNumberingNew
	LineNumberingContinued
)

// ExampleBlockData is the payload of an example block.
type ExampleBlockData struct {
	Value          string
	Switches       string
	Parameters     string
	Language       string
	LabelFmt       string
	NumberLines    LineNumbering
	PreserveIndent bool
	RetainLabels   bool
	UseLabels      bool
}

// SrcBlockData is the payload of a source block.
type SrcBlockData struct {
	Language       string
	Value          string
	Switches       string
	Parameters     string
	LabelFmt       string
	NumberLines    LineNumbering
	PreserveIndent bool
	RetainLabels   bool
	UseLabels      bool
}

// ExportBlockData is the payload of an export block.
type ExportBlockData struct {
	// Backend name, upcased.
	Type  string
	Value string
}

// SpecialBlockData is the payload of a block with an unrecognized name.
type SpecialBlockData struct {
	Type     string
	RawValue string
}

// FixedWidthData holds fixed-width contents without the colon prefix.
type FixedWidthData struct {
	Value string
}

// FootnoteDefinitionData is the payload of a [fn:label] definition.
type FootnoteDefinitionData struct {
	Label string

	// Blank lines between the label and the contents.
	PreBlank int
}

// LatexEnvironmentData holds a LaTeX environment, \begin to \end.
type LatexEnvironmentData struct {
	Value string
}

// ListKind classifies a plain list.
type ListKind uint8

const (
	ListUnordered ListKind = iota
	ListOrdered
	ListDescriptive
)

// ListItem is one row of a list structure: the shape of a single item
// discovered while scanning a plain list region.
type ListItem struct {
	// Begin is the buffer offset of the item's first character.
	Begin int

	// Indentation in columns before the bullet.
	Indent int

	// The bullet text, terminator included.
	Bullet string

	// End of the item, exclusive.
	End int
}

// ListStruct is the structure of a plain list region, shared between
// the list node and its items.
type ListStruct struct {
	Items []ListItem
}

// PlainListData is the payload of a plain list.
type PlainListData struct {
	Kind      ListKind
	Structure *ListStruct
}

// Checkbox is an item's checkbox state.
type Checkbox uint8

const (
	CheckboxNone Checkbox = iota
	CheckboxOn
	CheckboxOff
	CheckboxTrans
)

// ItemData is the payload of a list item.
type ItemData struct {
	Bullet   string
	Checkbox Checkbox

	// Counter from a [@N] counter set, 0 when absent.
	Counter int

	// Blank lines between the item start and its contents.
	PreBlank int

	// Tag of a descriptive item, raw and parsed forms.
	RawTag string
	Tag    []*Node

	Structure *ListStruct
}

// PlanningData is the payload of a planning line under a headline.
type PlanningData struct {
	Closed    *TimestampData
	Deadline  *TimestampData
	Scheduled *TimestampData
}

// TableData is the payload of a table.
type TableData struct {
	// Formulas from a #+TBLFM: line, if any.
	TblFm string
}

// TableRowType discriminates standard rows from horizontal rules.
type TableRowType uint8

const (
	TableRowStandard TableRowType = iota
	TableRowRule
)

// TableRowData is the payload of a table row.
type TableRowData struct {
	Type TableRowType
}

// CodeData holds the contents of ~code~ markup.
type CodeData struct {
	Value string
}

// VerbatimData holds the contents of =verbatim= markup.
type VerbatimData struct {
	Value string
}

// EntityData is the payload of an \entity object.
type EntityData struct {
	Name        string
	UseBrackets bool
}

// ExportSnippetData is the payload of an @@backend:value@@ snippet.
type ExportSnippetData struct {
	Backend string
	Value   string
}

// FootnoteReferenceData is the payload of a [fn:...] reference.
type FootnoteReferenceData struct {
	// Label, "" for anonymous inline references.
	Label string

	// Inline is true when the definition is carried inline.
	Inline bool
}

// InlineBabelCallData is the payload of a call_name() object.
type InlineBabelCallData struct {
	Call         string
	InsideHeader string
	Arguments    string
	EndHeader    string
	Value        string
}

// InlineSrcBlockData is the payload of a src_lang{...} object.
type InlineSrcBlockData struct {
	Language   string
	Parameters string
	Value      string
}

// LatexFragmentData holds an inline LaTeX fragment.
type LatexFragmentData struct {
	Value string
}

// LinkFormat is the surface syntax a link was written in.
type LinkFormat uint8

const (
	LinkFormatPlain LinkFormat = iota
	LinkFormatAngle
	LinkFormatBracket
)

// LinkType classifies a link's destination.
type LinkType uint8

const (
	// LinkTypeFuzzy points at a target object, named element or
	// headline in the current tree.
	LinkTypeFuzzy LinkType = iota
	LinkTypeFile
	LinkTypeCoderef
	LinkTypeCustomID
	LinkTypeID
	LinkTypeRadio
	LinkTypeProtocol
)

// LinkData is the payload of a link object.
type LinkData struct {
	Format LinkFormat
	Type   LinkType

	// Protocol scheme for LinkTypeProtocol links (http, mailto, ...).
	Protocol string

	// Destination identifier, usually the link part with the type
	// prefix removed.
	Path string

	// Uninterpreted link part.
	RawLink string

	// Additional file location info, ::line or ::text.
	SearchOption string
}

// MacroData is the payload of a {{{name(args)}}} macro.
type MacroData struct {
	Key   string
	Args  []string
	Value string
}

// RadioTargetData holds a radio target's uninterpreted contents.
type RadioTargetData struct {
	RawValue string
}

// TargetData holds a <<target>> identifier.
type TargetData struct {
	Value string
}

// StatisticsCookieData holds a [n/m] or [nn%] cookie verbatim.
type StatisticsCookieData struct {
	Value string
}

// ScriptData is the payload of subscript and superscript objects.
type ScriptData struct {
	UseBrackets bool
}

// TimestampType classifies a timestamp object.
type TimestampType uint8

const (
	TimestampActive TimestampType = iota
	TimestampActiveRange
	TimestampInactive
	TimestampInactiveRange
	TimestampDiary
)

// RepeaterType is the kind of a timestamp repeater.
type RepeaterType uint8

const (
	RepeaterNone RepeaterType = iota
	RepeaterCumulate
	RepeaterCatchUp
	RepeaterRestart
)

// WarningType is the kind of a timestamp warning delay.
type WarningType uint8

const (
	WarningNone WarningType = iota
	WarningAll
	WarningFirst
)

// TimeUnit is the unit of a repeater or warning shift.
type TimeUnit uint8

const (
	UnitNone TimeUnit = iota
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// TimestampData is the payload of a timestamp object and of the
// timestamp references held by clock and planning lines.
type TimestampData struct {
	Type TimestampType

	// Raw timestamp text, brackets included.
	RawValue string

	YearStart  int
	MonthStart int
	DayStart   int

	// End parts default to the start parts when no ending date exists.
	YearEnd  int
	MonthEnd int
	DayEnd   int

	// Time of day, -1 when unspecified.
	HourStart   int
	MinuteStart int
	HourEnd     int
	MinuteEnd   int

	RepeaterType  RepeaterType
	RepeaterUnit  TimeUnit
	RepeaterValue int

	WarningType  WarningType
	WarningUnit  TimeUnit
	WarningValue int
}
