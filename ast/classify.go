package ast

// The classification predicates below are pure functions of the
// discriminant. They mirror org-element's fixed element/object split;
// none of them consult payload data.

// IsGreaterElement reports whether nodes of this kind directly contain
// other elements.
func (k Kind) IsGreaterElement() bool {
	switch k {
	case CenterBlock, Drawer, DynamicBlock, FootnoteDefinition, Headline,
		InlineTask, Item, PlainList, PropertyDrawer, QuoteBlock, Section,
		SpecialBlock, Table:
		return true
	}
	return false
}

// IsElement reports whether this kind is a block-level construct.
// Greater elements are elements too.
func (k Kind) IsElement() bool {
	switch k {
	case BabelCall, Clock, Comment, CommentBlock, DiarySexp, ExampleBlock,
		ExportBlock, FixedWidth, HorizontalRule, Keyword, LatexEnvironment,
		NodeProperty, Paragraph, Planning, SrcBlock, TableRow, VerseBlock:
		return true
	}
	return k.IsGreaterElement()
}

// IsObject reports whether this kind is an inline construct.
func (k Kind) IsObject() bool {
	switch k {
	case Bold, Code, Entity, ExportSnippet, FootnoteReference,
		InlineBabelCall, InlineSrcBlock, Italic, LatexFragment, LineBreak,
		Link, Macro, PlainText, RadioTarget, StatisticsCookie,
		StrikeThrough, Subscript, Superscript, TableCell, Target,
		Timestamp, Underline, Verbatim:
		return true
	}
	return false
}

// IsRecursiveObject reports whether this kind is an object that can
// contain other objects.
func (k Kind) IsRecursiveObject() bool {
	switch k {
	case Bold, FootnoteReference, Italic, Link, RadioTarget,
		StrikeThrough, Subscript, Superscript, TableCell, Underline:
		return true
	}
	return false
}

// IsObjectContainer reports whether nodes of this kind hold objects as
// children: the recursive objects plus the elements whose contents are
// inline text.
func (k Kind) IsObjectContainer() bool {
	switch k {
	case Paragraph, TableRow, VerseBlock:
		return true
	}
	return k.IsRecursiveObject()
}

// IsContainer reports whether nodes of this kind can have children.
func (k Kind) IsContainer() bool {
	return k.IsGreaterElement() || k.IsObjectContainer()
}

// inStandardSet reports membership in org-element's standard object
// set: every object except table cells.
func inStandardSet(that Kind) bool {
	if that == TableCell {
		return false
	}
	return that.IsObject()
}

// CanContain reports whether an object of kind that may appear directly
// inside a container of kind k. The relation is a fixed table carried
// over from org-element-object-restrictions, not derivable from the
// class predicates: a link never nests inside another link, radio
// targets exclude anything that would keep them from being recognized,
// and table cells admit a wider set than links do.
func (k Kind) CanContain(that Kind) bool {
	switch k {
	case Bold, Italic, FootnoteReference, Paragraph, StrikeThrough,
		Subscript, Superscript, Underline, VerseBlock:
		return inStandardSet(that)

	case Headline, InlineTask, Item:
		// Titles admit the standard set minus line breaks.
		if that == LineBreak {
			return false
		}
		return inStandardSet(that)

	case Keyword:
		if that == FootnoteReference {
			return false
		}
		return inStandardSet(that)

	case Link:
		switch that {
		case Bold, Code, Entity, ExportSnippet, InlineBabelCall,
			InlineSrcBlock, Italic, LatexFragment, Macro, StatisticsCookie,
			StrikeThrough, Subscript, Superscript, Underline, Verbatim:
			return true
		}
		return false

	case RadioTarget:
		switch that {
		case Bold, Code, Entity, Italic, LatexFragment, StrikeThrough,
			Subscript, Superscript, Underline:
			return true
		}
		return false

	case TableCell:
		switch that {
		case Bold, Code, Entity, ExportSnippet, FootnoteReference, Italic,
			LatexFragment, Link, Macro, RadioTarget, StrikeThrough,
			Subscript, Superscript, Target, Timestamp, Underline, Verbatim:
			return true
		}
		return false

	case TableRow:
		return that == TableCell
	}
	return false
}
