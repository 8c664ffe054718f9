// Package doc builds a derived read-model over a parsed Org tree.
// It walks the document once and exposes the headline outline, a tag
// index, TODO statistics and per-subtree clock sums for consumers such
// as the CLI and the web server.
package doc

import (
	"context"
	"sort"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/telemetry"
)

// Entry is one headline in the outline, with its subtree.
type Entry struct {
	// Node is the headline (or inline task) this entry wraps.
	Node *ast.Node

	Level       int
	Title       string
	TodoKeyword string
	TodoType    ast.TodoType
	Priority    rune
	Tags        []string

	// Pos locates the headline in the source.
	Pos ast.Position

	// Clocked is the closed clock time logged directly under this
	// headline, in minutes. ClockedTotal includes descendants.
	Clocked      int
	ClockedTotal int

	Parent   *Entry
	Children []*Entry
}

// Doc is the processed read-model. Build one with New and fill it with
// Process; accessors are read-only afterwards.
type Doc struct {
	root    *ast.Node
	source  string
	outline []*Entry
	tags    map[string][]*Entry
	stats   Stats
}

// New creates an empty Doc.
func New() *Doc {
	return &Doc{
		tags: make(map[string][]*Entry),
	}
}

// Process walks the parsed tree rooted at root and builds the outline,
// tag index and statistics. source is the text the tree was parsed
// from; it resolves node locations to line and column.
func (d *Doc) Process(ctx context.Context, root *ast.Node, source string) error {
	timer := telemetry.RootTimerFromContext(ctx).Child("doc.process")
	defer timer.End()

	d.root = root
	d.source = source
	d.outline = nil
	d.tags = make(map[string][]*Entry)
	d.stats = Stats{}

	outlineTimer := timer.Child("doc.outline")
	d.buildOutline(root, nil)
	outlineTimer.End()

	statsTimer := timer.Child("doc.stats")
	d.stats.ClockedMinutes = clockedMinutes(root)
	for _, entry := range d.outline {
		d.collectStats(entry)
		d.stats.ClockedMinutes += entry.ClockedTotal
	}
	d.stats.finish()
	statsTimer.End()

	return nil
}

// Root returns the tree the document was built from.
func (d *Doc) Root() *ast.Node {
	return d.root
}

// Source returns the text the tree was parsed from.
func (d *Doc) Source() string {
	return d.source
}

// Outline returns the top-level outline entries.
func (d *Doc) Outline() []*Entry {
	return d.outline
}

// Tags returns all tags in sorted order.
func (d *Doc) Tags() []string {
	tags := make([]string, 0, len(d.tags))
	for tag := range d.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// EntriesWithTag returns the outline entries carrying the given tag, in
// document order.
func (d *Doc) EntriesWithTag(tag string) []*Entry {
	return d.tags[tag]
}

// Stats returns the document statistics.
func (d *Doc) Stats() Stats {
	return d.stats
}

// Walk visits every outline entry depth-first in document order.
func (d *Doc) Walk(fn func(*Entry)) {
	var walk func(entries []*Entry)
	walk = func(entries []*Entry) {
		for _, e := range entries {
			fn(e)
			walk(e.Children)
		}
	}
	walk(d.outline)
}

// buildOutline collects headline entries under node, attaching them to
// parent. Headlines nest through their sections, inline tasks sit
// directly in element content.
func (d *Doc) buildOutline(node *ast.Node, parent *Entry) {
	for _, child := range node.Children {
		switch child.Kind {
		case ast.Headline, ast.InlineTask:
			entry := d.newEntry(child, parent)
			if parent != nil {
				parent.Children = append(parent.Children, entry)
			} else {
				d.outline = append(d.outline, entry)
			}
			d.buildOutline(child, entry)
		default:
			d.buildOutline(child, parent)
		}
	}
}

func (d *Doc) newEntry(node *ast.Node, parent *Entry) *Entry {
	data := node.Data.(*ast.HeadlineData)

	pos := ast.LocatePosition(d.source, node.Location.Start)

	entry := &Entry{
		Node:        node,
		Level:       data.Level,
		Title:       data.RawValue,
		TodoKeyword: data.TodoKeyword,
		TodoType:    data.TodoType,
		Priority:    data.Priority,
		Tags:        data.Tags,
		Pos:         pos,
		Parent:      parent,
	}

	entry.Clocked = clockedMinutes(node)

	for _, tag := range data.Tags {
		d.tags[tag] = append(d.tags[tag], entry)
	}

	return entry
}

// clockedMinutes sums the closed clocks that belong to node itself,
// not to any nested headline.
func clockedMinutes(node *ast.Node) int {
	total := 0
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		for _, child := range n.Children {
			switch child.Kind {
			case ast.Headline, ast.InlineTask:
				continue
			case ast.Clock:
				data := child.Data.(*ast.ClockData)
				if data.Status == ast.ClockClosed {
					total += durationMinutes(data.Duration)
				}
			}
			walk(child)
		}
	}
	walk(node)
	return total
}

// durationMinutes parses a clock duration such as "1:30" into minutes.
// Malformed durations count as zero.
func durationMinutes(duration string) int {
	hours, minutes := 0, 0
	seenColon := false
	for _, r := range duration {
		switch {
		case r == ':':
			if seenColon {
				return 0
			}
			seenColon = true
		case r >= '0' && r <= '9':
			if seenColon {
				minutes = minutes*10 + int(r-'0')
			} else {
				hours = hours*10 + int(r-'0')
			}
		default:
			return 0
		}
	}
	if !seenColon {
		return 0
	}
	return hours*60 + minutes
}

// collectStats folds entry and its subtree into the document statistics
// and fills ClockedTotal bottom-up.
func (d *Doc) collectStats(entry *Entry) {
	d.stats.Headlines++
	switch entry.TodoType {
	case ast.TodoTypeTodo:
		d.stats.addKeyword(entry.TodoKeyword, false)
	case ast.TodoTypeDone:
		d.stats.addKeyword(entry.TodoKeyword, true)
	}

	entry.ClockedTotal = entry.Clocked
	for _, child := range entry.Children {
		d.collectStats(child)
		entry.ClockedTotal += child.ClockedTotal
	}
}
