package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

func TestPlainListNesting(t *testing.T) {
	input := "- one\n  - sub\n- two\n\nafter\n"
	section := firstSection(t, input)
	assert.Equal(t, []ast.Kind{ast.PlainList, ast.Paragraph}, childKinds(section))

	list := section.Children[0]
	assert.Equal(t, ast.ListUnordered, list.Data.(ast.PlainListData).Kind)
	assert.Equal(t, cursor.NewInterval(0, 21), list.Location)
	assert.Equal(t, []ast.Kind{ast.Item, ast.Item}, childKinds(list))

	one := list.Children[0]
	assert.Equal(t, cursor.NewInterval(0, 14), one.Location)
	assert.Equal(t, "-", one.Data.(*ast.ItemData).Bullet)
	assert.Equal(t, []ast.Kind{ast.Paragraph, ast.PlainList}, childKinds(one))

	sub := one.Children[1]
	assert.Equal(t, cursor.NewInterval(6, 14), sub.Location)
	assert.Equal(t, []ast.Kind{ast.Item}, childKinds(sub))

	two := list.Children[1]
	assert.Equal(t, cursor.NewInterval(14, 21), two.Location)
	assert.Equal(t, 1, two.PostBlank)
}

func TestOrderedListItemDetails(t *testing.T) {
	input := "1. [@3] [X] first\n2. [ ] second :: desc\n"
	section := firstSection(t, input)
	list := section.Children[0]
	assert.Equal(t, ast.ListOrdered, list.Data.(ast.PlainListData).Kind)

	first := list.Children[0].Data.(*ast.ItemData)
	assert.Equal(t, "1.", first.Bullet)
	assert.Equal(t, 3, first.Counter)
	assert.Equal(t, ast.CheckboxOn, first.Checkbox)
	assert.Equal(t, "", first.RawTag)

	second := list.Children[1].Data.(*ast.ItemData)
	assert.Equal(t, ast.CheckboxOff, second.Checkbox)
	assert.Equal(t, "second", second.RawTag)
	assert.Equal(t, 1, len(second.Tag))
	assert.Equal(t, "second", second.Tag[0].Data.(string))
}

func TestDescriptiveList(t *testing.T) {
	section := firstSection(t, "- term :: definition\n- other :: more\n")
	list := section.Children[0]
	assert.Equal(t, ast.ListDescriptive, list.Data.(ast.PlainListData).Kind)
	assert.Equal(t, "term", list.Children[0].Data.(*ast.ItemData).RawTag)
}

func TestCheckboxTrans(t *testing.T) {
	section := firstSection(t, "- [-] partial\n")
	item := section.Children[0].Children[0]
	assert.Equal(t, ast.CheckboxTrans, item.Data.(*ast.ItemData).Checkbox)
}

func TestListEndsAtDoubleBlank(t *testing.T) {
	input := "- one\n\n\n- not in the list\n"
	section := firstSection(t, input)
	assert.Equal(t, []ast.Kind{ast.PlainList, ast.PlainList}, childKinds(section))
	assert.Equal(t, 1, len(section.Children[0].Children))
}

func TestListEndsAtHeadline(t *testing.T) {
	input := "- one\n- two\n* Head\n"
	root := ParseString(input)
	assert.Equal(t, 2, len(root.Children))
	list := root.Children[0].Children[0]
	assert.Equal(t, ast.PlainList, list.Kind)
	assert.Equal(t, 12, list.Location.End)
}

type alphaEnv struct{ DefaultEnvironment }

func (alphaEnv) ListAllowAlphabetical() bool { return true }

func TestAlphabeticalCounters(t *testing.T) {
	input := "a) alpha\nb) beta\n"

	root := New(input, GranularityObject, nil).Parse()
	assert.Equal(t, ast.Paragraph, root.Children[0].Children[0].Kind)

	root = New(input, GranularityObject, alphaEnv{}).Parse()
	list := root.Children[0].Children[0]
	assert.Equal(t, ast.PlainList, list.Kind)
	assert.Equal(t, ast.ListOrdered, list.Data.(ast.PlainListData).Kind)
	assert.Equal(t, 2, len(list.Children))
}

type periodEnv struct{ DefaultEnvironment }

func (periodEnv) OrderedListTerminator() Terminator { return TerminatorPeriod }

func TestOrderedListTerminator(t *testing.T) {
	input := "1) paren\n"
	root := New(input, GranularityObject, periodEnv{}).Parse()
	assert.Equal(t, ast.Paragraph, root.Children[0].Children[0].Kind)

	root = New("1. period\n", GranularityObject, periodEnv{}).Parse()
	assert.Equal(t, ast.PlainList, root.Children[0].Children[0].Kind)
}

func TestItemPreBlank(t *testing.T) {
	input := "-\n\n  late contents\n"
	section := firstSection(t, input)
	item := section.Children[0].Children[0]
	data := item.Data.(*ast.ItemData)
	assert.Equal(t, 1, data.PreBlank)
	assert.NotZero(t, item.ContentLocation)
	assert.Equal(t, 3, item.ContentLocation.Start)
}
