package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/cursor"
)

func TestHeadlineMetric(t *testing.T) {
	input := "Some text\n**** headline\nmore"
	m := headlineMetric{}

	// Every offset inside the headline line is a boundary.
	assert.False(t, m.IsBoundary(input, 0))
	assert.False(t, m.IsBoundary(input, 5))
	assert.True(t, m.IsBoundary(input, 10))
	assert.True(t, m.IsBoundary(input, 15))
	assert.True(t, m.IsBoundary(input, 23))
	assert.False(t, m.IsBoundary(input, 24))
	assert.False(t, m.IsBoundary(input, len(input)))

	// Next and Prev resolve to the line start.
	next, ok := m.Next(input, 0)
	assert.True(t, ok)
	assert.Equal(t, 10, next)
	_, ok = m.Next(input, 10)
	assert.False(t, ok)

	prev, ok := m.Prev(input, len(input))
	assert.True(t, ok)
	assert.Equal(t, 10, prev)
	_, ok = m.Prev(input, 10)
	assert.False(t, ok)

	c := cursor.New(input, 0)
	pos, ok := c.Next(m)
	assert.True(t, ok)
	assert.Equal(t, 10, pos)
	assert.Equal(t, 10, c.Pos())
}

func TestHeadlineFields(t *testing.T) {
	input := "* TODO [#A] Title :tag1:tag2:\nbody\n"
	root := ParseString(input)
	assert.Equal(t, 1, len(root.Children))

	hl := root.Children[0]
	assert.Equal(t, ast.Headline, hl.Kind)
	assert.Equal(t, cursor.NewInterval(0, len(input)), hl.Location)

	data := hl.Data.(*ast.HeadlineData)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, "TODO", data.TodoKeyword)
	assert.Equal(t, ast.TodoTypeTodo, data.TodoType)
	assert.Equal(t, 'A', data.Priority)
	assert.Equal(t, "Title", data.RawValue)
	assert.Equal(t, []string{"tag1", "tag2"}, data.Tags)
	assert.Equal(t, 1, len(data.Title))
	assert.Equal(t, ast.PlainText, data.Title[0].Kind)
	assert.Equal(t, "Title", data.Title[0].Data.(string))

	assert.Equal(t, 1, len(hl.Children))
	section := hl.Children[0]
	assert.Equal(t, ast.Section, section.Kind)
	assert.Equal(t, ast.Paragraph, section.Children[0].Kind)
}

func TestHeadlineDone(t *testing.T) {
	root := ParseString("** DONE Ship it\n")
	data := root.Children[0].Data.(*ast.HeadlineData)
	assert.Equal(t, 2, data.Level)
	assert.Equal(t, "DONE", data.TodoKeyword)
	assert.Equal(t, ast.TodoTypeDone, data.TodoType)
	assert.Equal(t, "Ship it", data.RawValue)
}

func TestHeadlineCommentedAndArchived(t *testing.T) {
	root := ParseString("* COMMENT Secret\n* Old :ARCHIVE:\n")
	first := root.Children[0].Data.(*ast.HeadlineData)
	assert.True(t, first.Commented)
	assert.Equal(t, "Secret", first.RawValue)

	second := root.Children[1].Data.(*ast.HeadlineData)
	assert.True(t, second.Archived)
	assert.Equal(t, []string{"ARCHIVE"}, second.Tags)
	assert.Equal(t, "Old", second.RawValue)
}

func TestHeadlineSubtreeExtent(t *testing.T) {
	input := "* One\npara\n** Sub\n* Two\n"
	root := ParseString(input)
	assert.Equal(t, 2, len(root.Children))

	one := root.Children[0]
	assert.Equal(t, cursor.NewInterval(0, 18), one.Location)
	assert.Equal(t, 2, len(one.Children))
	assert.Equal(t, ast.Section, one.Children[0].Kind)
	assert.Equal(t, ast.Headline, one.Children[1].Kind)
	assert.Equal(t, 2, one.Children[1].Data.(*ast.HeadlineData).Level)

	two := root.Children[1]
	assert.Equal(t, cursor.NewInterval(18, 24), two.Location)
	assert.Zero(t, two.ContentLocation)
}

func TestHeadlinePlanningAndProperties(t *testing.T) {
	input := "* TODO Task\n" +
		"SCHEDULED: <2023-01-15 Sun> DEADLINE: <2023-02-01 Wed>\n" +
		":PROPERTIES:\n" +
		":ID: abc-123\n" +
		":Custom_ID: xyz\n" +
		":END:\n" +
		"\n" +
		"Body text.\n"
	root := ParseString(input)
	hl := root.Children[0]
	data := hl.Data.(*ast.HeadlineData)

	assert.NotZero(t, data.Scheduled)
	assert.Equal(t, 2023, data.Scheduled.YearStart)
	assert.Equal(t, 1, data.Scheduled.MonthStart)
	assert.Equal(t, 15, data.Scheduled.DayStart)
	assert.NotZero(t, data.Deadline)
	assert.Equal(t, 2, data.Deadline.MonthStart)
	assert.Zero(t, data.Closed)
	assert.Equal(t, map[string]string{"ID": "abc-123", "CUSTOM_ID": "xyz"}, data.Properties)

	section := hl.Children[0]
	assert.Equal(t, ast.Planning, section.Children[0].Kind)
	drawer := section.Children[1]
	assert.Equal(t, ast.PropertyDrawer, drawer.Kind)
	assert.Equal(t, 2, len(drawer.Children))
	assert.Equal(t, ast.NodePropertyData{Key: "ID", Value: "abc-123"}, drawer.Children[0].Data.(ast.NodePropertyData))
	assert.Equal(t, 1, drawer.PostBlank)
	assert.Equal(t, ast.Paragraph, section.Children[2].Kind)
}

func TestInlineTask(t *testing.T) {
	input := "Intro.\n" +
		"*************** Remember this\n" +
		"some content\n" +
		"*************** END\n" +
		"After.\n"
	root := ParseString(input)
	assert.Equal(t, 3, len(root.Children))
	assert.Equal(t, ast.Section, root.Children[0].Kind)

	task := root.Children[1]
	assert.Equal(t, ast.InlineTask, task.Kind)
	assert.Equal(t, cursor.NewInterval(7, 72), task.Location)
	data := task.Data.(*ast.HeadlineData)
	assert.Equal(t, 15, data.Level)
	assert.Equal(t, "Remember this", data.RawValue)
	assert.NotZero(t, task.ContentLocation)
	assert.Equal(t, cursor.NewInterval(38, 51), *task.ContentLocation)
	assert.Equal(t, ast.Paragraph, task.Children[0].Kind)

	assert.Equal(t, ast.Paragraph, root.Children[2].Kind)
}

func TestHeadlinePreAndPostBlank(t *testing.T) {
	input := "* One\n\n\ntext\n\n* Two\n"
	root := ParseString(input)
	one := root.Children[0]
	data := one.Data.(*ast.HeadlineData)
	assert.Equal(t, 2, data.PreBlank)
	assert.Equal(t, 1, one.PostBlank)
	assert.Equal(t, cursor.NewInterval(8, 13), *one.ContentLocation)
}
