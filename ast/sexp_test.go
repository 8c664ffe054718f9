package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/orgmode/cursor"
)

func sampleTree() *Node {
	root := NewRoot()
	root.Location = cursor.NewInterval(0, 22)

	headline := &Node{
		Kind: Headline,
		Data: &HeadlineData{
			Level:       1,
			RawValue:    "Errands",
			TodoKeyword: "TODO",
			TodoType:    TodoTypeTodo,
			Priority:    'A',
			Tags:        []string{"home", "urgent"},
		},
		Location:        cursor.NewInterval(0, 22),
		ContentLocation: &cursor.Interval{Start: 12, End: 22},
	}
	root.AppendChild(headline)

	section := &Node{
		Kind:            Section,
		Location:        cursor.NewInterval(12, 22),
		ContentLocation: &cursor.Interval{Start: 12, End: 22},
	}
	headline.AppendChild(section)

	para := &Node{
		Kind:            Paragraph,
		Location:        cursor.NewInterval(12, 22),
		ContentLocation: &cursor.Interval{Start: 12, End: 22},
	}
	section.AppendChild(para)

	text := &Node{
		Kind:     PlainText,
		Data:     "buy milk\n",
		Location: cursor.NewInterval(12, 21),
	}
	para.AppendChild(text)

	return root
}

func TestSexp(t *testing.T) {
	out := sampleTree().Sexp()

	assert.True(t, strings.HasPrefix(out, "(org-data (:begin 0 :end 22 :post-blank 0)"))
	assert.Contains(t, out, "(headline (:begin 0 :end 22 :contents-begin 12 :contents-end 22 :post-blank 0 :level 1 :raw-value \"Errands\" :todo-keyword \"TODO\" :priority 'A' :tags (\"home\" \"urgent\"))")
	assert.Contains(t, out, "(section ")
	assert.Contains(t, out, "(paragraph ")
	assert.Contains(t, out, `"buy milk\n"`)

	// Children indent one level per depth
	assert.Contains(t, out, "\n  (headline")
	assert.Contains(t, out, "\n    (section")
}

func TestSexpKeyword(t *testing.T) {
	n := &Node{
		Kind:     Keyword,
		Data:     KeywordData{Key: "TITLE", Value: "Notes"},
		Location: cursor.NewInterval(0, 15),
	}

	out := n.Sexp()
	assert.Contains(t, out, `:key "TITLE"`)
	assert.Contains(t, out, `:value "Notes"`)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleTree())
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "org-data", decoded["kind"].(string))

	children := decoded["children"].([]interface{})
	assert.Equal(t, 1, len(children))

	headline := children[0].(map[string]interface{})
	assert.Equal(t, "headline", headline["kind"].(string))

	// The parent back-reference stays out of the encoding
	_, hasParent := headline["parent"]
	assert.False(t, hasParent)

	loc := headline["location"].([]interface{})
	assert.Equal(t, float64(0), loc[0].(float64))
	assert.Equal(t, float64(22), loc[1].(float64))

	hdata := headline["data"].(map[string]interface{})
	assert.Equal(t, "Errands", hdata["RawValue"].(string))
}

func TestLocatePosition(t *testing.T) {
	source := "first line\nsecond line\nthird\n"

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{11, 2, 1},
		{18, 2, 8},
		{23, 3, 1},
	}

	for _, tt := range tests {
		pos := LocatePosition(source, tt.offset)
		assert.Equal(t, tt.line, pos.Line)
		assert.Equal(t, tt.column, pos.Column)
		assert.Equal(t, tt.offset, pos.Offset)
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Filename: "notes.org", Line: 4, Column: 7}
	assert.Equal(t, "notes.org:4:7", pos.String())

	anon := Position{Line: 2, Column: 1}
	assert.Equal(t, "2:1", anon.String())
}
