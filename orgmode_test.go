package orgmode

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/orgmode/ast"
)

func TestParse(t *testing.T) {
	root := Parse("* TODO Write docs :work:\nSome text.\n")

	assert.Equal(t, ast.OrgData, root.Kind)
	assert.Equal(t, 1, len(root.Children))

	headline := root.Children[0]
	assert.Equal(t, ast.Headline, headline.Kind)

	data := headline.Data.(*ast.HeadlineData)
	assert.Equal(t, "Write docs", data.RawValue)
	assert.Equal(t, "TODO", data.TodoKeyword)
	assert.Equal(t, []string{"work"}, data.Tags)
}

func TestParseEmpty(t *testing.T) {
	root := Parse("")

	assert.Equal(t, ast.OrgData, root.Kind)
	assert.Equal(t, 0, len(root.Children))
}
