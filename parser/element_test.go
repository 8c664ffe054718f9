package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/orgmode/ast"
)

// firstSection returns the first-section node of a parsed document.
func firstSection(t *testing.T, input string) *ast.Node {
	t.Helper()
	root := ParseString(input)
	assert.NotEqual(t, 0, len(root.Children))
	section := root.Children[0]
	assert.Equal(t, ast.Section, section.Kind)
	return section
}

func childKinds(n *ast.Node) []ast.Kind {
	kinds := make([]ast.Kind, len(n.Children))
	for i, c := range n.Children {
		kinds[i] = c.Kind
	}
	return kinds
}

func TestSrcBlock(t *testing.T) {
	input := "#+NAME: example\n" +
		"#+BEGIN_SRC go -n 20 -r :results output\n" +
		"fmt.Println(\"hi\")\n" +
		"#+END_SRC\n" +
		"\n" +
		"Next.\n"
	section := firstSection(t, input)
	assert.Equal(t, []ast.Kind{ast.SrcBlock, ast.Paragraph}, childKinds(section))

	src := section.Children[0]
	assert.Equal(t, 1, src.PostBlank)
	assert.Equal(t, "example", src.Affiliated.Name)

	data := src.Data.(ast.SrcBlockData)
	assert.Equal(t, "go", data.Language)
	assert.Equal(t, "fmt.Println(\"hi\")\n", data.Value)
	assert.Equal(t, "-n 20 -r", data.Switches)
	assert.Equal(t, ":results output", data.Parameters)
	assert.Equal(t, ast.LineNumberingNew, data.NumberLines)
	assert.False(t, data.RetainLabels)
	assert.False(t, data.UseLabels)
}

func TestExampleBlockDefaults(t *testing.T) {
	section := firstSection(t, "#+BEGIN_EXAMPLE\nraw text\n#+END_EXAMPLE\n")
	data := section.Children[0].Data.(ast.ExampleBlockData)
	assert.Equal(t, "raw text\n", data.Value)
	assert.Equal(t, ast.LineNumberingOff, data.NumberLines)
	assert.True(t, data.RetainLabels)
	assert.True(t, data.UseLabels)
}

func TestGreaterBlocks(t *testing.T) {
	section := firstSection(t, "#+BEGIN_QUOTE\nWise words.\n#+END_QUOTE\n#+begin_warning\ncareful\n#+end_warning\n")
	assert.Equal(t, []ast.Kind{ast.QuoteBlock, ast.SpecialBlock}, childKinds(section))

	quote := section.Children[0]
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(quote))

	special := section.Children[1]
	data := special.Data.(ast.SpecialBlockData)
	assert.Equal(t, "warning", data.Type)
	assert.Equal(t, "careful\n", data.RawValue)
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(special))
}

func TestUnterminatedBlockIsParagraph(t *testing.T) {
	section := firstSection(t, "#+BEGIN_SRC go\nno end here\n")
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(section))
	assert.Equal(t, 0, section.Children[0].Location.Start)
}

func TestVerseBlockHoldsObjects(t *testing.T) {
	section := firstSection(t, "#+BEGIN_VERSE\nroses are *red*\n#+END_VERSE\n")
	verse := section.Children[0]
	assert.Equal(t, ast.VerseBlock, verse.Kind)
	assert.Equal(t, []ast.Kind{ast.PlainText, ast.Bold, ast.PlainText}, childKinds(verse))
}

func TestDynamicBlock(t *testing.T) {
	section := firstSection(t, "#+BEGIN: clocktable :maxlevel 2\nsome rows\n#+END:\n")
	block := section.Children[0]
	assert.Equal(t, ast.DynamicBlock, block.Kind)
	data := block.Data.(ast.DynamicBlockData)
	assert.Equal(t, "clocktable", data.Name)
	assert.Equal(t, ":maxlevel 2", data.Arguments)
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(block))
}

func TestBabelCall(t *testing.T) {
	section := firstSection(t, "#+CALL: square[:cache yes](x=4)\n")
	call := section.Children[0]
	assert.Equal(t, ast.BabelCall, call.Kind)
	data := call.Data.(ast.BabelCallData)
	assert.Equal(t, "square", data.Call)
	assert.Equal(t, ":cache yes", data.InsideHeader)
	assert.Equal(t, "x=4", data.Arguments)
	assert.Equal(t, "square[:cache yes](x=4)", data.Value)
}

func TestKeyword(t *testing.T) {
	section := firstSection(t, "#+TITLE: My Document\n")
	kw := section.Children[0]
	assert.Equal(t, ast.Keyword, kw.Kind)
	assert.Equal(t, ast.KeywordData{Key: "TITLE", Value: "My Document"}, kw.Data.(ast.KeywordData))
}

func TestDrawer(t *testing.T) {
	section := firstSection(t, ":LOGBOOK:\n- note taken\n:END:\n")
	drawer := section.Children[0]
	assert.Equal(t, ast.Drawer, drawer.Kind)
	assert.Equal(t, ast.DrawerData{Name: "LOGBOOK"}, drawer.Data.(ast.DrawerData))
	assert.Equal(t, []ast.Kind{ast.PlainList}, childKinds(drawer))
}

func TestUnterminatedDrawerIsParagraph(t *testing.T) {
	section := firstSection(t, ":DRAWER:\nstill text\n")
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(section))
}

func TestComment(t *testing.T) {
	section := firstSection(t, "# one\n#\n# two\nAfter.\n")
	assert.Equal(t, []ast.Kind{ast.Comment, ast.Paragraph}, childKinds(section))
	assert.Equal(t, ast.CommentData{Value: "one\n\ntwo"}, section.Children[0].Data.(ast.CommentData))
}

func TestFixedWidth(t *testing.T) {
	section := firstSection(t, ": fixed\n: lines\n")
	fw := section.Children[0]
	assert.Equal(t, ast.FixedWidth, fw.Kind)
	assert.Equal(t, ast.FixedWidthData{Value: "fixed\nlines"}, fw.Data.(ast.FixedWidthData))
}

func TestHorizontalRule(t *testing.T) {
	section := firstSection(t, "-----\n")
	assert.Equal(t, []ast.Kind{ast.HorizontalRule}, childKinds(section))
}

func TestDiarySexp(t *testing.T) {
	section := firstSection(t, "%%(org-calendar-holiday)\n")
	sexp := section.Children[0]
	assert.Equal(t, ast.DiarySexp, sexp.Kind)
	assert.Equal(t, ast.DiarySexpData{Value: "%%(org-calendar-holiday)"}, sexp.Data.(ast.DiarySexpData))
}

func TestLatexEnvironment(t *testing.T) {
	section := firstSection(t, "\\begin{align}\nx = 1\n\\end{align}\n")
	env := section.Children[0]
	assert.Equal(t, ast.LatexEnvironment, env.Kind)
	assert.Equal(t, ast.LatexEnvironmentData{Value: "\\begin{align}\nx = 1\n\\end{align}"}, env.Data.(ast.LatexEnvironmentData))
}

func TestUnterminatedLatexEnvironmentIsParagraph(t *testing.T) {
	section := firstSection(t, "\\begin{align}\nnever closed\n")
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(section))
}

func TestClock(t *testing.T) {
	section := firstSection(t, "CLOCK: [2023-01-15 Sun 10:00-11:30] =>  1:30\nCLOCK: [2023-01-16 Mon 09:00]\n")
	assert.Equal(t, []ast.Kind{ast.Clock, ast.Clock}, childKinds(section))

	closed := section.Children[0].Data.(*ast.ClockData)
	assert.Equal(t, ast.ClockClosed, closed.Status)
	assert.Equal(t, "1:30", closed.Duration)
	assert.NotZero(t, closed.Value)
	assert.Equal(t, ast.TimestampInactiveRange, closed.Value.Type)

	running := section.Children[1].Data.(*ast.ClockData)
	assert.Equal(t, ast.ClockRunning, running.Status)
	assert.Equal(t, "", running.Duration)
}

func TestFootnoteDefinition(t *testing.T) {
	input := "[fn:one] First definition.\n\n[fn:two] Second.\n"
	section := firstSection(t, input)
	assert.Equal(t, []ast.Kind{ast.FootnoteDefinition, ast.FootnoteDefinition}, childKinds(section))

	one := section.Children[0]
	assert.Equal(t, 28, one.Location.End)
	assert.Equal(t, 1, one.PostBlank)
	data := one.Data.(ast.FootnoteDefinitionData)
	assert.Equal(t, "one", data.Label)
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(one))

	two := section.Children[1].Data.(ast.FootnoteDefinitionData)
	assert.Equal(t, "two", two.Label)
}

func TestParagraphSeparation(t *testing.T) {
	section := firstSection(t, "First line\nsecond line\n\nNext para.\n")
	assert.Equal(t, []ast.Kind{ast.Paragraph, ast.Paragraph}, childKinds(section))
	first := section.Children[0]
	assert.Equal(t, 1, first.PostBlank)
	assert.Equal(t, "First line\nsecond line\n", first.ContentText("First line\nsecond line\n\nNext para.\n"))
}

func TestParagraphStopsAtTerminatedBlock(t *testing.T) {
	input := "text before\n#+BEGIN_SRC go\nx\n#+END_SRC\n"
	section := firstSection(t, input)
	assert.Equal(t, []ast.Kind{ast.Paragraph, ast.SrcBlock}, childKinds(section))
	assert.Equal(t, 12, section.Children[0].Location.End)
}

func TestParagraphSwallowsUnterminatedBlock(t *testing.T) {
	section := firstSection(t, "text before\n#+BEGIN_SRC go\nnever closed\n")
	assert.Equal(t, []ast.Kind{ast.Paragraph}, childKinds(section))
}
