// Package output provides styling helpers for terminal output.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Headline returns a styled headline title (blue + bold).
func (s *Styles) Headline(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("4")).
		Bold().
		String()
}

// Tag returns a styled tag (magenta).
func (s *Styles) Tag(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Todo returns a styled unfinished TODO keyword (red + bold).
func (s *Styles) Todo(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Done returns a styled finished TODO keyword (green).
func (s *Styles) Done(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Priority returns a styled priority cookie (yellow).
func (s *Styles) Priority(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}

// PadRight pads text with spaces to the given display width.
// Width is measured in terminal cells, so wide runes count as two.
func PadRight(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// StringWidth returns the display width of text in terminal cells.
func StringWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TerminalWidth returns the width of the terminal attached to stdout,
// or the fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
