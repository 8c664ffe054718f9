package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/doc"
	"github.com/robinvdvleuten/orgmode/loader"
	"github.com/robinvdvleuten/orgmode/output"
)

var (
	starStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	todoStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FFAF00", Dark: "#FFAF00"})
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D75FD7", Dark: "#D75FD7"})
)

type OutlineCmd struct {
	File           FileOrStdin `help:"Org input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	MaxDepth       int         `help:"Deepest headline level to show (0 for all)." default:"0"`
	Tag            string      `help:"Only show headlines carrying this tag."`
	FollowIncludes bool        `help:"Splice #+INCLUDE keywords before parsing."`
}

func (cmd *OutlineCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := setupTelemetry(ctx.Stderr, globals, fmt.Sprintf("outline %s", cmd.File.Filename))
	defer reportTelemetry()

	d, err := loadDoc(runCtx, ctx, &cmd.File, cmd.FollowIncludes)
	if err != nil {
		reportTelemetry()
		return err
	}

	renderOutline(ctx.Stdout, d, cmd.MaxDepth, cmd.Tag)
	return nil
}

// loadDoc loads an Org file and builds its read-model, rendering load
// errors to stderr itself.
func loadDoc(runCtx context.Context, ctx *kong.Context, file *FileOrStdin, followIncludes bool) (*doc.Doc, error) {
	sourceContent, err := file.GetSourceContent()
	if err != nil {
		return nil, fmt.Errorf("failed to read file for error context: %w", err)
	}

	var opts []loader.Option
	if followIncludes {
		opts = append(opts, loader.WithFollowIncludes())
	}

	ldr := loader.New(opts...)
	result, err := file.LoadResult(runCtx, ldr)
	if err != nil {
		renderer := NewErrorRenderer(sourceContent)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "load error")

		return nil, NewCommandError(1)
	}

	d := doc.New()
	if err := d.Process(runCtx, result.Document, result.Source); err != nil {
		return nil, err
	}
	return d, nil
}

func renderOutline(w io.Writer, d *doc.Doc, maxDepth int, tag string) {
	width := output.TerminalWidth(100)

	d.Walk(func(e *doc.Entry) {
		if maxDepth > 0 && e.Level > maxDepth {
			return
		}
		if tag != "" && !hasTag(e, tag) {
			return
		}

		line := renderEntry(e)

		// Tags sit right-aligned, the way Org places them in a buffer.
		if len(e.Tags) > 0 {
			tags := ":" + strings.Join(e.Tags, ":") + ":"
			pad := width - output.StringWidth(plainEntry(e)) - output.StringWidth(tags)
			if pad < 1 {
				pad = 1
			}
			line += strings.Repeat(" ", pad) + tagStyle.Render(tags)
		}

		_, _ = fmt.Fprintln(w, line)
	})
}

func renderEntry(e *doc.Entry) string {
	parts := []string{starStyle.Render(strings.Repeat("*", e.Level))}

	if e.TodoKeyword != "" {
		if e.TodoType == ast.TodoTypeDone {
			parts = append(parts, doneStyle.Render(e.TodoKeyword))
		} else {
			parts = append(parts, todoStyle.Render(e.TodoKeyword))
		}
	}

	if e.Priority != 0 {
		parts = append(parts, priorityStyle.Render(fmt.Sprintf("[#%c]", e.Priority)))
	}

	parts = append(parts, e.Title)
	return strings.Join(parts, " ")
}

// plainEntry rebuilds the unstyled entry text for width measurement.
func plainEntry(e *doc.Entry) string {
	parts := []string{strings.Repeat("*", e.Level)}
	if e.TodoKeyword != "" {
		parts = append(parts, e.TodoKeyword)
	}
	if e.Priority != 0 {
		parts = append(parts, fmt.Sprintf("[#%c]", e.Priority))
	}
	parts = append(parts, e.Title)
	return strings.Join(parts, " ")
}

func hasTag(e *doc.Entry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
