package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/orgmode/ast"
	"github.com/robinvdvleuten/orgmode/loader"
	"github.com/robinvdvleuten/orgmode/parser"
)

type ParseCmd struct {
	File           FileOrStdin `help:"Org input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Granularity    string      `help:"How deep to parse." enum:"headline,greater-element,element,object" default:"object"`
	Format         string      `help:"Output format." enum:"pretty,sexp,json" default:"pretty"`
	FollowIncludes bool        `help:"Splice #+INCLUDE keywords before parsing."`
	Output         string      `help:"Write the dump to a file instead of stdout." short:"o" type:"path"`
	Force          bool        `help:"Overwrite an existing output file without asking." short:"f"`
}

// granularityFromName maps the CLI enum to the parser's granularity.
func granularityFromName(name string) parser.Granularity {
	switch name {
	case "headline":
		return parser.GranularityHeadline
	case "greater-element":
		return parser.GranularityGreaterElement
	case "element":
		return parser.GranularityElement
	default:
		return parser.GranularityObject
	}
}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := setupTelemetry(ctx.Stderr, globals, fmt.Sprintf("parse %s", cmd.File.Filename))
	defer reportTelemetry()

	sourceContent, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file for error context: %w", err)
	}

	opts := []loader.Option{loader.WithGranularity(granularityFromName(cmd.Granularity))}
	if cmd.FollowIncludes {
		opts = append(opts, loader.WithFollowIncludes())
	}

	ldr := loader.New(opts...)
	result, err := cmd.File.LoadResult(runCtx, ldr)
	if err != nil {
		renderer := NewErrorRenderer(sourceContent)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "load error")

		reportTelemetry()
		return NewCommandError(1)
	}

	out, closeOut, err := cmd.openOutput(ctx)
	if err != nil {
		return err
	}
	if out == nil {
		// Overwrite declined.
		printInfof(ctx.Stdout, "Skipped, %s left untouched", pathStyle.Render(cmd.Output))
		return nil
	}
	defer closeOut()

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Document); err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
	case "sexp":
		_, _ = fmt.Fprintln(out, result.Document.Sexp())
	default:
		writeTree(out, result.Document, 0)
	}

	return nil
}

// openOutput decides where the dump goes. A nil writer with a nil error
// means the user declined to overwrite an existing output file.
func (cmd *ParseCmd) openOutput(ctx *kong.Context) (io.Writer, func(), error) {
	if cmd.Output == "" {
		return ctx.Stdout, func() {}, nil
	}

	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q exists. Overwrite it?", cmd.Output))
		if err != nil {
			return nil, nil, err
		}
		if !confirmed {
			return nil, nil, nil
		}
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// writeTree prints one line per node: kind, location and a compact
// payload rendering.
func writeTree(w io.Writer, n *ast.Node, depth int) {
	_, _ = fmt.Fprintf(w, "%s%s [%d, %d)", strings.Repeat("  ", depth), n.Kind, n.Location.Start, n.Location.End)
	if summary := payloadSummary(n); summary != "" {
		_, _ = fmt.Fprintf(w, " %s", summary)
	}
	_, _ = fmt.Fprintln(w)

	for _, child := range n.Children {
		writeTree(w, child, depth+1)
	}
}

// payloadSummary renders a node's payload on one line. Fields holding
// nested nodes are cleared first; those nodes show up as children or in
// the sexp dump instead.
func payloadSummary(n *ast.Node) string {
	switch data := n.Data.(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(data)
	case *ast.HeadlineData:
		d := *data
		d.Title = nil
		return repr.String(&d)
	case *ast.ItemData:
		d := *data
		d.Tag = nil
		return repr.String(&d)
	default:
		return repr.String(data)
	}
}
