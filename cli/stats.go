package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/orgmode/doc"
	"github.com/robinvdvleuten/orgmode/output"
)

type StatsCmd struct {
	File           FileOrStdin `help:"Org input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	FollowIncludes bool        `help:"Splice #+INCLUDE keywords before parsing."`
}

func (cmd *StatsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := setupTelemetry(ctx.Stderr, globals, fmt.Sprintf("stats %s", cmd.File.Filename))
	defer reportTelemetry()

	d, err := loadDoc(runCtx, ctx, &cmd.File, cmd.FollowIncludes)
	if err != nil {
		reportTelemetry()
		return err
	}

	renderStats(ctx.Stdout, d)
	return nil
}

func renderStats(w io.Writer, d *doc.Doc) {
	styles := output.NewStyles(w)
	stats := d.Stats()

	writeStatLine(w, styles, "Headlines", fmt.Sprintf("%d", stats.Headlines))

	for _, kw := range stats.Keywords() {
		count := stats.Todo[kw] + stats.Done[kw]
		writeStatLine(w, styles, kw, fmt.Sprintf("%d", count))
	}

	if stats.TodoCount()+stats.DoneCount() > 0 {
		writeStatLine(w, styles, "Completion", stats.Completion.String()+"%")
	}

	if stats.ClockedMinutes > 0 {
		writeStatLine(w, styles, "Clocked", stats.ClockedHours().String()+"h")
	}

	if tags := d.Tags(); len(tags) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, tag := range tags {
			writeStatLine(w, styles, ":"+tag+":", fmt.Sprintf("%d", len(d.EntriesWithTag(tag))))
		}
	}
}

func writeStatLine(w io.Writer, styles *output.Styles, label, value string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.Dim(output.PadRight(label, 14)), value)
}
