package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robinvdvleuten/orgmode/output"
	"github.com/robinvdvleuten/orgmode/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Parse   ParseCmd   `cmd:"" help:"Parse an Org file and dump its tree."`
	Outline OutlineCmd `cmd:"" help:"Show the headline outline of an Org file."`
	Stats   StatsCmd   `cmd:"" help:"Show TODO and clock statistics for an Org file."`
	Watch   WatchCmd   `cmd:"" help:"Re-render the outline whenever the file changes."`
	Web     WebCmd     `cmd:"" help:"Start a web server exposing the parsed document."`
}

// setupTelemetry wires a timing collector into the returned context when
// the telemetry flag is set. The returned report function prints the
// collected timings once; commands defer it and may also call it before
// an early exit.
func setupTelemetry(stderr io.Writer, globals *Globals, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)

	timer := collector.Start(name)
	runCtx = telemetry.WithRootTimer(runCtx, timer)

	var once sync.Once
	report := func() {
		once.Do(func() {
			timer.End()
			_, _ = fmt.Fprintln(stderr)
			collector.Report(stderr, output.NewStyles(stderr))
		})
	}

	return runCtx, report
}
