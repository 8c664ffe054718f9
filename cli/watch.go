package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"

	"github.com/robinvdvleuten/orgmode/doc"
	"github.com/robinvdvleuten/orgmode/loader"
	"github.com/robinvdvleuten/orgmode/output"
)

type WatchCmd struct {
	File     string `help:"Org input filename." arg:"" type:"existingfile"`
	MaxDepth int    `help:"Deepest headline level to show (0 for all)." default:"0"`
	Tag      string `help:"Only show headlines carrying this tag."`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	absPath, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	includes, err := cmd.render(runCtx, ctx, absPath)
	if err != nil {
		return err
	}

	watched := addWatches(watcher, absPath, includes, nil)

	// Editors often write files in multiple steps, so coalesce bursts
	// of events before re-rendering.
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	reload := make(chan struct{}, 1)

	for {
		select {
		case <-runCtx.Done():
			_, _ = fmt.Fprintln(ctx.Stdout)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			includes, err := cmd.render(runCtx, ctx, absPath)
			if err != nil {
				continue
			}
			watched = addWatches(watcher, absPath, includes, watched)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", watchErr))
		}
	}
}

// render reloads the file and redraws the outline, returning the
// current include list so the watch set can follow it.
func (cmd *WatchCmd) render(runCtx context.Context, ctx *kong.Context, absPath string) ([]string, error) {
	ldr := loader.New(loader.WithFollowIncludes())
	result, err := ldr.Load(runCtx, absPath)
	if err != nil {
		// Keep watching through transient errors, a half-written save
		// will produce another event shortly.
		printError(ctx.Stderr, err.Error())
		return nil, err
	}

	d := doc.New()
	if err := d.Process(runCtx, result.Document, result.Source); err != nil {
		return nil, err
	}

	out := termenv.NewOutput(ctx.Stdout)
	out.ClearScreen()

	renderOutline(ctx.Stdout, d, cmd.MaxDepth, cmd.Tag)

	styles := output.NewStyles(ctx.Stdout)
	_, _ = fmt.Fprintf(ctx.Stdout, "\n%s\n",
		styles.Dim(fmt.Sprintf("watching %s, last update %s, press ctrl-c to stop",
			filepath.Base(absPath), time.Now().Format("15:04:05"))))

	return result.Includes, nil
}

// addWatches reconciles the watch set against the current include list.
func addWatches(watcher *fsnotify.Watcher, root string, includes []string, old map[string]bool) map[string]bool {
	current := map[string]bool{root: true}
	for _, f := range includes {
		current[f] = true
	}

	for file := range old {
		if !current[file] {
			_ = watcher.Remove(file)
		}
	}

	// Re-add everything, atomic saves replace the inode behind a watch.
	for file := range current {
		if err := watcher.Add(file); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to watch %s: %v\n", file, err)
		}
	}

	return current
}
