package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"textcheck/internal/analyzer"
	"textcheck/internal/input"
	"textcheck/internal/ui"
)

// progressEventEvery is how many lines pass between progress events.
const progressEventEvery = 1000

// analyzeFilesWithProgress drives the analysis under a live progress
// view. The analysis runs on its own goroutine and feeds scan events to
// the Bubble Tea model; the progress view owns the terminal until the
// last file finishes. Progress mode is strictly sequential.
func analyzeFilesWithProgress(ctx context.Context, a *analyzer.Analyzer, files []string, jobs int) error {
	if jobs > 1 {
		fmt.Fprintln(os.Stderr, "warning: --progress forces sequential analysis; ignoring --jobs")
	}

	events := make(chan ui.Event, 16)
	model := ui.NewProgressModel("analyzing", files, events)
	prog := tea.NewProgram(model, tea.WithOutput(os.Stderr))

	var runErr error
	go func() {
		defer close(events)
		for _, path := range files {
			if ctx.Err() != nil {
				return
			}
			if err := analyzeOneFile(ctx, a, path, events); err != nil {
				events <- ui.Event{File: path, Err: true}
				runErr = err
				return
			}
		}
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("progress view failed: %w", err)
	}
	return runErr
}

func analyzeOneFile(ctx context.Context, a *analyzer.Analyzer, path string, events chan<- ui.Event) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rd := input.NewReader(f, a.Cfg.SentenceIDs)
	var lines uint64
	for {
		if ctx.Err() != nil {
			break
		}
		ln, ok, err := rd.Next()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !ok {
			break
		}
		a.ProcessLine(ln)
		lines++
		if lines%progressEventEvery == 0 {
			events <- ui.Event{File: path, Lines: lines}
		}
	}
	events <- ui.Event{File: path, Lines: lines, Done: true}
	return nil
}
