package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ezc/internal/buildpipeline"
	"ezc/internal/driver"
	"ezc/internal/ui"
)

type buildOutcome struct {
	result *driver.BuildResult
	err    error
}

// runBuildWithUI runs the build in the background and renders its progress
// events until the build closes the channel.
func runBuildWithUI(ctx context.Context, title, baseDir string, files []string, opts driver.BuildOptions) (*driver.BuildResult, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		opts.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := driver.BuildFiles(ctx, baseDir, files, opts)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the build from blocking on a channel nobody reads
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
