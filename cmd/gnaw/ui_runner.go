package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gnaw/internal/driver"
	"gnaw/internal/layout"
	"gnaw/internal/ui"
)

type decodeOutcome struct {
	results []driver.FileResult
	err     error
}

func runDecodeWithUI(cmd *cobra.Command, lay *layout.Layout, files []string, jobs int) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan decodeOutcome, 1)

	go func() {
		sink := driver.ChannelSink{Ch: events}
		results, err := driver.DecodeFiles(cmd.Context(), files, lay, jobs, sink)
		outcomeCh <- decodeOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("decoding "+lay.Name, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
