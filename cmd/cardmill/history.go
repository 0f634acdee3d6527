package main

import (
	"fmt"

	"github.com/fwojciec/cardmill"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardmill.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		if run.Error != "" {
			status = "error"
		}
		title := run.Title
		if title == "" {
			title = run.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %-5s  cards=%-3d published=%-3d %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"), status, run.Cards, run.Published, title)
		if run.Error != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", run.Error)
		}
	}
	return nil
}
