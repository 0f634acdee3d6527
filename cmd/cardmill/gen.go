package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/cardmill"
	"github.com/fwojciec/cardmill/pipeline"
	"github.com/schollz/progressbar/v3"
)

// Run executes the gen command.
func (c *GenCmd) Run(deps *Dependencies) error {
	opts := pipeline.Options{
		Steering: c.Steering,
		Extended: c.Extended,
		Publish:  !c.NoPublish,
		DeckID:   deps.Config.DeckID,
	}

	var bar *progressbar.ProgressBar
	if len(c.URLs) > 1 {
		bar = progressbar.NewOptions(len(c.URLs),
			progressbar.OptionSetWriter(deps.Stderr),
			progressbar.OptionSetDescription("processing"),
			progressbar.OptionShowCount(),
		)
	}

	var results []*pipeline.Result
	for _, url := range c.URLs {
		results = append(results, deps.Runner.Run(deps.Ctx, url, opts))
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(deps.Stderr)
	}

	failed := 0
	for _, result := range results {
		c.printResult(deps, result)
		if result.Err != nil {
			failed++
		}
	}

	if failed == len(results) && failed > 0 {
		return results[0].Err
	}
	if failed > 0 {
		return cardmill.Errorf(cardmill.EINTERNAL, "%d of %d URLs failed", failed, len(results))
	}
	return nil
}

func (c *GenCmd) printResult(deps *Dependencies, result *pipeline.Result) {
	if result.Err != nil {
		color.New(color.FgRed).Fprintf(deps.Stdout, "failed  %s\n", result.URL)
		fmt.Fprintf(deps.Stdout, "        %s\n", cardmill.ErrorMessage(result.Err))
		return
	}

	color.New(color.FgGreen).Fprintf(deps.Stdout, "done    %s\n", result.Document.Metadata.Title)
	fmt.Fprintf(deps.Stdout, "        extractor=%s blocks=%d images=%d cards=%d\n",
		result.Extractor, len(result.Document.Blocks), len(result.Document.Images), len(result.Cards))
	if result.Published > 0 || result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "        published=%d failed=%d\n", result.Published, result.Failed)
	}
}
