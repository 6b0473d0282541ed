package main

import (
	"fmt"

	"github.com/fwojciec/offwiki/crawl"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Harvester.Concurrency = c.Concurrency
	}

	fmt.Fprintln(deps.Stdout, "Collecting level 3 page titles and generating index...")

	indexed := 0
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressIndexed:
			if indexed == 0 {
				fmt.Fprintln(deps.Stdout, "Collecting level 4 page titles")
			}
			indexed++
			fmt.Fprintf(deps.Stdout, "  Added pages from %s (new total: %d)\n", event.Title, event.Total)
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Total pages without duplicates: %d\n", event.Total)
			if event.Stored > 0 {
				fmt.Fprintf(deps.Stdout, "About %d pages already saved\n", event.Stored)
			}
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%s)\n",
				event.Completed, event.Total, crawl.TruncateTitle(event.Title, 60), crawl.FormatBytes(event.Bytes))
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s already saved\n",
				event.Completed, event.Total, crawl.TruncateTitle(event.Title, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Title, event.Error)
		case crawl.ProgressFinished:
		}
	}

	result, err := deps.Harvester.Run(deps.Ctx, crawl.DefaultPlan(c.Level4), progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles (%s), %d already saved, %d failed\n",
		result.Saved, crawl.FormatBytes(result.Bytes), result.Skipped, result.Failed)
	return nil
}
