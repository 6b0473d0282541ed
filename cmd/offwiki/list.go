package main

import (
	"fmt"

	"github.com/fwojciec/offwiki"
	"github.com/fwojciec/offwiki/crawl"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Manifest.FindArticles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", offwiki.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'offwiki harvest' to fetch some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			a.HarvestedAt.Format("2006-01-02"), crawl.FormatBytes(a.Size), a.Title, a.Path)
	}
	return nil
}
