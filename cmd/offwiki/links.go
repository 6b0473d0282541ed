package main

import (
	"fmt"

	"github.com/fwojciec/offwiki"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.FetchArticle(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	links, err := deps.Links.ExtractLinks(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", offwiki.ErrorMessage(err))
		return err
	}

	for _, title := range links.Titles() {
		fmt.Fprintln(deps.Stdout, title)
	}
	return nil
}
