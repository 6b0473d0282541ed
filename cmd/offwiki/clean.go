package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/offwiki"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	whitelist := offwiki.NewWhitelist()
	if c.Whitelist != "" {
		if whitelist, err = readWhitelist(c.Whitelist); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}

	page, err := deps.Cleaner.Clean(string(raw), whitelist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", offwiki.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		if page, err = deps.Converter.Convert(page); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", offwiki.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, page)
	return nil
}

// readWhitelist reads one title per line, ignoring blank lines.
func readWhitelist(path string) (*offwiki.Whitelist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	whitelist := offwiki.NewWhitelist()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if title := strings.TrimSpace(scanner.Text()); title != "" {
			whitelist.Add(title)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return whitelist, nil
}
