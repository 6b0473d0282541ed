package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/offwiki"
	"github.com/fwojciec/offwiki/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Manifest  offwiki.ManifestService
	Fetcher   offwiki.Fetcher
	Links     offwiki.LinkExtractor
	Cleaner   offwiki.Cleaner
	Converter offwiki.Converter
	Harvester *crawl.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log every fetch and write"`
	Rules   string `type:"path" help:"YAML file overriding the filter rules"`

	Harvest HarvestCmd `cmd:"" help:"Harvest the vital articles into a directory"`
	Links   LinksCmd   `cmd:"" help:"Print the article titles an index page links to"`
	Clean   CleanCmd   `cmd:"" help:"Clean a local article HTML file"`
	List    ListCmd    `cmd:"" help:"List harvested articles"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Out         string        `short:"o" default:"articles" help:"Output directory"`
	Level4      bool          `name:"level4" help:"Also harvest the level 4 vital articles"`
	Concurrency int           `short:"c" default:"8" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"30s" help:"Per-request timeout"`
	RPS         float64       `name:"rps" default:"10" help:"Requests per second to Wikipedia, 0 disables pacing"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Title string `arg:"" help:"Index page title, e.g. Wikipedia:Vital_articles"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	File      string `arg:"" type:"existingfile" help:"Article HTML file"`
	Whitelist string `type:"existingfile" help:"File of linkable titles, one per line"`
	Markdown  bool   `short:"m" help:"Print Markdown instead of HTML"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}
