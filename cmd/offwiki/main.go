package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/offwiki"
	"github.com/fwojciec/offwiki/crawl"
	"github.com/fwojciec/offwiki/fs"
	"github.com/fwojciec/offwiki/goquery"
	wikihtml "github.com/fwojciec/offwiki/html"
	"github.com/fwojciec/offwiki/htmltomarkdown"
	wikihttp "github.com/fwojciec/offwiki/http"
	wikislog "github.com/fwojciec/offwiki/slog"
	"github.com/fwojciec/offwiki/sqlite"
	"github.com/fwojciec/offwiki/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Manifest database path. Set before calling Run().
	DBPath string

	// SQLite database used by the manifest.
	DB *sqlite.DB

	// Manifest is opened by Run for commands that need it.
	Manifest offwiki.ManifestService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("offwiki"),
		kong.Description("Harvest Wikipedia's vital articles as minimal offline pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'offwiki --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	rules := offwiki.DefaultRules()
	if cli.Rules != "" {
		if rules, err = yaml.LoadRules(cli.Rules); err != nil {
			return fmt.Errorf("failed to load rules from %q: %w", cli.Rules, err)
		}
	}
	deps.Links = wikihtml.NewLinkExtractor(rules)
	deps.Cleaner = wikihtml.NewCleaner(rules)
	deps.Converter = htmltomarkdown.NewConverter()

	switch kongCtx.Command() {
	case "harvest", "list":
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OFFWIKI_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.Manifest = sqlite.NewManifestService(m.DB)
		deps.Manifest = m.Manifest
	}

	switch kongCtx.Command() {
	case "harvest":
		fetcher := wikihttp.NewFetcher(wikihttp.WithTimeout(cli.Harvest.Timeout))
		deps.Fetcher = wikislog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Harvester = &crawl.Harvester{
			Fetcher:     deps.Fetcher,
			Links:       deps.Links,
			Cleaner:     deps.Cleaner,
			Landing:     goquery.NewLandingRewriter(),
			Store:       wikislog.NewLoggingArticleStore(fs.NewStore(cli.Harvest.Out), deps.Logger),
			Manifest:    deps.Manifest,
			Host:        fetcher.Host(),
			Concurrency: cli.Harvest.Concurrency,
		}
		if cli.Harvest.RPS > 0 {
			deps.Harvester.RateLimiter = crawl.NewHostLimiter(cli.Harvest.RPS, 1)
		}
	case "links <title>":
		fetcher := wikihttp.NewFetcher()
		deps.Fetcher = wikislog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger writes text logs to w. Only warnings and errors are shown
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("OFFWIKI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "offwiki.db"
	}
	dir := filepath.Join(home, ".offwiki")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "offwiki.db")
}
