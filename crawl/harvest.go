// Package crawl drives a harvest: it turns index pages into a whitelist
// and saves a cleaned copy of every listed article.
package crawl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/offwiki"
	"github.com/fwojciec/offwiki/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of articles harvested in parallel.
const DefaultConcurrency = 8

// resumeFalsePositiveRate sizes the filter of already stored titles.
const resumeFalsePositiveRate = 0.01

// VitalArticlesIndex is the level-3 index page. Its links seed the
// whitelist and it becomes the landing page.
const VitalArticlesIndex = "Wikipedia:Vital_articles"

// Level4Indices are the level-4 index pages.
var Level4Indices = []string{
	"Wikipedia:Vital_articles/Level/4/People",
	"Wikipedia:Vital_articles/Level/4/History",
	"Wikipedia:Vital_articles/Level/4/Geography",
	"Wikipedia:Vital_articles/Level/4/Arts",
	"Wikipedia:Vital_articles/Level/4/Philosophy_and_religion",
	"Wikipedia:Vital_articles/Level/4/Everyday_life",
	"Wikipedia:Vital_articles/Level/4/Society_and_social_sciences",
	"Wikipedia:Vital_articles/Level/4/Biology_and_health_sciences",
	"Wikipedia:Vital_articles/Level/4/Physical_sciences",
	"Wikipedia:Vital_articles/Level/4/Technology",
	"Wikipedia:Vital_articles/Level/4/Mathematics",
}

// Plan names the index pages of a harvest.
type Plan struct {
	// Index is cleaned into the landing page.
	Index string

	// Indices only contribute links to the whitelist.
	Indices []string
}

// DefaultPlan returns the vital articles plan, including level 4 if asked.
func DefaultPlan(level4 bool) Plan {
	p := Plan{Index: VitalArticlesIndex}
	if level4 {
		p.Indices = Level4Indices
	}
	return p
}

// ProgressType identifies the kind of progress event.
type ProgressType int

const (
	// ProgressIndexed is sent after each extra index page is merged.
	ProgressIndexed ProgressType = iota
	// ProgressStarted is sent once before articles are harvested.
	ProgressStarted
	// ProgressSaved is sent after an article is written.
	ProgressSaved
	// ProgressSkipped is sent for an article already stored.
	ProgressSkipped
	// ProgressFailed is sent for an article that could not be harvested.
	ProgressFailed
	// ProgressFinished is sent once after all articles are done.
	ProgressFinished
)

// ProgressEvent reports harvest progress.
type ProgressEvent struct {
	Type      ProgressType
	Title     string
	Completed int
	Total     int
	Bytes     int
	Error     error

	// Stored estimates the articles already on disk. Set on ProgressStarted.
	Stored int
}

// ProgressFunc is called serially with progress updates.
type ProgressFunc func(ProgressEvent)

// Result summarizes a harvest.
type Result struct {
	Indexed int
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// Harvester fetches, cleans and stores articles.
type Harvester struct {
	Fetcher offwiki.Fetcher
	Links   offwiki.LinkExtractor
	Cleaner offwiki.Cleaner
	Store   offwiki.ArticleStore

	// Landing is applied to the landing page only. Optional.
	Landing offwiki.LandingRewriter

	// Manifest records saved articles. Optional.
	Manifest offwiki.ManifestService

	// RateLimiter paces every fetch attempt against Host. Optional.
	RateLimiter offwiki.RateLimiter
	Host        string

	// Concurrency defaults to DefaultConcurrency.
	Concurrency int

	// RetryDelays defaults to DefaultRetryDelays. An empty non-nil slice
	// disables retries.
	RetryDelays []time.Duration
}

// Run harvests everything plan names: it saves the landing page, builds
// the whitelist from all indices, then harvests every whitelisted title.
// Failing to fetch an index page is fatal; per-article failures are not.
func (h *Harvester) Run(ctx context.Context, plan Plan, onProgress ProgressFunc) (*Result, error) {
	if plan.Index == "" {
		return nil, offwiki.Errorf(offwiki.EINVALID, "index page required")
	}
	if onProgress == nil {
		onProgress = func(ProgressEvent) {}
	}

	raw, err := h.fetch(ctx, plan.Index)
	if err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", plan.Index, err)
	}
	whitelist, err := h.Links.ExtractLinks(raw)
	if err != nil {
		return nil, fmt.Errorf("extract links from %s: %w", plan.Index, err)
	}
	if err := h.saveLanding(ctx, raw, whitelist); err != nil {
		return nil, err
	}

	for _, index := range plan.Indices {
		raw, err := h.fetch(ctx, index)
		if err != nil {
			return nil, fmt.Errorf("fetch index %s: %w", index, err)
		}
		links, err := h.Links.ExtractLinks(raw)
		if err != nil {
			return nil, fmt.Errorf("extract links from %s: %w", index, err)
		}
		whitelist.Union(links)
		onProgress(ProgressEvent{Type: ProgressIndexed, Title: index, Total: whitelist.Len()})
	}

	result, err := h.Harvest(ctx, whitelist, onProgress)
	if result != nil {
		result.Indexed = 1 + len(plan.Indices)
	}
	return result, err
}

func (h *Harvester) saveLanding(ctx context.Context, raw string, whitelist *offwiki.Whitelist) error {
	page, err := h.Cleaner.Clean(raw, whitelist)
	if err != nil {
		return fmt.Errorf("clean landing page: %w", err)
	}
	if h.Landing != nil {
		if page, err = h.Landing.Rewrite(page); err != nil {
			return fmt.Errorf("rewrite landing page: %w", err)
		}
	}
	if _, err := h.Store.SaveIndex(ctx, page); err != nil {
		return fmt.Errorf("save landing page: %w", err)
	}
	return nil
}

type outcome int

const (
	outcomeSaved outcome = iota
	outcomeSkipped
	outcomeFailed
)

type articleResult struct {
	title   string
	outcome outcome
	bytes   int
	err     error
}

// Harvest saves every title of whitelist, in sorted order, with links
// restricted to whitelist. It returns a partial result together with the
// context error if ctx is canceled.
func (h *Harvester) Harvest(ctx context.Context, whitelist *offwiki.Whitelist, onProgress ProgressFunc) (*Result, error) {
	if onProgress == nil {
		onProgress = func(ProgressEvent) {}
	}

	resume, err := h.resumeFilter(ctx)
	if err != nil {
		return nil, err
	}

	titles := whitelist.Titles()
	total := len(titles)
	result := &Result{}
	onProgress(ProgressEvent{Type: ProgressStarted, Total: total, Stored: int(resume.EstimatedCount())})

	var (
		mu        sync.Mutex
		completed int
	)
	record := func(r articleResult) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		ev := ProgressEvent{Title: r.title, Completed: completed, Total: total, Bytes: r.bytes, Error: r.err}
		switch r.outcome {
		case outcomeSaved:
			result.Saved++
			result.Bytes += r.bytes
			ev.Type = ProgressSaved
		case outcomeSkipped:
			result.Skipped++
			ev.Type = ProgressSkipped
		default:
			result.Failed++
			ev.Type = ProgressFailed
		}
		onProgress(ev)
	}

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, title := range titles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r := h.harvestOne(gctx, title, whitelist, resume)
			if r.outcome == outcomeFailed && gctx.Err() != nil {
				return gctx.Err()
			}
			record(r)
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	onProgress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total, Bytes: result.Bytes})
	return result, err
}

// resumeFilter returns a filter of the titles already stored. Titles
// absent from it are harvested without asking the store again.
func (h *Harvester) resumeFilter(ctx context.Context) (*bloom.Filter, error) {
	titles, err := h.Store.Titles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored articles: %w", err)
	}
	return bloom.NewFilterWith(titles, resumeFalsePositiveRate), nil
}

func (h *Harvester) harvestOne(ctx context.Context, title string, whitelist *offwiki.Whitelist, resume *bloom.Filter) articleResult {
	r := articleResult{title: title}

	if resume.Test(title) {
		exists, err := h.Store.Exists(ctx, title)
		if err != nil {
			r.outcome, r.err = outcomeFailed, err
			return r
		}
		if exists {
			r.outcome = outcomeSkipped
			return r
		}
	}

	raw, err := h.fetch(ctx, title)
	if err != nil {
		r.outcome, r.err = outcomeFailed, err
		return r
	}
	page, err := h.Cleaner.Clean(raw, whitelist)
	if err != nil {
		r.outcome, r.err = outcomeFailed, fmt.Errorf("clean %s: %w", title, err)
		return r
	}
	path, err := h.Store.SaveArticle(ctx, title, page)
	if err != nil {
		r.outcome, r.err = outcomeFailed, fmt.Errorf("save %s: %w", title, err)
		return r
	}

	if h.Manifest != nil {
		a := &offwiki.Article{
			Title:       title,
			Path:        path,
			ContentHash: ComputeHash(page),
			Size:        len(page),
			HarvestedAt: time.Now().UTC(),
		}
		if err := h.Manifest.RecordArticle(ctx, a); err != nil {
			r.outcome, r.err = outcomeFailed, fmt.Errorf("record %s: %w", title, err)
			return r
		}
	}

	r.outcome, r.bytes = outcomeSaved, len(page)
	return r
}

// fetch retrieves a page with retries, waiting on the rate limiter before
// every attempt.
func (h *Harvester) fetch(ctx context.Context, title string) (string, error) {
	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, title, func(ctx context.Context, title string) (string, error) {
		if h.RateLimiter != nil {
			if err := h.RateLimiter.Wait(ctx, h.Host); err != nil {
				return "", err
			}
		}
		return h.Fetcher.FetchArticle(ctx, title)
	}, delays)
}
