package offwiki

import (
	"context"
	"time"
)

// Article is a harvested, cleaned Wikipedia article.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Path        string    `json:"path"`
	ContentHash string    `json:"contentHash"`
	Size        int       `json:"size"`
	HarvestedAt time.Time `json:"harvestedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Path == "" {
		return Errorf(EINVALID, "article path required")
	}
	return nil
}

// Fetcher retrieves the server-rendered HTML of an article by title.
type Fetcher interface {
	// FetchArticle returns the raw mobile HTML for title.
	// The context controls timeout and cancellation.
	FetchArticle(ctx context.Context, title string) (html string, err error)
}

// LinkExtractor collects the article titles an index page links to.
type LinkExtractor interface {
	ExtractLinks(html string) (*Whitelist, error)
}

// Cleaner rewrites raw article HTML into the minimal offline page.
type Cleaner interface {
	Clean(html string, whitelist *Whitelist) (string, error)
}

// LandingRewriter applies the cosmetic rewrites reserved for the landing page.
type LandingRewriter interface {
	Rewrite(html string) (string, error)
}

// Converter converts cleaned HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// ArticleStore persists cleaned pages.
type ArticleStore interface {
	// Exists reports whether a page for title is already stored.
	Exists(ctx context.Context, title string) (bool, error)

	// Titles returns the titles of all stored articles.
	Titles(ctx context.Context) ([]string, error)

	// SaveArticle writes the page for title and returns its path.
	SaveArticle(ctx context.Context, title string, html string) (path string, err error)

	// SaveIndex writes the landing page and returns its path.
	SaveIndex(ctx context.Context, html string) (path string, err error)
}

// ManifestService records which articles have been harvested.
type ManifestService interface {
	// RecordArticle inserts or replaces the manifest entry for a.Title.
	RecordArticle(ctx context.Context, a *Article) error

	// FindArticle returns the entry for title.
	// Returns ENOTFOUND if the article was never recorded.
	FindArticle(ctx context.Context, title string) (*Article, error)

	// FindArticles returns all entries ordered by title.
	FindArticles(ctx context.Context) ([]*Article, error)

	// DeleteArticle removes the entry for title.
	// Returns ENOTFOUND if the article was never recorded.
	DeleteArticle(ctx context.Context, title string) error
}

// RateLimiter paces requests to a host.
type RateLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
