package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/offwiki"
)

// Ensure LoggingArticleStore implements offwiki.ArticleStore.
var _ offwiki.ArticleStore = (*LoggingArticleStore)(nil)

// LoggingArticleStore wraps an ArticleStore with logging of writes.
type LoggingArticleStore struct {
	next   offwiki.ArticleStore
	logger *slog.Logger
}

// NewLoggingArticleStore creates a new LoggingArticleStore.
func NewLoggingArticleStore(next offwiki.ArticleStore, logger *slog.Logger) *LoggingArticleStore {
	return &LoggingArticleStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store without logging.
func (s *LoggingArticleStore) Exists(ctx context.Context, title string) (bool, error) {
	return s.next.Exists(ctx, title)
}

// Titles delegates to the wrapped store and logs the listing.
func (s *LoggingArticleStore) Titles(ctx context.Context) (titles []string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, s.logger, err, "list stored articles",
			"count", len(titles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Titles(ctx)
}

// SaveArticle delegates to the wrapped store and logs the write.
func (s *LoggingArticleStore) SaveArticle(ctx context.Context, title, html string) (path string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, s.logger, err, "save article",
			"title", title,
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveArticle(ctx, title, html)
}

// SaveIndex delegates to the wrapped store and logs the write.
func (s *LoggingArticleStore) SaveIndex(ctx context.Context, html string) (path string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, s.logger, err, "save index",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveIndex(ctx, html)
}
