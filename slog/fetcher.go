package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/offwiki"
)

// Ensure LoggingFetcher implements offwiki.Fetcher.
var _ offwiki.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   offwiki.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next offwiki.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchArticle delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchArticle(ctx context.Context, title string) (html string, err error) {
	defer func(begin time.Time) {
		logOp(ctx, f.logger, err, "fetch",
			"title", title,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchArticle(ctx, title)
}
