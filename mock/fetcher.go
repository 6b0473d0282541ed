package mock

import (
	"context"

	"github.com/fwojciec/offwiki"
)

var _ offwiki.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of offwiki.Fetcher.
type Fetcher struct {
	FetchArticleFn func(ctx context.Context, title string) (string, error)
}

func (f *Fetcher) FetchArticle(ctx context.Context, title string) (string, error) {
	return f.FetchArticleFn(ctx, title)
}
