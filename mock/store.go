package mock

import (
	"context"

	"github.com/fwojciec/offwiki"
)

var _ offwiki.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of offwiki.ArticleStore.
type ArticleStore struct {
	ExistsFn      func(ctx context.Context, title string) (bool, error)
	TitlesFn      func(ctx context.Context) ([]string, error)
	SaveArticleFn func(ctx context.Context, title, html string) (string, error)
	SaveIndexFn   func(ctx context.Context, html string) (string, error)
}

func (s *ArticleStore) Exists(ctx context.Context, title string) (bool, error) {
	return s.ExistsFn(ctx, title)
}

func (s *ArticleStore) Titles(ctx context.Context) ([]string, error) {
	return s.TitlesFn(ctx)
}

func (s *ArticleStore) SaveArticle(ctx context.Context, title, html string) (string, error) {
	return s.SaveArticleFn(ctx, title, html)
}

func (s *ArticleStore) SaveIndex(ctx context.Context, html string) (string, error) {
	return s.SaveIndexFn(ctx, html)
}
