package mock

import (
	"context"

	"github.com/fwojciec/offwiki"
)

var _ offwiki.ManifestService = (*ManifestService)(nil)

// ManifestService is a mock implementation of offwiki.ManifestService.
type ManifestService struct {
	RecordArticleFn func(ctx context.Context, a *offwiki.Article) error
	FindArticleFn   func(ctx context.Context, title string) (*offwiki.Article, error)
	FindArticlesFn  func(ctx context.Context) ([]*offwiki.Article, error)
	DeleteArticleFn func(ctx context.Context, title string) error
}

func (s *ManifestService) RecordArticle(ctx context.Context, a *offwiki.Article) error {
	return s.RecordArticleFn(ctx, a)
}

func (s *ManifestService) FindArticle(ctx context.Context, title string) (*offwiki.Article, error) {
	return s.FindArticleFn(ctx, title)
}

func (s *ManifestService) FindArticles(ctx context.Context) ([]*offwiki.Article, error) {
	return s.FindArticlesFn(ctx)
}

func (s *ManifestService) DeleteArticle(ctx context.Context, title string) error {
	return s.DeleteArticleFn(ctx, title)
}
