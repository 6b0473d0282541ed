package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/offwiki"
	main "github.com/fwojciec/offwiki/cmd/offwiki"
	"github.com/fwojciec/offwiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with date, size, title and path", func(t *testing.T) {
		t.Parallel()

		manifest := &mock.ManifestService{
			FindArticlesFn: func(_ context.Context) ([]*offwiki.Article, error) {
				return []*offwiki.Article{
					{Title: "Chemistry", Path: "articles/Chemistry.html", Size: 2048, HarvestedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
					{Title: "Physics", Path: "articles/Physics.html", Size: 100, HarvestedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Manifest: manifest,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"2025-01-15  2.0 KB  Chemistry  articles/Chemistry.html\n"+
				"2025-01-16  100 B  Physics  articles/Physics.html\n",
			stdout.String())
	})

	t.Run("shows helpful message when manifest is empty", func(t *testing.T) {
		t.Parallel()

		manifest := &mock.ManifestService{
			FindArticlesFn: func(_ context.Context) ([]*offwiki.Article, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Manifest: manifest}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No articles")
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		manifest := &mock.ManifestService{
			FindArticlesFn: func(_ context.Context) ([]*offwiki.Article, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Manifest: manifest}

		err := (&main.ListCmd{}).Run(deps)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, stderr.String(), "error:")
	})
}
