package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/offwiki/mock"
	wikislog "github.com/fwojciec/offwiki/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchArticleFn: func(ctx context.Context, title string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := wikislog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.FetchArticle(context.Background(), "Physics")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "title=Physics")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Fetcher{
			FetchArticleFn: func(ctx context.Context, title string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := wikislog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.FetchArticle(context.Background(), "Physics")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"network error\"")
	})

	t.Run("success is silent at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Fetcher{
			FetchArticleFn: func(ctx context.Context, title string) (string, error) {
				return "<html></html>", nil
			},
		}

		_, err := wikislog.NewLoggingFetcher(inner, logger).FetchArticle(context.Background(), "Physics")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
