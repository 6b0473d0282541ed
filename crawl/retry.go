package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/offwiki"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, title string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches an article, retrying after each of delays.
// ENOTFOUND errors are returned immediately since a missing article stays
// missing.
func FetchWithRetryDelays(ctx context.Context, title string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, title)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if offwiki.ErrorCode(err) == offwiki.ENOTFOUND || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
