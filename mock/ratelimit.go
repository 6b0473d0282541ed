package mock

import (
	"context"

	"github.com/fwojciec/offwiki"
)

var _ offwiki.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of offwiki.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (r *RateLimiter) Wait(ctx context.Context, host string) error {
	return r.WaitFn(ctx, host)
}
