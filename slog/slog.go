// Package slog provides log/slog decorators for offwiki services.
package slog

import (
	"context"
	"log/slog"
)

// level reports failures at warn so they survive a quiet logger.
func level(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

func logOp(ctx context.Context, logger *slog.Logger, err error, msg string, args ...any) {
	logger.Log(ctx, level(err), msg, args...)
}
