// Package slog provides log/slog decorators for filmrank services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmrank"
)

// Ensure LoggingFetcher implements filmrank.Fetcher.
var _ filmrank.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs one record per page fetch. Failed fetches are logged
// at Warn with their application error code.
type LoggingFetcher struct {
	next   filmrank.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next filmrank.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Warn("fetch", append(attrs, "code", filmrank.ErrorCode(err), "err", err)...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
