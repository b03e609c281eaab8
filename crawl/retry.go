package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmrank"
)

// RetryPolicy bounds how often and how patiently an operation is retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Delay is the fixed wait between consecutive attempts.
	Delay time.Duration
}

// DefaultRetryPolicy returns 5 attempts with a 3s delay between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Delay: 3 * time.Second}
}

// FailureFunc is called after each failed attempt, before any wait.
type FailureFunc func(attempt int, err error)

// Retry calls fn until it succeeds or the policy's attempts run out.
// Attempts run sequentially and are separated by policy.Delay; there is no
// wait after the last attempt. When every attempt fails Retry returns a
// *filmrank.ExhaustedRetriesError wrapping the last error. Cancelling ctx
// aborts the wait and returns the context's error.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error), onFailure FailureFunc) (T, error) {
	var zero T
	maxAttempts := max(policy.MaxAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if onFailure != nil {
			onFailure(attempt, err)
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(policy.Delay):
		}
	}

	return zero, &filmrank.ExhaustedRetriesError{Attempts: maxAttempts, Err: lastErr}
}

// Ensure RetryingExtractor implements filmrank.FilmExtractor at compile time.
var _ filmrank.FilmExtractor = (*RetryingExtractor)(nil)

// RetryingExtractor retries a FilmExtractor according to a RetryPolicy.
type RetryingExtractor struct {
	next   filmrank.FilmExtractor
	policy RetryPolicy
	logger *slog.Logger
}

// NewRetryingExtractor wraps next. A nil logger discards retry diagnostics.
func NewRetryingExtractor(next filmrank.FilmExtractor, policy RetryPolicy, logger *slog.Logger) *RetryingExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryingExtractor{next: next, policy: policy, logger: logger}
}

// ExtractFilm delegates to the wrapped extractor, logging every failed attempt.
func (r *RetryingExtractor) ExtractFilm(ctx context.Context, item filmrank.CatalogItem, year int) (*filmrank.FilmRecord, error) {
	extract := func(ctx context.Context) (*filmrank.FilmRecord, error) {
		return r.next.ExtractFilm(ctx, item, year)
	}
	onFailure := func(attempt int, err error) {
		r.logger.Warn("extract film failed",
			"slug", item.Slug,
			"year", year,
			"attempt", attempt,
			"err", err,
		)
	}
	return Retry(ctx, r.policy, extract, onFailure)
}
