package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmrank"
)

// Ensure LoggingExtractor implements filmrank.FilmExtractor.
var _ filmrank.FilmExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a FilmExtractor with per-film logging.
type LoggingExtractor struct {
	next   filmrank.FilmExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next filmrank.FilmExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractFilm delegates to the wrapped extractor and logs the outcome.
// Skipped films are logged with skipped=true.
func (e *LoggingExtractor) ExtractFilm(ctx context.Context, item filmrank.CatalogItem, year int) (film *filmrank.FilmRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"slug", item.Slug,
			"year", year,
			"duration", time.Since(begin),
		}
		switch {
		case err != nil:
			attrs = append(attrs, "err", err)
		case film == nil:
			attrs = append(attrs, "skipped", true)
		default:
			attrs = append(attrs, "watches", film.Watches, "rating", film.Rating)
		}
		e.logger.Debug("extract film", attrs...)
	}(time.Now())
	return e.next.ExtractFilm(ctx, item, year)
}
