package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmrank"
)

// Ensure LoggingCatalog implements filmrank.Catalog.
var _ filmrank.Catalog = (*LoggingCatalog)(nil)

// LoggingCatalog wraps a Catalog with logging of each listing page.
type LoggingCatalog struct {
	next   filmrank.Catalog
	logger *slog.Logger
}

// NewLoggingCatalog creates a new LoggingCatalog.
func NewLoggingCatalog(next filmrank.Catalog, logger *slog.Logger) *LoggingCatalog {
	return &LoggingCatalog{next: next, logger: logger}
}

// ListPage delegates to the wrapped catalog and logs the operation.
func (c *LoggingCatalog) ListPage(ctx context.Context, year, page int) (items []filmrank.CatalogItem, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list page",
			"year", year,
			"page", page,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListPage(ctx, year, page)
}
