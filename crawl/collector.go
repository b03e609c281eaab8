// Package crawl collects per-year film rankings. It paginates a catalog
// listing, enriches each listed film with retries, and filters and sorts
// the results.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/filmrank"
	"golang.org/x/sync/errgroup"
)

// SaturationLimit is the number of below-threshold films a year may
// accumulate before pagination stops. The listing is sorted by popularity,
// so a run of unpopular films means no qualifying ones remain.
const SaturationLimit = 15

// Collector builds the ranking of a single year.
type Collector struct {
	Catalog   filmrank.Catalog
	Extractor filmrank.FilmExtractor

	// Retry applies to each film's extraction. The zero value uses
	// DefaultRetryPolicy.
	Retry RetryPolicy

	// MaxPages stops pagination after that many pages. Zero means no limit.
	MaxPages int

	Logger *slog.Logger
}

// itemResult holds the outcome of extracting a single catalog item.
type itemResult struct {
	film *filmrank.FilmRecord
	err  error
}

// CollectYear paginates the year's listing until a page comes back empty
// or more than SaturationLimit films fall below the year's view threshold.
// Films whose slug is in cfg.Blacklist are never extracted. Films that
// fail extraction are logged and left out. The returned ranking
// holds at most cfg.MoviesPerYear films sorted by cfg.SortBy.
func (c *Collector) CollectYear(ctx context.Context, cfg *filmrank.Config, year int, progress ProgressFunc) (*filmrank.YearResult, error) {
	logger := c.logger().With("year", year)
	extractor := NewRetryingExtractor(c.Extractor, c.retryPolicy(), logger)
	minViews := cfg.MinViews(year)
	blacklist := make(map[string]struct{}, len(cfg.Blacklist))
	for _, slug := range cfg.Blacklist {
		blacklist[slug] = struct{}{}
	}

	seen := make(map[string]struct{})
	var valid, invalid []*filmrank.FilmRecord

	for page := 1; c.MaxPages <= 0 || page <= c.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, err := c.Catalog.ListPage(ctx, year, page)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		if len(items) == 0 {
			logger.Debug("listing exhausted", "page", page)
			break
		}

		results := c.extractPage(ctx, extractor, cfg.Concurrency, items, year, blacklist)

		for i, r := range results {
			if r.err != nil {
				logger.Error("film excluded", "slug", items[i].Slug, "err", r.err)
				if progress != nil {
					progress(ProgressEvent{Type: ProgressItemFailed, Year: year, Page: page, Slug: items[i].Slug, Error: r.err})
				}
				continue
			}
			if r.film == nil {
				logger.Info("skipping film", "slug", items[i].Slug, "reason", "blacklist")
				continue
			}

			key := r.film.ID
			if key == "" {
				key = r.film.URI
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if r.film.Watches >= minViews {
				valid = append(valid, r.film)
			} else {
				invalid = append(invalid, r.film)
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressPageCompleted, Year: year, Page: page, Films: len(valid)})
		}

		if len(invalid) > SaturationLimit {
			logger.Debug("listing saturated", "page", page, "below_threshold", len(invalid))
			break
		}
	}

	return &filmrank.YearResult{
		Year:     year,
		Rankings: rankFilms(valid, cfg),
	}, nil
}

// extractPage enriches every item of a page concurrently. Each goroutine
// writes only its own slot, so results keep listing order. Blacklisted
// items are never extracted and keep an empty slot.
func (c *Collector) extractPage(ctx context.Context, extractor filmrank.FilmExtractor, limit int, items []filmrank.CatalogItem, year int, blacklist map[string]struct{}) []itemResult {
	results := make([]itemResult, len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		if _, skip := blacklist[item.Slug]; skip {
			continue
		}
		g.Go(func() error {
			film, err := extractor.ExtractFilm(ctx, item, year)
			results[i] = itemResult{film: film, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// rankFilms drops documentaries when configured, sorts, and truncates to
// cfg.MoviesPerYear.
func rankFilms(films []*filmrank.FilmRecord, cfg *filmrank.Config) []*filmrank.FilmRecord {
	ranked := make([]*filmrank.FilmRecord, 0, len(films))
	for _, f := range films {
		if cfg.IgnoreDocumentaries && f.IsDocumentary() {
			continue
		}
		ranked = append(ranked, f)
	}

	filmrank.SortFilms(ranked, cfg.SortBy)

	if len(ranked) > cfg.MoviesPerYear {
		ranked = ranked[:cfg.MoviesPerYear]
	}
	return ranked
}

func (c *Collector) retryPolicy() RetryPolicy {
	if c.Retry.MaxAttempts == 0 {
		return DefaultRetryPolicy()
	}
	return c.Retry
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
