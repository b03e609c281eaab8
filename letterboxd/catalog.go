package letterboxd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/filmrank"
)

// Ensure Catalog implements filmrank.Catalog at compile time.
var _ filmrank.Catalog = (*Catalog)(nil)

// Catalog reads the per-year popularity listing.
type Catalog struct {
	fetcher filmrank.Fetcher
	parser  filmrank.HTMLParser
	baseURL string
}

// NewCatalog creates a new Catalog.
func NewCatalog(fetcher filmrank.Fetcher, parser filmrank.HTMLParser, opts ...Option) *Catalog {
	o := newOptions(opts)
	return &Catalog{fetcher: fetcher, parser: parser, baseURL: o.baseURL}
}

// ListPage returns the films on one page of the year's listing.
// Posters without a film slug are ignored.
func (c *Catalog) ListPage(ctx context.Context, year, page int) ([]filmrank.CatalogItem, error) {
	url := PopularYearURL(c.baseURL, year, page)
	html, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %d page %d: %w", year, page, err)
	}

	doc, err := c.parser.Parse(html)
	if err != nil {
		return nil, err
	}

	var items []filmrank.CatalogItem
	for _, poster := range doc.Find(".film-poster") {
		slug, _ := poster.Attr("data-film-slug")
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		item := filmrank.CatalogItem{Slug: slug}
		item.ID, _ = poster.Attr("data-film-id")
		if img, ok := poster.First("[alt]"); ok {
			item.Title, _ = img.Attr("alt")
		}
		items = append(items, item)
	}
	return items, nil
}

// Option configures a Catalog or an Extractor.
type Option func(*options)

type options struct {
	baseURL   string
	blacklist []string
}

func newOptions(opts []Option) options {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithBlacklist sets the film slugs the Extractor skips.
// It has no effect on a Catalog.
func WithBlacklist(slugs []string) Option {
	return func(o *options) {
		o.blacklist = slugs
	}
}
