package mock

import (
	"context"

	"github.com/fwojciec/filmrank"
)

var _ filmrank.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of filmrank.Catalog.
type Catalog struct {
	ListPageFn func(ctx context.Context, year, page int) ([]filmrank.CatalogItem, error)
}

func (c *Catalog) ListPage(ctx context.Context, year, page int) ([]filmrank.CatalogItem, error) {
	return c.ListPageFn(ctx, year, page)
}
