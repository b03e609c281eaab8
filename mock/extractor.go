package mock

import (
	"context"

	"github.com/fwojciec/filmrank"
)

var _ filmrank.FilmExtractor = (*FilmExtractor)(nil)

// FilmExtractor is a mock implementation of filmrank.FilmExtractor.
type FilmExtractor struct {
	ExtractFilmFn func(ctx context.Context, item filmrank.CatalogItem, year int) (*filmrank.FilmRecord, error)
}

func (e *FilmExtractor) ExtractFilm(ctx context.Context, item filmrank.CatalogItem, year int) (*filmrank.FilmRecord, error) {
	return e.ExtractFilmFn(ctx, item, year)
}
