package filmrank

import (
	"context"
	"strings"
)

// CatalogItem is one entry of a popularity listing page.
type CatalogItem struct {
	Slug  string
	ID    string
	Title string // poster alt text
}

// FilmRecord is the enriched result for one film in one year's ranking.
// JSON keys follow the list import format of the source site.
type FilmRecord struct {
	URI                       string   `json:"LetterboxdURI"`
	Title                     string   `json:"Title"`
	ID                        string   `json:"id"`
	Year                      int      `json:"year"`
	IMDbID                    string   `json:"imdbID"`
	TMDbID                    string   `json:"tmdbID"`
	Rating                    float64  `json:"rating"`
	Watches                   int      `json:"watches"`
	Likes                     int      `json:"likes"`
	FansCount                 int      `json:"fansCount"`
	PercentageFansFromWatches float64  `json:"percentageFansFromWatches"`
	RunTime                   *int     `json:"runTime,omitempty"`
	Genres                    []string `json:"genres"`
}

// FansRatio returns fans divided by watches, or 0 when watches is 0.
func FansRatio(fans, watches int) float64 {
	if watches <= 0 {
		return 0
	}
	return float64(fans) / float64(watches)
}

// IsDocumentary reports whether the film carries the documentary genre,
// compared case-insensitively.
func (f *FilmRecord) IsDocumentary() bool {
	for _, g := range f.Genres {
		if strings.EqualFold(strings.TrimSpace(g), "documentary") {
			return true
		}
	}
	return false
}

// YearResult is the bounded ranking collected for one year.
type YearResult struct {
	Year     int           `json:"year"`
	Rankings []*FilmRecord `json:"rankings"`
}

// Ranking is the outcome of a full run: per-year results in year order
// and every ranked film re-sorted across years.
type Ranking struct {
	Years []*YearResult `json:"allRankings"`
	Films []*FilmRecord `json:"movieList"`
}

// Catalog lists the films of a year's popularity ranking, one page at a time.
type Catalog interface {
	// ListPage returns the items on the given 1-based page.
	// An empty result means the listing has no more pages.
	ListPage(ctx context.Context, year, page int) ([]CatalogItem, error)
}

// FilmExtractor assembles a FilmRecord for a catalog item.
type FilmExtractor interface {
	// ExtractFilm fetches the film's pages and returns its record for year.
	// A nil record with a nil error means the item was skipped and must be
	// left out of the results.
	ExtractFilm(ctx context.Context, item CatalogItem, year int) (*FilmRecord, error)
}
