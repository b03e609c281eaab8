package letterboxd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/filmrank"
)

// Ensure Extractor implements filmrank.FilmExtractor at compile time.
var _ filmrank.FilmExtractor = (*Extractor)(nil)

// Extractor builds a FilmRecord from a film's detail, stats and fans pages.
// It does not retry; wrap it with crawl.RetryingExtractor for that.
type Extractor struct {
	fetcher   filmrank.Fetcher
	parser    filmrank.HTMLParser
	baseURL   string
	blacklist map[string]struct{}
}

// NewExtractor creates a new Extractor.
func NewExtractor(fetcher filmrank.Fetcher, parser filmrank.HTMLParser, opts ...Option) *Extractor {
	o := newOptions(opts)
	e := &Extractor{
		fetcher:   fetcher,
		parser:    parser,
		baseURL:   o.baseURL,
		blacklist: make(map[string]struct{}, len(o.blacklist)),
	}
	for _, slug := range o.blacklist {
		e.blacklist[slug] = struct{}{}
	}
	return e
}

// ExtractFilm returns the record of item ranked under year. Blacklisted
// items return a nil record and a nil error. Missing rating, genres,
// runtime or fan count fall back to defaults; a missing identifier footer
// or stats block is an ENOTFOUND error.
func (e *Extractor) ExtractFilm(ctx context.Context, item filmrank.CatalogItem, year int) (*filmrank.FilmRecord, error) {
	if _, ok := e.blacklist[item.Slug]; ok {
		return nil, nil
	}
	if item.Slug == "" {
		return nil, filmrank.Errorf(filmrank.EINVALID, "catalog item has no slug")
	}

	film := &filmrank.FilmRecord{
		URI:    FilmURL(e.baseURL, item.Slug),
		Title:  item.Title,
		ID:     item.ID,
		Year:   year,
		Genres: []string{},
	}

	if err := e.readDetails(ctx, item.Slug, film); err != nil {
		return nil, err
	}
	if err := e.readStats(ctx, item.Slug, film); err != nil {
		return nil, err
	}
	fans, err := e.readFans(ctx, item.Slug)
	if err != nil {
		return nil, err
	}
	film.FansCount = fans
	film.PercentageFansFromWatches = filmrank.FansRatio(film.FansCount, film.Watches)

	return film, nil
}

// readDetails fills rating, genres, external ids and runtime from the film page.
func (e *Extractor) readDetails(ctx context.Context, slug string, film *filmrank.FilmRecord) error {
	html, err := e.fetcher.Fetch(ctx, film.URI)
	if err != nil {
		return fmt.Errorf("fetch film page: %w", err)
	}
	doc, err := e.parser.Parse(html)
	if err != nil {
		return err
	}

	if meta, ok := doc.First(`meta[name="twitter:data2"]`); ok {
		content, _ := meta.Attr("content")
		if rating, ok := parseRating(content); ok {
			film.Rating = rating
		}
	}

	for _, link := range doc.Find("#tab-genres .text-sluglist a.text-slug") {
		film.Genres = append(film.Genres, strings.TrimSpace(link.Text()))
	}

	footer, ok := doc.First(".text-footer")
	if !ok {
		return filmrank.Errorf(filmrank.ENOTFOUND, "film %s: identifier footer not found", slug)
	}
	links := footer.Find("a")
	if len(links) < 2 {
		return filmrank.Errorf(filmrank.ENOTFOUND, "film %s: expected 2 identifier links, found %d", slug, len(links))
	}
	href, _ := links[0].Attr("href")
	film.IMDbID = imdbID(href)
	href, _ = links[1].Attr("href")
	film.TMDbID = tmdbID(href)

	if runTime, ok := parseRunTime(html); ok {
		film.RunTime = &runTime
	}
	return nil
}

// readStats fills watches and likes from the stats fragment.
func (e *Extractor) readStats(ctx context.Context, slug string, film *filmrank.FilmRecord) error {
	html, err := e.fetcher.Fetch(ctx, StatsURL(e.baseURL, slug))
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}
	doc, err := e.parser.Parse(html)
	if err != nil {
		return err
	}

	watches, ok := statCount(doc, ".filmstat-watches [title]")
	if !ok {
		return filmrank.Errorf(filmrank.ENOTFOUND, "film %s: watch count not found", slug)
	}
	likes, ok := statCount(doc, ".filmstat-likes [title]")
	if !ok {
		return filmrank.Errorf(filmrank.ENOTFOUND, "film %s: like count not found", slug)
	}
	film.Watches = watches
	film.Likes = likes
	return nil
}

// readFans returns the fan count, or 0 when the page shows none.
func (e *Extractor) readFans(ctx context.Context, slug string) (int, error) {
	html, err := e.fetcher.Fetch(ctx, FansURL(e.baseURL, slug))
	if err != nil {
		return 0, fmt.Errorf("fetch fans: %w", err)
	}
	doc, err := e.parser.Parse(html)
	if err != nil {
		return 0, err
	}
	fans, _ := statCount(doc, ".js-route-fans a.tooltip")
	return fans, nil
}

// statCount parses the count in the title attribute of the first node
// matching selector.
func statCount(doc filmrank.Node, selector string) (int, bool) {
	n, ok := doc.First(selector)
	if !ok {
		return 0, false
	}
	title, ok := n.Attr("title")
	if !ok {
		return 0, false
	}
	return parseCount(title)
}
