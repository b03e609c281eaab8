// Package letterboxd scrapes popularity listings and film pages from
// letterboxd.com.
package letterboxd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseURL is the origin all page URLs are built from.
const DefaultBaseURL = "https://letterboxd.com"

// PopularYearURL returns the listing page of the year's most popular films.
func PopularYearURL(baseURL string, year, page int) string {
	return fmt.Sprintf("%s/films/ajax/popular/year/%d/page/%d/?esiAllowFilters=true", baseURL, year, page)
}

// FilmURL returns the detail page of a film. It doubles as the film's URI.
func FilmURL(baseURL, slug string) string {
	return baseURL + "/film/" + slug
}

// StatsURL returns the stats fragment of a film.
func StatsURL(baseURL, slug string) string {
	return baseURL + "/esi/film/" + slug + "/stats"
}

// FansURL returns the fans page of a film.
func FansURL(baseURL, slug string) string {
	return baseURL + "/film/" + slug + "/fans/"
}

var (
	ratingRe  = regexp.MustCompile(`\d+\.\d+`)
	countRe   = regexp.MustCompile(`[\d,]+`)
	runTimeRe = regexp.MustCompile(`var filmData = \{[^}]+runTime: (\d+)`)
)

// parseRating extracts the first decimal number from s ("3.85 out of 5").
func parseRating(s string) (float64, bool) {
	m := ratingRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseCount extracts the first thousands-separated integer from s
// ("Watched by 1,234,567 members").
func parseCount(s string) (int, bool) {
	m := countRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseRunTime extracts the runtime in minutes from the filmData script
// embedded in a film page.
func parseRunTime(html string) (int, bool) {
	m := runTimeRe.FindStringSubmatch(html)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// imdbID strips the IMDb title URL down to the title id.
func imdbID(href string) string {
	id := strings.TrimPrefix(href, "http://www.imdb.com/title/")
	id = strings.TrimPrefix(id, "https://www.imdb.com/title/")
	id = strings.TrimSuffix(id, "/maindetails")
	return strings.TrimSuffix(id, "/")
}

// tmdbID strips the TMDb movie URL down to the movie id.
func tmdbID(href string) string {
	id := strings.TrimPrefix(href, "https://www.themoviedb.org/movie/")
	return strings.TrimSuffix(id, "/")
}
