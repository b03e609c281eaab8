package filmrank

import "strings"

// ThresholdCutoffYear is the last year ranked against MinViewsBefore1946.
const ThresholdCutoffYear = 1945

// Config holds the inputs of a ranking run. It is treated as immutable
// once a run starts.
type Config struct {
	StartingYear        int        `json:"startingYear"`
	EndingYear          int        `json:"endingYear"`
	MoviesPerYear       int        `json:"numberOfMoviesPerYear"`
	MinViewsBefore1946  int        `json:"minViewsBefore1946"`
	MinViewsAfter1945   int        `json:"minViewsAfter1945"`
	IgnoreDocumentaries bool       `json:"ignoreDocumentaries"`
	Blacklist           []string   `json:"userBlacklist"`
	SortBy              SortOption `json:"sortingOption"`

	// Concurrency caps the number of films enriched at once within a
	// listing page. Zero means every film on the page runs concurrently.
	Concurrency int `json:"concurrency"`
}

// Validate returns an error if the config contains invalid fields.
// An inverted year range is valid and produces an empty run.
func (c *Config) Validate() error {
	if c.MoviesPerYear < 1 {
		return Errorf(EINVALID, "number of movies per year must be positive, got %d", c.MoviesPerYear)
	}
	if c.MinViewsBefore1946 < 0 || c.MinViewsAfter1945 < 0 {
		return Errorf(EINVALID, "minimum views must not be negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}

// Years returns every year from StartingYear to EndingYear inclusive.
// Returns nil when StartingYear > EndingYear.
func (c *Config) Years() []int {
	if c.StartingYear > c.EndingYear {
		return nil
	}
	years := make([]int, 0, c.EndingYear-c.StartingYear+1)
	for y := c.StartingYear; y <= c.EndingYear; y++ {
		years = append(years, y)
	}
	return years
}

// MinViews returns the watch-count threshold that applies to year.
func (c *Config) MinViews(year int) int {
	if year <= ThresholdCutoffYear {
		return c.MinViewsBefore1946
	}
	return c.MinViewsAfter1945
}

// ParseBlacklist splits a comma-separated list of catalog slugs
// ("a-film, another-film"). Whitespace is trimmed and empty entries dropped.
func ParseBlacklist(s string) []string {
	var slugs []string
	for _, part := range strings.Split(s, ",") {
		if slug := strings.TrimSpace(part); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
