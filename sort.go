package filmrank

import (
	"cmp"
	"slices"
)

// SortOption selects the ranking order.
type SortOption string

// SortOption constants. All orders are descending.
const (
	SortByRating    SortOption = "rating"
	SortByViews     SortOption = "views"
	SortByFans      SortOption = "fans"
	SortByFansRatio SortOption = "fansRatio"
)

// SortOptions lists every recognized sort key.
var SortOptions = []SortOption{SortByRating, SortByViews, SortByFans, SortByFansRatio}

// ParseSortOption returns the option named by s.
// Unrecognized names fall back to SortByRating.
func ParseSortOption(s string) SortOption {
	opt := SortOption(s)
	if slices.Contains(SortOptions, opt) {
		return opt
	}
	return SortByRating
}

// CompareFilms orders a before b when a ranks higher under opt.
// Equal films compare as 0 so that stable sorts keep input order.
func CompareFilms(opt SortOption, a, b *FilmRecord) int {
	switch ParseSortOption(string(opt)) {
	case SortByViews:
		return cmp.Compare(b.Watches, a.Watches)
	case SortByFans:
		return cmp.Compare(b.FansCount, a.FansCount)
	case SortByFansRatio:
		return cmp.Compare(b.PercentageFansFromWatches, a.PercentageFansFromWatches)
	default:
		return cmp.Compare(b.Rating, a.Rating)
	}
}

// SortFilms stably sorts films in place by opt.
func SortFilms(films []*FilmRecord, opt SortOption) {
	slices.SortStableFunc(films, func(a, b *FilmRecord) int {
		return CompareFilms(opt, a, b)
	})
}
