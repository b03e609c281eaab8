package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/filmrank"
)

// Aggregator runs a Collector over every configured year.
type Aggregator struct {
	Collector *Collector
	Logger    *slog.Logger
}

// Run collects each year from cfg.StartingYear to cfg.EndingYear, one year
// at a time, then merges all rankings into a single list sorted by
// cfg.SortBy. An inverted year range yields an empty ranking.
func (a *Aggregator) Run(ctx context.Context, cfg *filmrank.Config, progress ProgressFunc) (*filmrank.Ranking, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ranking := &filmrank.Ranking{
		Years: []*filmrank.YearResult{},
		Films: []*filmrank.FilmRecord{},
	}

	for _, year := range cfg.Years() {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressYearStarted, Year: year})
		}

		begin := time.Now()
		result, err := a.Collector.CollectYear(ctx, cfg, year, progress)
		if err != nil {
			return nil, err
		}
		logger.Info("year collected",
			"year", year,
			"films", len(result.Rankings),
			"duration", time.Since(begin),
		)

		ranking.Years = append(ranking.Years, result)
		ranking.Films = append(ranking.Films, result.Rankings...)

		if progress != nil {
			progress(ProgressEvent{Type: ProgressYearCompleted, Year: year, Films: len(result.Rankings)})
		}
	}

	filmrank.SortFilms(ranking.Films, cfg.SortBy)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Films: len(ranking.Films)})
	}

	return ranking, nil
}
