package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/filmrank"
	"github.com/fwojciec/filmrank/crawl"
	"github.com/fwojciec/filmrank/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Aggregator *crawl.Aggregator

	// Writer is nil when the ranking goes to Stdout.
	Writer *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `short:"C" placeholder:"PATH" help:"Load flag values from a YAML file"`

	StartYear           int           `short:"s" required:"" env:"FILMRANK_START_YEAR" help:"First year to rank"`
	EndYear             int           `short:"e" required:"" env:"FILMRANK_END_YEAR" help:"Last year to rank (inclusive)"`
	PerYear             int           `short:"n" default:"10" env:"FILMRANK_PER_YEAR" help:"Films kept per year"`
	MinViewsBefore1946  int           `name:"min-views-before-1946" default:"1000" env:"FILMRANK_MIN_VIEWS_BEFORE_1946" help:"Minimum watches for films up to 1945"`
	MinViewsAfter1945   int           `name:"min-views-after-1945" default:"10000" env:"FILMRANK_MIN_VIEWS_AFTER_1945" help:"Minimum watches for films after 1945"`
	IgnoreDocumentaries bool          `env:"FILMRANK_IGNORE_DOCUMENTARIES" help:"Leave documentaries out of the rankings"`
	Blacklist           string        `env:"FILMRANK_BLACKLIST" help:"Comma-separated film slugs to skip"`
	Sort                string        `default:"rating" env:"FILMRANK_SORT" help:"Ranking key: rating, views, fans or fansRatio"`
	Concurrency         int           `short:"c" default:"0" env:"FILMRANK_CONCURRENCY" help:"Concurrent film fetches per page (0 is unbounded)"`
	MaxPages            int           `default:"0" env:"FILMRANK_MAX_PAGES" help:"Listing pages read per year (0 is unbounded)"`
	MaxRetries          int           `default:"5" env:"FILMRANK_MAX_RETRIES" help:"Attempts per film before it is excluded (at least 1)"`
	RetryDelay          time.Duration `default:"3s" env:"FILMRANK_RETRY_DELAY" help:"Wait between attempts"`
	Timeout             time.Duration `short:"t" default:"30s" env:"FILMRANK_TIMEOUT" help:"Fetch timeout per page"`
	Browser             bool          `short:"b" env:"FILMRANK_BROWSER" help:"Fetch pages through headless Chrome"`
	Output              string        `short:"o" type:"path" env:"FILMRANK_OUTPUT" help:"Write JSON to this file instead of stdout"`
	Verbose             bool          `short:"v" env:"FILMRANK_VERBOSE" help:"Log every fetch and extraction"`
}

// validate rejects flag values that have no meaning for the run.
func (c *CLI) validate() error {
	if c.MaxRetries < 1 {
		return filmrank.Errorf(filmrank.EINVALID, "max retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return filmrank.Errorf(filmrank.EINVALID, "retry delay must not be negative, got %s", c.RetryDelay)
	}
	if c.MaxPages < 0 {
		return filmrank.Errorf(filmrank.EINVALID, "max pages must not be negative, got %d", c.MaxPages)
	}
	return nil
}

// config converts parsed flags into the run configuration.
func (c *CLI) config() *filmrank.Config {
	return &filmrank.Config{
		StartingYear:        c.StartYear,
		EndingYear:          c.EndYear,
		MoviesPerYear:       c.PerYear,
		MinViewsBefore1946:  c.MinViewsBefore1946,
		MinViewsAfter1945:   c.MinViewsAfter1945,
		IgnoreDocumentaries: c.IgnoreDocumentaries,
		Blacklist:           filmrank.ParseBlacklist(c.Blacklist),
		SortBy:              filmrank.ParseSortOption(strings.TrimSpace(c.Sort)),
		Concurrency:         c.Concurrency,
	}
}

// RankCmd collects the rankings and writes them out.
type RankCmd struct {
	Config  *filmrank.Config
	Verbose bool
}

// Run executes the ranking and emits JSON to Writer or Stdout.
func (c *RankCmd) Run(deps *Dependencies) error {
	progress := func(ev crawl.ProgressEvent) {
		switch ev.Type {
		case crawl.ProgressPageCompleted, crawl.ProgressItemFailed:
			if !c.Verbose {
				return
			}
		}
		fmt.Fprintln(deps.Stderr, ev.Message())
	}

	ranking, err := deps.Aggregator.Run(deps.Ctx, c.Config, progress)
	if err != nil {
		return err
	}

	if deps.Writer != nil {
		if err := deps.Writer.WriteRanking(ranking); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return fs.Encode(deps.Stdout, ranking)
}
