package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/filmrank"
	"github.com/fwojciec/filmrank/crawl"
	"github.com/fwojciec/filmrank/fs"
	"github.com/fwojciec/filmrank/goquery"
	frhttp "github.com/fwojciec/filmrank/http"
	"github.com/fwojciec/filmrank/letterboxd"
	"github.com/fwojciec/filmrank/rod"
	frslog "github.com/fwojciec/filmrank/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP and browser fetchers when set.
	// The caller owns it; Run does not close it.
	Fetcher filmrank.Fetcher

	// BaseURL overrides the Letterboxd origin.
	BaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{BaseURL: letterboxd.DefaultBaseURL}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("filmrank"),
		kong.Description("Rank the most popular Letterboxd films of each year"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAML),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.validate(); err != nil {
		return err
	}
	cfg := cli.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, cli.Verbose),
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli)
		if err != nil {
			return err
		}
		defer fetcher.Close()
	}
	if cli.Verbose {
		fetcher = frslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	html := goquery.NewParser()
	opts := []letterboxd.Option{letterboxd.WithBlacklist(cfg.Blacklist)}
	if m.BaseURL != "" {
		opts = append(opts, letterboxd.WithBaseURL(m.BaseURL))
	}
	var catalog filmrank.Catalog = letterboxd.NewCatalog(fetcher, html, opts...)
	var extractor filmrank.FilmExtractor = letterboxd.NewExtractor(fetcher, html, opts...)
	if cli.Verbose {
		catalog = frslog.NewLoggingCatalog(catalog, deps.Logger)
		extractor = frslog.NewLoggingExtractor(extractor, deps.Logger)
	}

	deps.Aggregator = &crawl.Aggregator{
		Collector: &crawl.Collector{
			Catalog:   catalog,
			Extractor: extractor,
			Retry: crawl.RetryPolicy{
				MaxAttempts: cli.MaxRetries,
				Delay:       cli.RetryDelay,
			},
			MaxPages: cli.MaxPages,
			Logger:   deps.Logger,
		},
		Logger: deps.Logger,
	}

	if cli.Output != "" {
		deps.Writer = fs.NewWriter(cli.Output)
	}

	cmd := &RankCmd{Config: cfg, Verbose: cli.Verbose}
	return cmd.Run(deps)
}

// newLogger returns a text logger on w tagged with a fresh run id.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

// newFetcher returns the browser fetcher when requested, else plain HTTP.
func newFetcher(cli *CLI) (filmrank.Fetcher, error) {
	if !cli.Browser {
		return frhttp.NewFetcher(frhttp.WithTimeout(cli.Timeout)), nil
	}
	f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout), rod.WithUserAgent(frhttp.DefaultUserAgent))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return f, nil
}
