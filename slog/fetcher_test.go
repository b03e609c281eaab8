package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/filmrank"
	"github.com/fwojciec/filmrank/mock"
	frslog "github.com/fwojciec/filmrank/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filmURL = "https://letterboxd.com/film/casablanca"

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		err      error
		contains []string
		absent   []string
	}{
		{
			name:     "page fetched",
			html:     "<html>content</html>",
			contains: []string{"level=INFO", "msg=fetch", "url=" + filmURL, "bytes=20", "duration="},
			absent:   []string{"code=", "err="},
		},
		{
			name:     "missing page",
			err:      filmrank.Errorf(filmrank.ENOTFOUND, "HTTP 404 for %s", filmURL),
			contains: []string{"level=WARN", "code=not_found", "bytes=0", "message=HTTP 404"},
		},
		{
			name:     "transport failure",
			err:      errors.New("connection reset"),
			contains: []string{"level=WARN", "code=internal", `err="connection reset"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			inner := &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return tt.html, tt.err
				},
			}

			html, err := frslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), filmURL)

			assert.Equal(t, tt.html, html)
			assert.Equal(t, tt.err, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("browser gone")
	inner := &mock.Fetcher{
		CloseFn: func() error { return closeErr },
	}

	err := frslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

	require.ErrorIs(t, err, closeErr)
}
