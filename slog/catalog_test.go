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

func TestLoggingCatalog_ListPage(t *testing.T) {
	t.Parallel()

	t.Run("logs year page and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Catalog{
			ListPageFn: func(_ context.Context, year, page int) ([]filmrank.CatalogItem, error) {
				return []filmrank.CatalogItem{{Slug: "casablanca"}, {Slug: "rebecca"}}, nil
			},
		}

		catalog := frslog.NewLoggingCatalog(inner, logger)
		items, err := catalog.ListPage(context.Background(), 1942, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		output := buf.String()
		assert.Contains(t, output, "list page")
		assert.Contains(t, output, "year=1942")
		assert.Contains(t, output, "page=2")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Catalog{
			ListPageFn: func(_ context.Context, _, _ int) ([]filmrank.CatalogItem, error) {
				return nil, errors.New("HTTP 500")
			},
		}

		catalog := frslog.NewLoggingCatalog(inner, logger)
		_, err := catalog.ListPage(context.Background(), 1942, 1)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"HTTP 500\"")
	})
}
