package letterboxd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/filmrank"
	"github.com/fwojciec/filmrank/goquery"
	"github.com/fwojciec/filmrank/letterboxd"
	"github.com/fwojciec/filmrank/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<ul class="poster-list">
<li class="listitem poster-container">
	<div class="film-poster poster" data-film-id="51817" data-film-slug="casablanca">
		<img src="/empty.png" class="image" alt="Casablanca"/>
	</div>
</li>
<li class="listitem poster-container">
	<div class="film-poster poster" data-film-id="51568" data-film-slug="citizen-kane">
		<img src="/empty.png" class="image" alt="Citizen Kane"/>
	</div>
</li>
<li class="listitem poster-container">
	<div class="film-poster poster" data-film-id="0"></div>
</li>
</ul>`

func TestCatalog_ListPage(t *testing.T) {
	t.Parallel()

	t.Run("parses posters into catalog items", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				gotURL = url
				return listingPage, nil
			},
		}
		c := letterboxd.NewCatalog(fetcher, goquery.NewParser(), letterboxd.WithBaseURL(base+"/"))

		items, err := c.ListPage(context.Background(), 1942, 3)

		require.NoError(t, err)
		assert.Equal(t, base+"/films/ajax/popular/year/1942/page/3/?esiAllowFilters=true", gotURL)
		assert.Equal(t, []filmrank.CatalogItem{
			{Slug: "casablanca", ID: "51817", Title: "Casablanca"},
			{Slug: "citizen-kane", ID: "51568", Title: "Citizen Kane"},
		}, items)
	})

	t.Run("returns no items past the last page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return `<ul class="poster-list"></ul>`, nil
			},
		}
		c := letterboxd.NewCatalog(fetcher, goquery.NewParser(), letterboxd.WithBaseURL(base))

		items, err := c.ListPage(context.Background(), 1942, 99)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("wraps fetch errors with year and page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("timeout")
			},
		}
		c := letterboxd.NewCatalog(fetcher, goquery.NewParser())

		_, err := c.ListPage(context.Background(), 1950, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1950 page 2")
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("uses default base URL", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				gotURL = url
				return "", nil
			},
		}
		c := letterboxd.NewCatalog(fetcher, goquery.NewParser())

		_, err := c.ListPage(context.Background(), 2001, 1)

		require.NoError(t, err)
		assert.Equal(t, "https://letterboxd.com/films/ajax/popular/year/2001/page/1/?esiAllowFilters=true", gotURL)
	})

	t.Run("returns parser errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<ul>", nil
			},
		}
		parser := &mock.HTMLParser{
			ParseFn: func(string) (filmrank.Node, error) {
				return nil, filmrank.Errorf(filmrank.EINVALID, "parse html: broken")
			},
		}
		c := letterboxd.NewCatalog(fetcher, parser)

		_, err := c.ListPage(context.Background(), 1942, 1)

		assert.Equal(t, filmrank.EINVALID, filmrank.ErrorCode(err))
	})
}
