package filmrank_test

import (
	"testing"

	"github.com/fwojciec/filmrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		cfg := &filmrank.Config{StartingYear: 1940, EndingYear: 1950, MoviesPerYear: 10}

		require.NoError(t, cfg.Validate())
	})

	t.Run("accepts inverted year range", func(t *testing.T) {
		t.Parallel()

		cfg := &filmrank.Config{StartingYear: 1950, EndingYear: 1940, MoviesPerYear: 10}

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects non-positive movies per year", func(t *testing.T) {
		t.Parallel()

		cfg := &filmrank.Config{MoviesPerYear: 0}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, filmrank.EINVALID, filmrank.ErrorCode(err))
	})

	t.Run("rejects negative thresholds", func(t *testing.T) {
		t.Parallel()

		cfg := &filmrank.Config{MoviesPerYear: 1, MinViewsAfter1945: -1}

		assert.Equal(t, filmrank.EINVALID, filmrank.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects negative concurrency", func(t *testing.T) {
		t.Parallel()

		cfg := &filmrank.Config{MoviesPerYear: 1, Concurrency: -2}

		assert.Equal(t, filmrank.EINVALID, filmrank.ErrorCode(cfg.Validate()))
	})
}

func TestConfig_Years(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1944, 1945, 1946}, (&filmrank.Config{StartingYear: 1944, EndingYear: 1946}).Years())
	assert.Equal(t, []int{2000}, (&filmrank.Config{StartingYear: 2000, EndingYear: 2000}).Years())
	assert.Empty(t, (&filmrank.Config{StartingYear: 2001, EndingYear: 2000}).Years())
}

func TestConfig_MinViews(t *testing.T) {
	t.Parallel()

	cfg := &filmrank.Config{MinViewsBefore1946: 1000, MinViewsAfter1945: 10000}

	assert.Equal(t, 1000, cfg.MinViews(1900))
	assert.Equal(t, 1000, cfg.MinViews(1945))
	assert.Equal(t, 10000, cfg.MinViews(1946))
	assert.Equal(t, 10000, cfg.MinViews(2024))
}

func TestParseBlacklist(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"casablanca", "citizen-kane", "rebecca"}, filmrank.ParseBlacklist("casablanca, citizen-kane,rebecca "))
	assert.Empty(t, filmrank.ParseBlacklist(""))
	assert.Empty(t, filmrank.ParseBlacklist(" , ,"))
}
