package filmrank_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/filmrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := filmrank.Errorf(filmrank.ENOTFOUND, "film %q: footer not found", "casablanca")

	assert.Equal(t, filmrank.ENOTFOUND, filmrank.ErrorCode(err))
	assert.Equal(t, "film \"casablanca\": footer not found", filmrank.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch stats: %w", filmrank.Errorf(filmrank.EINVALID, "bad"))

	assert.Equal(t, filmrank.EINVALID, filmrank.ErrorCode(err))
	assert.Equal(t, "bad", filmrank.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, filmrank.EINTERNAL, filmrank.ErrorCode(err))
	assert.Equal(t, "Internal error.", filmrank.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, filmrank.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, filmrank.ErrorMessage(nil))
}

func TestExhaustedRetriesError(t *testing.T) {
	t.Parallel()

	last := filmrank.Errorf(filmrank.ENOTFOUND, "watch count not found")
	err := fmt.Errorf("film casablanca: %w", &filmrank.ExhaustedRetriesError{Attempts: 5, Err: last})

	var exhausted *filmrank.ExhaustedRetriesError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.ErrorIs(t, err, last)
	assert.Equal(t, filmrank.ENOTFOUND, filmrank.ErrorCode(err))
	assert.Contains(t, err.Error(), "failed after 5 attempts")
}
